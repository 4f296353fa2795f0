package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/headerscroll/internal/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dragScript = `
name = "drag"
header_height = 100

[[content]]
id = "list"
y = 0

[[step]]
kind = "content"
content = "list"
phase = "down"
y = 300

[[step]]
kind = "root"
phase = "down"
y = 300

[[step]]
kind = "root"
phase = "move"
y = 270

[[step]]
kind = "root"
phase = "up"
y = 270

[[step]]
kind = "tick"
ms = 1000
`

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func executeReplay(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := NewReplayCmd()
	var buf bytes.Buffer
	c.SetOut(&buf)
	c.SetErr(&buf)
	c.SetArgs(args)
	err := c.Execute()
	return buf.String(), err
}

func TestReplayJSON(t *testing.T) {
	out, err := executeReplay(t, writeScript(t, dragScript), "--format", "json")
	require.NoError(t, err)

	var res struct {
		Name     string             `json:"name"`
		Entries  []script.Entry     `json:"entries"`
		Contents map[string]float64 `json:"contents"`
		HeaderY  float64            `json:"header_y"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "drag", res.Name)
	// A 30 unit drag leaves the list inside the header range, so it settles open.
	assert.Equal(t, 0.0, res.HeaderY)
	assert.Equal(t, -30.0, res.Contents["list"])

	var after []script.Entry
	for _, e := range res.Entries {
		if e.Event == script.EventAfterAnimation {
			after = append(after, e)
		}
	}
	require.Len(t, after, 1)
	assert.False(t, after[0].Up)
}

func TestReplayTable(t *testing.T) {
	out, err := executeReplay(t, writeScript(t, dragScript))
	require.NoError(t, err)
	assert.Contains(t, out, "drag")
	assert.Contains(t, out, "resize")
	assert.Contains(t, out, "header y: 0")
	assert.Contains(t, out, "list top: -30")
}

func TestReplayErrors(t *testing.T) {
	_, err := executeReplay(t)
	assert.Error(t, err)

	_, err = executeReplay(t, writeScript(t, dragScript), "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")

	_, err = executeReplay(t, writeScript(t, "header_height = 0"))
	assert.ErrorIs(t, err, script.ErrInvalid)

	_, err = executeReplay(t, filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "open script")
}
