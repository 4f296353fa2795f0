package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/headerscroll/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeConfig(t *testing.T, args ...string) string {
	t.Helper()
	c := NewConfigCmd()
	var buf bytes.Buffer
	c.SetOut(&buf)
	c.SetArgs(args)
	require.NoError(t, c.Execute())
	return buf.String()
}

func TestConfigCommand(t *testing.T) {
	t.Setenv("HEADERSCROLL_CONFIG_PATH", filepath.Join(t.TempDir(), "none.toml"))
	t.Setenv("HEADERSCROLL_FLING_THRESHOLD", "80")
	config.Load()

	out := executeConfig(t)
	assert.Contains(t, out, "config file: none")
	assert.Contains(t, out, "fling_threshold")
	assert.Contains(t, out, "80 *")
	assert.Contains(t, out, "settle_duration_ms")

	out = executeConfig(t, "--toml")
	assert.Contains(t, out, "fling_threshold = 80")
}
