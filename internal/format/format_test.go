package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/cristianoliveira/headerscroll/internal/config"
	"github.com/cristianoliveira/headerscroll/internal/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() script.Result {
	return script.Result{
		Name: "sample",
		Entries: []script.Entry{
			{Step: 1, Event: script.EventResize, Content: "inbox", Value: 40, HeaderY: -60, State: "dragging"},
			{Step: 1, Event: script.EventStep, Detail: "root move y=440", HeaderY: -60, State: "dragging"},
			{Step: 2, Event: script.EventBeforeAnimation, Content: "inbox", Detail: "default", Value: 60, Up: true, HeaderY: -60, State: "idle"},
			{Step: 2, Event: script.EventAfterAnimation, Content: "inbox", Value: 60, Up: true, HeaderY: -60, State: "settling"},
		},
		Contents: map[string]float64{"inbox": 40, "folders": 100},
		HeaderY:  -60,
	}
}

func TestFormatterFactory(t *testing.T) {
	tests := []struct {
		name     string
		ftype    FormatterType
		expected interface{}
	}{
		{"Simple", FormatterTypeSimple, &SimpleFormatter{}},
		{"Table", FormatterTypeTable, &TableFormatter{}},
		{"JSON", FormatterTypeJSON, &JSONFormatter{}},
		{"Unknown", FormatterType("unknown"), &TableFormatter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.expected, NewFormatter(tt.ftype))
		})
	}
}

func TestParseFormatterType(t *testing.T) {
	ft, err := ParseFormatterType("")
	require.NoError(t, err)
	assert.Equal(t, FormatterTypeTable, ft)

	ft, err = ParseFormatterType("json")
	require.NoError(t, err)
	assert.Equal(t, FormatterTypeJSON, ft)

	_, err = ParseFormatterType("xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestSimpleFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSimpleFormatter().FormatTrace(sampleResult(), &buf))

	output := buf.String()
	assert.Contains(t, output, "inbox top=40")
	assert.Contains(t, output, "inbox up=true delta=60 -> default")
	assert.Contains(t, output, "state=settling")
	assert.Contains(t, output, "header y: -60\nfolders top: 100\ninbox top: 40\n")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter().FormatTrace(sampleResult(), &buf))

	output := buf.String()
	assert.Contains(t, output, "sample")
	assert.Contains(t, output, "Step")
	assert.Contains(t, output, "Header Y")
	assert.Contains(t, output, "root move y=440")
	assert.Contains(t, output, "after_animation")
	assert.Contains(t, output, "inbox top: 40")
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().FormatTrace(sampleResult(), &buf))

	var decoded struct {
		Name     string             `json:"name"`
		Entries  []script.Entry     `json:"entries"`
		Contents map[string]float64 `json:"contents"`
		HeaderY  float64            `json:"header_y"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "sample", decoded.Name)
	assert.Len(t, decoded.Entries, 4)
	assert.Equal(t, -60.0, decoded.HeaderY)
	assert.Equal(t, 100.0, decoded.Contents["folders"])
}

func TestJSONFormatterEmptyTrace(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().FormatTrace(script.Result{}, &buf))
	assert.Contains(t, buf.String(), `"entries": []`)
}

func TestFormatConfig(t *testing.T) {
	var buf bytes.Buffer
	entries := []config.Entry{
		{Key: "fling_threshold", Value: "50", Default: "50"},
		{Key: "settle_duration_ms", Value: "300", Default: "200"},
	}
	require.NoError(t, FormatConfig(entries, &buf))

	output := buf.String()
	assert.Contains(t, output, "Key")
	assert.Contains(t, output, "fling_threshold")
	assert.Contains(t, output, "300 *")
	assert.NotContains(t, output, "50 *")
}
