// Package format renders replay traces and configuration listings for the CLI.
package format

import (
	"fmt"
	"io"

	"github.com/cristianoliveira/headerscroll/internal/script"
)

// Formatter writes a replay result.
type Formatter interface {
	FormatTrace(res script.Result, writer io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeSimple prints one line per trace entry.
	FormatterTypeSimple FormatterType = "simple"

	// FormatterTypeTable prints the trace as a bordered table.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeJSON prints the trace as indented JSON.
	FormatterTypeJSON FormatterType = "json"
)

// ParseFormatterType validates a --format flag value.
func ParseFormatterType(s string) (FormatterType, error) {
	switch t := FormatterType(s); t {
	case FormatterTypeSimple, FormatterTypeTable, FormatterTypeJSON:
		return t, nil
	case "":
		return FormatterTypeTable, nil
	default:
		return "", fmt.Errorf("unknown format %q (want simple, table or json)", s)
	}
}

// NewFormatter creates a new formatter of the specified type.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeSimple:
		return NewSimpleFormatter()
	case FormatterTypeJSON:
		return NewJSONFormatter()
	default:
		return NewTableFormatter()
	}
}
