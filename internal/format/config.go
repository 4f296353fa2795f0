package format

import (
	"fmt"
	"io"

	"github.com/cristianoliveira/headerscroll/internal/config"
)

// FormatConfig writes configuration entries as a table. Values that differ
// from their default are marked with an asterisk.
func FormatConfig(entries []config.Entry, writer io.Writer) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		value := e.Value
		if e.Value != e.Default {
			value += " *"
		}
		rows = append(rows, []string{e.Key, value, e.Default})
	}
	t := newTable([]string{"Key", "Value", "Default"}, rows, nil)
	_, err := fmt.Fprintln(writer, t.String())
	return err
}
