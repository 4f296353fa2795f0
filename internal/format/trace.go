package format

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cristianoliveira/headerscroll/internal/script"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	stepStyle   = cellStyle.Foreground(lipgloss.Color("8"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// SimpleFormatter prints one line per trace entry.
type SimpleFormatter struct{}

// NewSimpleFormatter creates a new SimpleFormatter.
func NewSimpleFormatter() *SimpleFormatter {
	return &SimpleFormatter{}
}

// FormatTrace writes the trace line by line, followed by the final positions.
func (f *SimpleFormatter) FormatTrace(res script.Result, writer io.Writer) error {
	for _, e := range res.Entries {
		if _, err := fmt.Fprintf(writer, "%3d  %-16s  %s  header=%s state=%s\n",
			e.Step, e.Event, entryDetail(e), num(e.HeaderY), e.State); err != nil {
			return err
		}
	}
	return writeSummary(res, writer)
}

// TableFormatter prints the trace as a lipgloss table.
type TableFormatter struct {
	headers []string
}

// NewTableFormatter creates a new TableFormatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{headers: []string{"Step", "Event", "Detail", "Header Y", "State"}}
}

// FormatTrace writes the trace as a table, followed by the final positions.
func (f *TableFormatter) FormatTrace(res script.Result, writer io.Writer) error {
	rows := make([][]string, 0, len(res.Entries))
	for _, e := range res.Entries {
		rows = append(rows, []string{
			strconv.Itoa(e.Step),
			e.Event,
			entryDetail(e),
			num(e.HeaderY),
			e.State,
		})
	}
	t := newTable(f.headers, rows, func(row int) bool {
		return row >= 0 && row < len(res.Entries) && res.Entries[row].Event == script.EventStep
	})
	if res.Name != "" {
		if _, err := fmt.Fprintln(writer, headerStyle.Render(res.Name)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(writer, t.String()); err != nil {
		return err
	}
	return writeSummary(res, writer)
}

// JSONFormatter prints the trace as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// FormatTrace writes the whole result as indented JSON.
func (f *JSONFormatter) FormatTrace(res script.Result, writer io.Writer) error {
	if res.Entries == nil {
		res.Entries = []script.Entry{}
	}
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal trace to JSON: %w", err)
	}
	if _, err := writer.Write(data); err != nil {
		return err
	}
	_, err = fmt.Fprintln(writer)
	return err
}

func newTable(headers []string, rows [][]string, dim func(row int) bool) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case dim != nil && dim(row):
				return stepStyle
			default:
				return cellStyle
			}
		})
}

func entryDetail(e script.Entry) string {
	switch e.Event {
	case script.EventResize:
		return fmt.Sprintf("%s top=%s", e.Content, num(e.Value))
	case script.EventBeforeAnimation:
		return fmt.Sprintf("%s up=%t delta=%s -> %s", e.Content, e.Up, num(e.Value), e.Detail)
	case script.EventAfterAnimation:
		return fmt.Sprintf("%s up=%t delta=%s", e.Content, e.Up, num(e.Value))
	default:
		return e.Detail
	}
}

func writeSummary(res script.Result, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "header y: %s\n", num(res.HeaderY)); err != nil {
		return err
	}
	ids := make([]string, 0, len(res.Contents))
	for id := range res.Contents {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if _, err := fmt.Fprintf(writer, "%s top: %s\n", id, num(res.Contents[id])); err != nil {
			return err
		}
	}
	return nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
