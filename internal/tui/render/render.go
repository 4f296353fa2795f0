// Package render draws the pieces of the demo screen: the title bar, the
// header band, pane columns and the footer.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/headerscroll/internal/errors"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("8"))
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
	headerLabelStyle = headerStyle.Bold(true)
	focusedRuleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	ruleStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyles     = map[errors.MessageType]lipgloss.Style{
		errors.MessageTypeError:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		errors.MessageTypeWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		errors.MessageTypeInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		errors.MessageTypeSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
)

// Title renders the fixed bar above the header.
func Title(text string, width int) string {
	return titleStyle.Width(width).MaxWidth(width).Render(" " + text)
}

// HeaderRow renders one row of the header band for a column. The label is
// drawn on the first row only.
func HeaderRow(label string, row, width int) string {
	if row == 0 && label != "" {
		return headerLabelStyle.Width(width).MaxWidth(width).Render(" " + label)
	}
	return headerStyle.Width(width).MaxWidth(width).Render("")
}

// PaneRule renders the top line of a pane.
func PaneRule(title string, width int, focused bool) string {
	text := fmt.Sprintf("─ %s ", title)
	if pad := width - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat("─", pad)
	}
	style := ruleStyle
	if focused {
		style = focusedRuleStyle
	}
	return style.MaxWidth(width).Render(text)
}

// PaneLine renders one line of pane content padded to width.
func PaneLine(text string, width int) string {
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(text)
}

// Blank returns width spaces.
func Blank(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(" ", width)
}

// FooterState defines the inputs needed to render the footer.
type FooterState struct {
	Status     string
	StatusType errors.MessageType
	Help       string
	Width      int
}

// Footer renders the status line and the key help.
func Footer(state FooterState) string {
	style, ok := statusStyles[state.StatusType]
	if !ok {
		style = statusStyles[errors.MessageTypeInfo]
	}
	status := style.MaxWidth(state.Width).Render(state.Status)
	if state.Help == "" {
		return status
	}
	return status + "\n" + lipgloss.NewStyle().MaxWidth(state.Width).Render(state.Help)
}
