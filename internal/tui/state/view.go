package state

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/headerscroll/internal/errors"
	"github.com/cristianoliveira/headerscroll/internal/headerscroll"
	"github.com/cristianoliveira/headerscroll/internal/tui/render"
)

const title = "headerscroll demo"

// View renders the TUI.
func (m *Model) View() string {
	width, height := m.size()
	bodyRows := height - footerLines
	if bodyRows < 0 {
		bodyRows = 0
	}

	var s strings.Builder
	for r := 0; r < m.opts.YOffset && r < bodyRows; r++ {
		text := ""
		if r == 0 {
			text = title
		}
		s.WriteString(render.Title(text, width))
		s.WriteString("\n")
	}

	if bodyRows > m.opts.YOffset && len(m.panes) > 0 {
		cols := make([]string, len(m.panes))
		colWidth := width / len(m.panes)
		for i := range m.panes {
			w := colWidth
			if i == len(m.panes)-1 {
				w = width - colWidth*(len(m.panes)-1)
			}
			cols[i] = m.renderColumn(i, w, bodyRows)
		}
		s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
		s.WriteString("\n")
	}

	status, statusType := m.statusLine()
	s.WriteString(render.Footer(render.FooterState{
		Status:     status,
		StatusType: statusType,
		Help:       m.help.View(m.keys),
		Width:      width,
	}))

	return m.zones.Scan(s.String())
}

func (m *Model) size() (int, int) {
	width, height := m.width, m.height
	if width == 0 {
		width = defaultWidth
	}
	if height == 0 {
		height = defaultHeight
	}
	return width, height
}

// renderColumn draws rows [YOffset, rows) of pane i: header band rows where
// the header covers them, then the pane rule and its viewport.
func (m *Model) renderColumn(i, width, rows int) string {
	p := m.panes[i]
	headerTop := m.headerTopRow()
	top := m.paneTopRow(i)

	p.viewport.Width = width
	p.viewport.Height = rows - top - 1
	if p.viewport.Height < 0 {
		p.viewport.Height = 0
	}
	body := strings.Split(p.viewport.View(), "\n")

	label := ""
	if i == 0 {
		label = m.headerLabel()
	}
	lines := make([]string, 0, rows-m.opts.YOffset)
	for r := m.opts.YOffset; r < rows; r++ {
		switch {
		case m.headerRowVisible(r):
			lines = append(lines, render.HeaderRow(label, r-headerTop, width))
		case r == top:
			lines = append(lines, render.PaneRule(m.paneTitle(i), width, i == m.focused))
		case r > top && r-top-1 < len(body):
			lines = append(lines, render.PaneLine(body[r-top-1], width))
		default:
			lines = append(lines, render.Blank(width))
		}
	}
	return m.zones.Mark(m.paneZoneID(i), strings.Join(lines, "\n"))
}

func (m *Model) headerLabel() string {
	snap := m.ctrl.Snapshot()
	mode := "open"
	if !snap.HeaderOpenMode {
		mode = "closed"
	}
	return fmt.Sprintf("HEADER  y=%g  %s  %s", snap.HeaderY, snap.State, mode)
}

func (m *Model) paneTitle(i int) string {
	p := m.panes[i]
	if p.force == headerscroll.DirectionUseDefault {
		return string(p.id)
	}
	return fmt.Sprintf("%s (force %s)", p.id, p.force)
}

// statusLine returns the latest unexpired message, or a summary of the
// controller state.
func (m *Model) statusLine() (string, errors.MessageType) {
	if msg, ok := m.status.Latest(); ok && !msg.Expired(m.now(), statusTTL) {
		return msg.Text, msg.Type
	}
	if !m.ctrl.Initialized() {
		return "waiting for layout", errors.MessageTypeInfo
	}
	snap := m.ctrl.Snapshot()
	active := "-"
	if snap.Active != "" {
		active = string(snap.Active)
	}
	fling := ""
	if m.flingArmed {
		fling = "  fling armed"
	}
	return fmt.Sprintf("state=%s header=%g bounds=%s active=%s%s",
		snap.State, snap.HeaderY, snap.Bounds, active, fling), errors.MessageTypeInfo
}
