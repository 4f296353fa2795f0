package state

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/headerscroll/internal/pointer"
)

const wheelStep = 3

// handleMouseMsg turns terminal mouse events into controller touches. Every
// left-button event goes to the root handler; a press inside a pane body is
// also delivered to that pane first.
func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	y := float64(msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			m.scrollWheel(msg)
			return m, nil
		case tea.MouseButtonLeft:
			m.dragPane = -1
			if i, ok := m.paneAt(msg); ok {
				m.focused = i
				m.dragPane = i
				m.ctrl.ContentTouch(m.panes[i].id, pointer.Down(y))
			}
			m.pressed = true
			m.lastY = y
			m.ctrl.RootTouch(pointer.Down(y))
		}
	case tea.MouseActionMotion:
		if !m.pressed {
			return m, nil
		}
		ev := pointer.Move(y)
		if m.flingArmed {
			ev = pointer.FlingMove(y)
			m.flingArmed = false
		}
		before := m.header.Y()
		m.ctrl.RootTouch(ev)
		if m.header.Y() == before && !m.ctrl.Animating() {
			m.scrollDragged(m.lastY - y)
		}
		m.lastY = y
	case tea.MouseActionRelease:
		if !m.pressed {
			return m, nil
		}
		m.pressed = false
		m.dragPane = -1
		m.ctrl.RootTouch(pointer.Up(y))
	}
	return m, m.afterInput()
}

// paneAt returns the pane whose body is under the pointer. The header band
// covers the panes.
func (m *Model) paneAt(msg tea.MouseMsg) (int, bool) {
	if m.headerRowVisible(msg.Y) || msg.Y < m.opts.YOffset {
		return 0, false
	}
	for i := range m.panes {
		if !m.hit(m.paneZoneID(i), msg) {
			continue
		}
		if msg.Y < m.paneTopRow(i) {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

func (m *Model) headerTopRow() int {
	return int(math.Round(m.header.Y()))
}

func (m *Model) headerRowVisible(row int) bool {
	top := m.headerTopRow()
	return row >= m.opts.YOffset && row >= top && row < top+m.opts.HeaderHeight
}

func (m *Model) paneTopRow(i int) int {
	return m.opts.HeaderHeight + int(math.Round(m.panes[i].rect.Y()))
}

// scrollDragged scrolls the dragged pane once the header is pinned.
func (m *Model) scrollDragged(dy float64) {
	if m.dragPane < 0 || m.dragPane >= len(m.panes) || dy == 0 {
		return
	}
	vp := &m.panes[m.dragPane].viewport
	vp.SetYOffset(vp.YOffset + int(dy))
}

func (m *Model) scrollWheel(msg tea.MouseMsg) {
	i, ok := m.paneAt(msg)
	if !ok {
		return
	}
	vp := &m.panes[i].viewport
	if msg.Button == tea.MouseButtonWheelUp {
		vp.SetYOffset(vp.YOffset - wheelStep)
		return
	}
	vp.SetYOffset(vp.YOffset + wheelStep)
}
