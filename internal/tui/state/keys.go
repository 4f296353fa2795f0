package state

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/headerscroll/internal/headerscroll"
)

type keyMap struct {
	Fling     key.Binding
	ForceUp   key.Binding
	ForceDown key.Binding
	Open      key.Binding
	Hide      key.Binding
	Cancel    key.Binding
	NextPane  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Fling: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fling next move"),
		),
		ForceUp: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "force up"),
		),
		ForceDown: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "force down"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open header"),
		),
		Hide: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "hide header"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "stop animation / clear status"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fling, k.ForceUp, k.ForceDown, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fling, k.ForceUp, k.ForceDown},
		{k.Open, k.Hide, k.Cancel},
		{k.NextPane, k.Help, k.Quit},
	}
}

// handleKeyMsg processes keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Fling):
		m.flingArmed = !m.flingArmed
		if m.flingArmed {
			m.status.Warning("fling armed for the next move")
		} else {
			m.status.Info("fling disarmed")
		}
	case key.Matches(msg, m.keys.ForceUp):
		m.toggleForce(headerscroll.DirectionUp)
	case key.Matches(msg, m.keys.ForceDown):
		m.toggleForce(headerscroll.DirectionDown)
	case key.Matches(msg, m.keys.Open):
		m.followAll()
		m.ctrl.AnimateDown()
	case key.Matches(msg, m.keys.Hide):
		m.followAll()
		m.ctrl.AnimateUp()
	case key.Matches(msg, m.keys.Cancel):
		if m.ctrl.Animating() {
			m.ctrl.CancelAnimation()
		} else {
			m.status.Clear()
		}
	case key.Matches(msg, m.keys.NextPane):
		if len(m.panes) > 0 {
			m.focused = (m.focused + 1) % len(m.panes)
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, m.afterInput()
}

// toggleForce sets the focused pane's settle override to dir, or back to the
// default when it already is dir.
func (m *Model) toggleForce(dir headerscroll.Direction) {
	p := m.focusedPane()
	if p == nil {
		return
	}
	if p.force == dir {
		p.force = headerscroll.DirectionUseDefault
	} else {
		p.force = dir
	}
	m.status.Info(fmt.Sprintf("pane %s settles %s", p.id, p.force))
}

func (m *Model) followAll() {
	if !m.ctrl.Initialized() {
		return
	}
	for _, p := range m.panes {
		p.following = true
	}
}
