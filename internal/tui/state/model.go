// Package state holds the bubbletea model of the interactive demo: a header
// band over side-by-side content panes kept in sync by a headerscroll
// controller.
package state

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/headerscroll/internal/errors"
	"github.com/cristianoliveira/headerscroll/internal/headerscroll"
	"github.com/cristianoliveira/headerscroll/internal/logging"
	"github.com/cristianoliveira/headerscroll/internal/surface"
	zone "github.com/lrstanley/bubblezone"
)

const (
	defaultWidth       = 80
	defaultHeight      = 24
	footerLines        = 2
	paneItems          = 200
	statusTTL          = 3 * time.Second
	defaultFrameRate   = 16 * time.Millisecond
	maxPanes           = 8
	defaultHeaderLines = 3
)

// Options configure the demo model.
type Options struct {
	HeaderHeight   int
	YOffset        int
	Panes          int
	SettleDuration time.Duration
	FlingThreshold float64
	FrameInterval  time.Duration
	Logger         logging.Logger
}

func (o Options) normalized() Options {
	if o.HeaderHeight <= 0 {
		o.HeaderHeight = defaultHeaderLines
	}
	if o.YOffset < 0 {
		o.YOffset = 0
	}
	if o.Panes <= 0 {
		o.Panes = 1
	}
	if o.Panes > maxPanes {
		o.Panes = maxPanes
	}
	if o.SettleDuration <= 0 {
		o.SettleDuration = headerscroll.DefaultSettleDuration
	}
	if o.FlingThreshold <= 0 {
		o.FlingThreshold = headerscroll.DefaultFlingThreshold
	}
	if o.FrameInterval <= 0 {
		o.FrameInterval = defaultFrameRate
	}
	if o.Logger == nil {
		o.Logger = logging.GetGlobal()
	}
	return o
}

type pane struct {
	id       surface.ID
	rect     *surface.Rect
	viewport viewport.Model
	force    headerscroll.Direction
	// following panes track the header while a settle animation runs.
	following bool
}

// Model is the demo's bubbletea model.
type Model struct {
	opts   Options
	ctrl   *headerscroll.Controller
	header *surface.Rect
	panes  []*pane

	width   int
	height  int
	focused int

	pressed    bool
	dragPane   int
	lastY      float64
	flingArmed bool
	ticking    bool

	keys   keyMap
	help   help.Model
	status *errors.TUIHandler
	now    func() time.Time

	zones *zone.Manager
	// hit reports whether a mouse event falls inside the zone id.
	hit func(id string, msg tea.MouseMsg) bool
}

// NewModel creates the demo model. The header is laid out, and the
// controller initialized, on the first window size message.
func NewModel(opts Options) *Model {
	opts = opts.normalized()
	m := &Model{
		opts:     opts,
		dragPane: -1,
		header:   surface.NewRect(float64(opts.YOffset)),
		keys:     newKeyMap(),
		help:     help.New(),
		status:   errors.NewTUIHandler(nil),
		now:      time.Now,
		zones:    zone.New(),
	}
	m.hit = func(id string, msg tea.MouseMsg) bool {
		info := m.zones.Get(id)
		return info != nil && info.InBounds(msg)
	}
	m.ctrl = headerscroll.New(m.header, float64(opts.YOffset),
		headerscroll.WithLogger(opts.Logger.With("component", "demo")),
		headerscroll.WithSettleDuration(opts.SettleDuration),
		headerscroll.WithFlingThreshold(opts.FlingThreshold),
	)
	for i := 0; i < opts.Panes; i++ {
		m.addPane(i)
	}
	return m
}

func (m *Model) addPane(i int) {
	id := surface.ID(string(rune('a' + i)))
	p := &pane{
		id:       id,
		rect:     surface.NewLaidOutRect(float64(m.opts.YOffset), 0),
		viewport: viewport.New(defaultWidth/m.opts.Panes, defaultHeight),
	}
	p.viewport.SetContent(paneContent(id))
	m.panes = append(m.panes, p)
	m.ctrl.RegisterContent(id, p.rect, headerscroll.CallbackFuncs{
		Resize: func(top float64) {
			p.rect.SetY(top)
		},
		BeforeAnimation: func(up bool, delta float64) headerscroll.Direction {
			return p.force
		},
		AfterAnimation: func(up bool, delta float64) {
			p.following = true
		},
	})
}

func paneContent(id surface.ID) string {
	var s []byte
	for i := 1; i <= paneItems; i++ {
		if i > 1 {
			s = append(s, '\n')
		}
		s = fmt.Appendf(s, "%s · item %d", id, i)
	}
	return string(s)
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	case frameMsg:
		return m.handleFrame()
	}
	return m, nil
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	if !m.header.LaidOut() {
		m.header.MarkLaidOut(float64(m.opts.HeaderHeight))
	}
	return m, nil
}

// Controller exposes the controller driving the model.
func (m *Model) Controller() *headerscroll.Controller {
	return m.ctrl
}

// Close releases the controller's layout subscription.
func (m *Model) Close() {
	m.ctrl.Close()
}

// afterInput follows the header with animated panes and schedules the next
// frame while a settle animation runs.
func (m *Model) afterInput() tea.Cmd {
	m.syncFollowers()
	if !m.ctrl.Animating() || m.ticking {
		return nil
	}
	m.ticking = true
	return m.frameCmd()
}

func (m *Model) handleFrame() (tea.Model, tea.Cmd) {
	m.ctrl.Tick(m.opts.FrameInterval)
	m.syncFollowers()
	if !m.ctrl.Animating() {
		m.ticking = false
		return m, nil
	}
	return m, m.frameCmd()
}

func (m *Model) frameCmd() tea.Cmd {
	return tea.Tick(m.opts.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg{at: t}
	})
}

// syncFollowers keeps panes that received an after-animation callback glued
// to the header until the animation stops.
func (m *Model) syncFollowers() {
	animating := m.ctrl.Animating()
	headerY := m.header.Y()
	for _, p := range m.panes {
		if !p.following {
			continue
		}
		p.rect.SetY(headerY)
		if !animating {
			p.following = false
		}
	}
}

func (m *Model) focusedPane() *pane {
	if m.focused < 0 || m.focused >= len(m.panes) {
		return nil
	}
	return m.panes[m.focused]
}

func (m *Model) paneZoneID(i int) string {
	return fmt.Sprintf("pane-%d", i)
}
