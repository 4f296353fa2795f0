// Package headerscroll keeps a header surface and any number of scrollable
// content surfaces in sync while the user drags content.
//
// Dragging content up slides the header out of view and moves the content tops
// up with it; dragging down brings the header back. When the finger lifts the
// header settles fully open or fully closed with a short linear animation.
//
// A Controller is driven from a single event loop: pointer events, layout
// notifications and animation ticks must not be delivered concurrently.
// Every entry point absorbs failures. Bad input is logged and ignored, and a
// panic raised by a host callback is recovered and logged.
package headerscroll

import (
	"time"

	"github.com/cristianoliveira/headerscroll/internal/animation"
	"github.com/cristianoliveira/headerscroll/internal/geometry"
	"github.com/cristianoliveira/headerscroll/internal/logging"
	"github.com/cristianoliveira/headerscroll/internal/surface"
)

const (
	// DefaultSettleDuration is the length of the settle animation.
	DefaultSettleDuration = 200 * time.Millisecond
	// DefaultFlingThreshold is the minimum per-move delta a fling needs.
	DefaultFlingThreshold = 50.0
)

// State is the sync engine state.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateSettling
)

func (s State) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	case StateSettling:
		return "settling"
	default:
		return "idle"
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The global logger is used by default.
func WithLogger(l logging.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithSettleDuration sets the settle animation duration.
func WithSettleDuration(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.settleDuration = d
		}
	}
}

// WithFlingThreshold sets the per-move delta above which a fling settles at once.
func WithFlingThreshold(threshold float64) Option {
	return func(c *Controller) {
		if threshold >= 0 {
			c.flingThreshold = threshold
		}
	}
}

type dragSession struct {
	pressed     bool
	active      *Registration
	previousY   float64
	scrollingUp bool
	scrollDelta float64
}

type animationSession struct {
	tween           *animation.Tween
	target          float64
	animatedUp      bool
	running         bool
	cancelRequested bool
}

// Controller synchronizes one header with its registered content areas.
type Controller struct {
	header      surface.Surface
	yOffset     float64
	height      float64
	bounds      geometry.Range
	initialized bool
	unsubscribe func()

	// headerInitialY is where the previous settle sent the header, relative to
	// the open position: 0 when open, -height when closed. It selects the drag
	// mode and survives across drag sessions.
	headerInitialY float64

	reg  registry
	drag dragSession
	anim animationSession

	settleDuration time.Duration
	flingThreshold float64

	entered bool
	log     logging.Logger
}

// New creates a controller for header. yOffset is the gap between the header's
// container top and the header's open position. Initialization waits for the
// header's first layout pass unless the header already has a height.
func New(header surface.Surface, yOffset float64, opts ...Option) *Controller {
	c := &Controller{
		reg:            newRegistry(),
		settleDuration: DefaultSettleDuration,
		flingThreshold: DefaultFlingThreshold,
		log:            logging.With("component", "headerscroll"),
	}
	for _, opt := range opts {
		opt(c)
	}

	if yOffset < 0 {
		c.log.Warn("negative y offset, using 0", "y_offset", yOffset)
		yOffset = 0
	}
	c.yOffset = yOffset

	if header == nil {
		c.log.Error("controller created without header", "error", ErrNilSurface.Error())
		return c
	}
	c.header = header

	c.unsubscribe = header.OnLayoutReady(c.NotifyLayoutReady)
	// A header laid out before New never fires its listener again.
	if header.Height() > 0 {
		c.NotifyLayoutReady()
	}
	return c
}

// NotifyLayoutReady reads the header height and initializes the controller.
// Only the first call with a laid-out header has an effect.
func (c *Controller) NotifyLayoutReady() {
	if !c.enter("layout_ready") {
		return
	}
	defer c.leave("layout_ready")

	if c.initialized {
		return
	}
	if c.header == nil {
		c.absorb("layout_ready", ErrNilSurface)
		return
	}
	height := c.header.Height()
	if height <= 0 {
		c.absorb("layout_ready", ErrZeroHeight)
		return
	}

	c.height = height
	c.bounds = geometry.HeaderRange(c.yOffset, height)
	c.initialized = true
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.log.Debug("initialized", "height", height, "min_y", c.bounds.Min, "max_y", c.bounds.Max)
}

// Close stops listening for layout and cancels any settle animation.
func (c *Controller) Close() {
	if !c.enter("close") {
		return
	}
	defer c.leave("close")

	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.cancelAnimation()
}

// RegisterContent adds a content area. Registering an ID twice is a no-op that
// keeps the first registration and its baseline.
func (c *Controller) RegisterContent(id surface.ID, content surface.Surface, cb Callbacks) {
	if !c.enter("register") {
		return
	}
	defer c.leave("register")

	if content == nil {
		c.absorb("register", ErrNilSurface, "content", id)
		return
	}
	if cb == nil {
		c.absorb("register", ErrNilCallbacks, "content", id)
		return
	}
	if _, added := c.reg.add(id, content, cb); !added {
		c.log.Debug("content already registered", "content", id)
		return
	}
	c.log.Debug("content registered", "content", id, "baseline_y", content.Y(), "count", c.reg.len())
}

// UnregisterContent removes a content area. An active drag on it ends its
// participation immediately.
func (c *Controller) UnregisterContent(id surface.ID) {
	if !c.enter("unregister") {
		return
	}
	defer c.leave("unregister")

	reg, ok := c.reg.remove(id)
	if !ok {
		c.absorb("unregister", ErrUnknownContent, "content", id)
		return
	}
	if c.drag.active == reg {
		c.drag.active = nil
	}
}

// Registration returns a copy of the registration for id.
func (c *Controller) Registration(id surface.ID) (Registration, bool) {
	reg, ok := c.reg.get(id)
	if !ok {
		return Registration{}, false
	}
	return *reg, true
}

// Registrations returns copies of all registrations in registration order.
func (c *Controller) Registrations() []Registration {
	out := make([]Registration, 0, c.reg.len())
	for _, reg := range c.reg.all() {
		out = append(out, *reg)
	}
	return out
}

// Initialized reports whether the header height is known.
func (c *Controller) Initialized() bool { return c.initialized }

// Bounds returns the allowed header range. It is zero before initialization.
func (c *Controller) Bounds() geometry.Range { return c.bounds }

// HeaderHeight returns the header height read at initialization.
func (c *Controller) HeaderHeight() float64 { return c.height }

// HeaderY returns the header's current Y, or 0 without a header.
func (c *Controller) HeaderY() float64 {
	if c.header == nil {
		return 0
	}
	return c.header.Y()
}

// Animating reports whether a settle animation is running.
func (c *Controller) Animating() bool { return c.anim.running }

// State returns the sync engine state.
func (c *Controller) State() State {
	switch {
	case c.anim.running:
		return StateSettling
	case c.drag.pressed && c.drag.active != nil:
		return StateDragging
	default:
		return StateIdle
	}
}

// Snapshot is a read-only view of the controller state.
type Snapshot struct {
	State       State
	Initialized bool
	HeaderY     float64
	Bounds      geometry.Range
	Pressed     bool
	Active      surface.ID
	ScrollingUp bool
	ScrollDelta float64
	// HeaderOpenMode is true when the last settle left the header open.
	HeaderOpenMode bool
	Animating      bool
	Target         float64
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		State:          c.State(),
		Initialized:    c.initialized,
		HeaderY:        c.HeaderY(),
		Bounds:         c.bounds,
		Pressed:        c.drag.pressed,
		ScrollingUp:    c.drag.scrollingUp,
		ScrollDelta:    c.drag.scrollDelta,
		HeaderOpenMode: c.headerInitialY == 0,
		Animating:      c.anim.running,
		Target:         c.anim.target,
	}
	if c.drag.active != nil {
		s.Active = c.drag.active.ID
	}
	return s
}

// enter guards an entry point against re-entry from a callback.
func (c *Controller) enter(op string) bool {
	if c.entered {
		c.absorb(op, ErrReentrant)
		return false
	}
	c.entered = true
	return true
}

// leave must be deferred directly so that recover sees callback panics.
func (c *Controller) leave(op string) {
	if r := recover(); r != nil {
		c.log.Error("recovered panic", "op", op, "panic", r)
	}
	c.entered = false
}

func (c *Controller) absorb(op string, err error, args ...any) {
	fields := append([]any{"op", op, "error", err.Error()}, args...)
	if err == ErrNotInitialized {
		c.log.Debug("ignored", fields...)
		return
	}
	c.log.Warn("ignored", fields...)
}
