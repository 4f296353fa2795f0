// Package animation provides a tick-driven linear property animation, the host
// primitive the settle animator is built on.
package animation

import "time"

// Listener receives lifecycle notifications. Any field may be nil.
// OnEnd fires after OnCancel as well, like a platform animator does.
type Listener struct {
	OnStart  func()
	OnEnd    func()
	OnCancel func()
}

// Tween interpolates linearly from one value to another over a fixed duration.
// It never advances on its own; the host calls Advance from its frame loop.
type Tween struct {
	from     float64
	to       float64
	duration time.Duration
	elapsed  time.Duration
	set      func(float64)
	listener Listener
	running  bool
	value    float64
}

// NewTween creates a tween that writes interpolated values through set.
func NewTween(from, to float64, duration time.Duration, set func(float64), listener Listener) *Tween {
	if set == nil {
		set = func(float64) {}
	}
	if duration < 0 {
		duration = 0
	}
	return &Tween{
		from:     from,
		to:       to,
		duration: duration,
		set:      set,
		listener: listener,
		value:    from,
	}
}

// Start begins the animation. OnStart runs synchronously and may cancel it.
// A zero duration completes immediately.
func (t *Tween) Start() {
	if t.running {
		return
	}
	t.running = true
	t.elapsed = 0
	if t.listener.OnStart != nil {
		t.listener.OnStart()
	}
	if !t.running {
		return
	}
	if t.duration == 0 {
		t.apply(1)
		t.finish()
	}
}

// Advance moves the animation forward by dt.
func (t *Tween) Advance(dt time.Duration) {
	if !t.running || dt <= 0 {
		return
	}
	t.elapsed += dt
	fraction := 1.0
	if t.duration > 0 && t.elapsed < t.duration {
		fraction = float64(t.elapsed) / float64(t.duration)
	}
	t.apply(fraction)
	if fraction >= 1 {
		t.finish()
	}
}

// Cancel stops the animation where it is. The last written value stays.
func (t *Tween) Cancel() {
	if !t.running {
		return
	}
	t.running = false
	if t.listener.OnCancel != nil {
		t.listener.OnCancel()
	}
	if t.listener.OnEnd != nil {
		t.listener.OnEnd()
	}
}

// Running reports whether the animation is in flight.
func (t *Tween) Running() bool { return t.running }

// Value returns the last interpolated value.
func (t *Tween) Value() float64 { return t.value }

// Target returns the end value.
func (t *Tween) Target() float64 { return t.to }

// Fraction returns the completed share of the duration in [0, 1].
func (t *Tween) Fraction() float64 {
	if t.duration == 0 {
		if t.running {
			return 0
		}
		return 1
	}
	f := float64(t.elapsed) / float64(t.duration)
	if f > 1 {
		return 1
	}
	return f
}

func (t *Tween) apply(fraction float64) {
	t.value = t.from + (t.to-t.from)*fraction
	t.set(t.value)
}

func (t *Tween) finish() {
	t.running = false
	if t.listener.OnEnd != nil {
		t.listener.OnEnd()
	}
}
