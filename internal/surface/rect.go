package surface

import "sync"

// Rect is an in-memory Surface. Layout is simulated with MarkLaidOut.
type Rect struct {
	mu        sync.RWMutex
	y         float64
	height    float64
	laidOut   bool
	nextID    int
	listeners map[int]func()
	order     []int
	moves     int
}

var _ Surface = (*Rect)(nil)

// NewRect creates a surface at y that has not been laid out yet.
func NewRect(y float64) *Rect {
	return &Rect{y: y, listeners: make(map[int]func())}
}

// NewLaidOutRect creates a surface that is already laid out with the given height.
func NewLaidOutRect(y, height float64) *Rect {
	r := NewRect(y)
	r.height = height
	r.laidOut = true
	return r
}

func (r *Rect) Y() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.y
}

func (r *Rect) SetY(y float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.y = y
	r.moves++
}

func (r *Rect) Height() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.height
}

// Moves returns how many times SetY was called.
func (r *Rect) Moves() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.moves
}

// LaidOut reports whether MarkLaidOut has run.
func (r *Rect) LaidOut() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.laidOut
}

// OnLayoutReady registers fn. Like a global layout listener, fn keeps firing on
// every layout pass until it unsubscribes. A surface that is already laid out
// does not replay past passes; callers check Height themselves.
func (r *Rect) OnLayoutReady(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.listeners[id] = fn
	r.order = append(r.order, id)
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.listeners, id)
	}
}

// Listeners returns the number of subscribed layout listeners.
func (r *Rect) Listeners() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.listeners)
}

// MarkLaidOut records a layout pass with the given height and notifies the
// layout listeners in subscription order. Listeners run without the lock held
// so they may read the surface or unsubscribe.
func (r *Rect) MarkLaidOut(height float64) {
	r.mu.Lock()
	r.height = height
	r.laidOut = true
	fns := make([]func(), 0, len(r.listeners))
	live := r.order[:0]
	for _, id := range r.order {
		if fn, ok := r.listeners[id]; ok {
			fns = append(fns, fn)
			live = append(live, id)
		}
	}
	r.order = live
	r.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
