package headerscroll

import "github.com/cristianoliveira/headerscroll/internal/surface"

// Registration is a registered content area.
type Registration struct {
	ID        surface.ID
	Surface   surface.Surface
	Callbacks Callbacks
	// BaselineY is the content Y captured at registration time.
	BaselineY float64
}

// registry keeps registrations keyed by ID in insertion order.
type registry struct {
	byID  map[surface.ID]*Registration
	order []*Registration
}

func newRegistry() registry {
	return registry{byID: make(map[surface.ID]*Registration)}
}

func (r *registry) get(id surface.ID) (*Registration, bool) {
	reg, ok := r.byID[id]
	return reg, ok
}

// add stores a new registration. It reports false if id is already present.
func (r *registry) add(id surface.ID, s surface.Surface, cb Callbacks) (*Registration, bool) {
	if existing, ok := r.byID[id]; ok {
		return existing, false
	}
	reg := &Registration{ID: id, Surface: s, Callbacks: cb, BaselineY: s.Y()}
	r.byID[id] = reg
	r.order = append(r.order, reg)
	return reg, true
}

func (r *registry) remove(id surface.ID) (*Registration, bool) {
	reg, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	delete(r.byID, id)
	for i, cur := range r.order {
		if cur == reg {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return reg, true
}

func (r *registry) all() []*Registration {
	return r.order
}

func (r *registry) len() int {
	return len(r.order)
}
