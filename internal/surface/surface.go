// Package surface describes the host-side view primitives the header sync core
// manipulates: a movable rectangle with a Y position and a height.
package surface

// ID is a stable, caller-supplied identity for a surface.
type ID string

// Surface is the host surface contract.
type Surface interface {
	// Y returns the current top position.
	Y() float64
	// SetY moves the surface top to y.
	SetY(y float64)
	// Height returns the laid-out height. It is zero before layout.
	Height() float64
	// OnLayoutReady registers fn to be called once the surface has been laid
	// out. The returned func removes the listener.
	OnLayoutReady(fn func()) (unsubscribe func())
}
