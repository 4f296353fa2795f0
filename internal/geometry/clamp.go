// Package geometry provides the range helpers used to keep the header and
// content surfaces inside their allowed vertical positions.
package geometry

import "fmt"

// Range is a closed interval [Min, Max] of Y positions.
type Range struct {
	Min float64
	Max float64
}

// HeaderRange returns the allowed header Y range for a header of the given
// height sitting yOffset below its container's top edge.
// Max is the fully visible position, Min the fully hidden one.
func HeaderRange(yOffset, height float64) Range {
	return Range{Min: yOffset - height, Max: yOffset}
}

// Clamp returns y limited to r.
func (r Range) Clamp(y float64) float64 {
	return Clamp(y, r.Min, r.Max)
}

// Contains reports whether y lies in the closed range.
func (r Range) Contains(y float64) bool {
	return y >= r.Min && y <= r.Max
}

// StrictlyInside reports whether y lies strictly between Min and Max.
func (r Range) StrictlyInside(y float64) bool {
	return y > r.Min && y < r.Max
}

// AtEdge reports whether y equals either end of the range.
func (r Range) AtEdge(y float64) bool {
	return y == r.Min || y == r.Max
}

// Span is Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

// Clamp limits v to [lo, hi]. When lo > hi the bounds are swapped.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
