package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderRange(t *testing.T) {
	r := HeaderRange(0, 100)
	assert.Equal(t, -100.0, r.Min)
	assert.Equal(t, 0.0, r.Max)

	r = HeaderRange(10, 56)
	assert.Equal(t, -46.0, r.Min)
	assert.Equal(t, 10.0, r.Max)
	assert.Equal(t, 56.0, r.Span())
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		lo   float64
		hi   float64
		want float64
	}{
		{"inside", -30, -100, 0, -30},
		{"below", -130, -100, 0, -100},
		{"above", 12, -100, 0, 0},
		{"at min", -100, -100, 0, -100},
		{"swapped bounds", 5, 0, -100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.v, tt.lo, tt.hi))
		})
	}
}

func TestRangePredicates(t *testing.T) {
	r := Range{Min: -100, Max: 0}

	assert.True(t, r.Contains(-100))
	assert.True(t, r.Contains(0))
	assert.False(t, r.Contains(1))

	assert.True(t, r.StrictlyInside(-50))
	assert.False(t, r.StrictlyInside(-100))
	assert.False(t, r.StrictlyInside(0))

	assert.True(t, r.AtEdge(0))
	assert.True(t, r.AtEdge(-100))
	assert.False(t, r.AtEdge(-1))

	assert.Equal(t, -100.0, r.Clamp(-500))
	assert.Equal(t, "[-100, 0]", r.String())
}
