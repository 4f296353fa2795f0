package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePhaseRoundTrip(t *testing.T) {
	for _, p := range []Phase{PhaseDown, PhaseMove, PhaseUp} {
		got, ok := ParsePhase(p.String())
		assert.True(t, ok)
		assert.Equal(t, p, got)
	}

	_, ok := ParsePhase("cancel")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Phase(42).String())
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, Event{Phase: PhaseDown, Y: 10}, Down(10))
	assert.Equal(t, Event{Phase: PhaseMove, Y: 4}, Move(4))
	assert.Equal(t, Event{Phase: PhaseMove, Y: 4, Fling: true}, FlingMove(4))
	assert.Equal(t, Event{Phase: PhaseUp, Y: 2}, Up(2))
}
