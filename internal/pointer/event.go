// Package pointer defines the pointer stream consumed by the header sync core.
package pointer

// Phase is the lifecycle phase of a pointer event.
type Phase int

const (
	// PhaseDown is a finger (or button) press.
	PhaseDown Phase = iota
	// PhaseMove is a drag while pressed.
	PhaseMove
	// PhaseUp is the release.
	PhaseUp
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	default:
		return "unknown"
	}
}

// ParsePhase converts the textual phase used in scripts and logs.
func ParsePhase(s string) (Phase, bool) {
	switch s {
	case "down":
		return PhaseDown, true
	case "move":
		return PhaseMove, true
	case "up":
		return PhaseUp, true
	default:
		return 0, false
	}
}

// Event is one sample of the pointer stream.
type Event struct {
	Phase Phase
	Y     float64
	// Fling marks a move that the host gesture layer has classified as a
	// release-with-velocity.
	Fling bool
}

// Down returns a press at y.
func Down(y float64) Event { return Event{Phase: PhaseDown, Y: y} }

// Move returns a drag sample at y.
func Move(y float64) Event { return Event{Phase: PhaseMove, Y: y} }

// FlingMove returns a drag sample at y flagged as a fling.
func FlingMove(y float64) Event { return Event{Phase: PhaseMove, Y: y, Fling: true} }

// Up returns a release at y.
func Up(y float64) Event { return Event{Phase: PhaseUp, Y: y} }
