package headerscroll

// Direction lets a content area override the settle decision.
type Direction int

const (
	// DirectionUseDefault keeps the built-in settle rules.
	DirectionUseDefault Direction = iota
	// DirectionUp hides the header.
	DirectionUp
	// DirectionDown reveals the header.
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "default"
	}
}

// ParseDirection accepts "up", "down" and "default" (or "").
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "", "default":
		return DirectionUseDefault, true
	case "up":
		return DirectionUp, true
	case "down":
		return DirectionDown, true
	default:
		return DirectionUseDefault, false
	}
}

// Callbacks is implemented by every registered content area.
type Callbacks interface {
	// OnResize asks the host to move the content top to top.
	OnResize(top float64)
	// OnHeaderBeforeAnimation runs before the settle rules and may force a direction.
	OnHeaderBeforeAnimation(scrollingUp bool, scrollDelta float64) Direction
	// OnHeaderAfterAnimation runs when a settle animation is launched.
	OnHeaderAfterAnimation(animatedUp bool, scrollDelta float64)
}

// CallbackFuncs adapts plain functions to Callbacks. Nil fields are no-ops.
type CallbackFuncs struct {
	Resize          func(top float64)
	BeforeAnimation func(scrollingUp bool, scrollDelta float64) Direction
	AfterAnimation  func(animatedUp bool, scrollDelta float64)
}

var _ Callbacks = CallbackFuncs{}

func (f CallbackFuncs) OnResize(top float64) {
	if f.Resize != nil {
		f.Resize(top)
	}
}

func (f CallbackFuncs) OnHeaderBeforeAnimation(scrollingUp bool, scrollDelta float64) Direction {
	if f.BeforeAnimation == nil {
		return DirectionUseDefault
	}
	return f.BeforeAnimation(scrollingUp, scrollDelta)
}

func (f CallbackFuncs) OnHeaderAfterAnimation(animatedUp bool, scrollDelta float64) {
	if f.AfterAnimation != nil {
		f.AfterAnimation(animatedUp, scrollDelta)
	}
}
