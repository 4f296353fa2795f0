package script

import (
	"fmt"
	"strconv"
)

// describe renders a step as a short human-readable label.
func describe(s Step) string {
	switch s.Kind {
	case KindContent:
		return fmt.Sprintf("content %s %s y=%s", s.Content, s.Phase, num(s.Y))
	case KindRoot:
		label := fmt.Sprintf("root %s y=%s", s.Phase, num(s.Y))
		if s.Fling {
			label += " fling"
		}
		return label
	case KindTick:
		return fmt.Sprintf("tick %dms", s.MS)
	case KindAnimate:
		return "animate " + s.Direction
	default:
		return s.Kind
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
