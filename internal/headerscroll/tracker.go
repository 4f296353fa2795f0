package headerscroll

import (
	"math"

	"github.com/cristianoliveira/headerscroll/internal/pointer"
	"github.com/cristianoliveira/headerscroll/internal/surface"
)

// ContentTouch receives pointer events that hit a registered content surface.
// Only a press matters: it selects that content as the drag target.
func (c *Controller) ContentTouch(id surface.ID, ev pointer.Event) {
	if !c.enter("content_touch") {
		return
	}
	defer c.leave("content_touch")

	if !c.initialized {
		c.absorb("content_touch", ErrNotInitialized)
		return
	}
	if ev.Phase != pointer.PhaseDown {
		return
	}
	reg, ok := c.reg.get(id)
	if !ok {
		c.absorb("content_touch", ErrUnknownContent, "content", id)
		return
	}
	c.drag.active = reg
}

// RootTouch receives every pointer event of the screen, including the ones
// also passed to ContentTouch, and drives the sync state machine.
func (c *Controller) RootTouch(ev pointer.Event) {
	if !c.enter("root_touch") {
		return
	}
	defer c.leave("root_touch")

	if !c.initialized {
		c.absorb("root_touch", ErrNotInitialized)
		return
	}

	switch ev.Phase {
	case pointer.PhaseDown:
		c.drag.pressed = true
		c.drag.previousY = ev.Y
		// Each press starts a fresh motion sample.
		c.drag.scrollingUp = false
		c.drag.scrollDelta = 0
		if c.anim.running {
			c.anim.cancelRequested = true
			c.cancelAnimation()
		}
	case pointer.PhaseMove:
		if c.drag.active == nil {
			return
		}
		c.drag.scrollingUp = ev.Y < c.drag.previousY
		c.drag.scrollDelta = math.Abs(ev.Y - c.drag.previousY)
		c.drag.previousY = ev.Y
		if c.drag.scrollDelta != 0 {
			c.dragStep(ev.Fling)
		}
	case pointer.PhaseUp:
		c.drag.pressed = false
		if !c.bounds.AtEdge(c.header.Y()) || c.drag.scrollDelta != 0 {
			c.settle()
		}
		c.drag.active = nil
	}
}
