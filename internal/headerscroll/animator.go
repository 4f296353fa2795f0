package headerscroll

import (
	"time"

	"github.com/cristianoliveira/headerscroll/internal/animation"
)

// AnimateUp settles the header fully hidden.
func (c *Controller) AnimateUp() {
	c.publicAnimate("animate_up", true)
}

// AnimateDown settles the header fully visible.
func (c *Controller) AnimateDown() {
	c.publicAnimate("animate_down", false)
}

func (c *Controller) publicAnimate(op string, up bool) {
	if !c.enter(op) {
		return
	}
	defer c.leave(op)

	if !c.initialized {
		c.absorb(op, ErrNotInitialized)
		return
	}
	c.animateToward(up)
}

// CancelAnimation stops the settle animation where it is.
func (c *Controller) CancelAnimation() {
	if !c.enter("cancel_animation") {
		return
	}
	defer c.leave("cancel_animation")

	c.cancelAnimation()
}

// Tick advances the settle animation by dt. Hosts call it once per frame.
func (c *Controller) Tick(dt time.Duration) {
	if !c.enter("tick") {
		return
	}
	defer c.leave("tick")

	if c.anim.tween == nil || !c.anim.running {
		return
	}
	c.anim.tween.Advance(dt)
}

func (c *Controller) animateToward(up bool) {
	c.cancelAnimation()

	target, mode := c.bounds.Max, 0.0
	if up {
		target, mode = c.bounds.Min, -c.height
	}
	from := c.header.Y()
	if from == target {
		return
	}

	c.headerInitialY = mode
	c.anim.target = target
	c.anim.animatedUp = up
	c.anim.running = true
	c.anim.cancelRequested = false

	var tween *animation.Tween
	tween = animation.NewTween(from, target, c.settleDuration, c.setHeaderY, animation.Listener{
		OnStart: func() {
			if c.anim.cancelRequested {
				tween.Cancel()
			}
		},
		OnEnd: func() {
			if c.anim.tween == tween {
				c.anim.running = false
				c.anim.cancelRequested = false
			}
		},
		OnCancel: func() {
			c.anim.cancelRequested = false
		},
	})
	c.anim.tween = tween
	c.log.Debug("settle", "up", up, "from", from, "to", target, "duration", c.settleDuration)
	tween.Start()

	if active := c.drag.active; active != nil {
		active.Callbacks.OnHeaderAfterAnimation(up, c.drag.scrollDelta)
	}
}

func (c *Controller) setHeaderY(y float64) {
	c.header.SetY(c.bounds.Clamp(y))
}

// cancelAnimation stops the running tween synchronously. The header keeps its
// current position.
func (c *Controller) cancelAnimation() {
	if c.anim.tween == nil || !c.anim.running {
		return
	}
	c.anim.tween.Cancel()
	c.anim.running = false
	c.anim.cancelRequested = false
}
