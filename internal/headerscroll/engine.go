package headerscroll

// dragStep moves the header and content tops for one non-zero move.
func (c *Controller) dragStep(fling bool) {
	up := c.drag.scrollingUp
	delta := c.drag.scrollDelta

	if fling && delta > c.flingThreshold {
		c.log.Debug("fling", "up", up, "delta", delta)
		c.animateToward(up)
		return
	}

	if c.anim.running || !c.drag.pressed {
		return
	}

	active := c.drag.active
	if up {
		c.header.SetY(c.bounds.Clamp(c.header.Y() - delta))
		if c.headerInitialY == 0 {
			// Header started open: keep every scroller glued to it.
			for _, reg := range c.reg.all() {
				reg.Callbacks.OnResize(c.bounds.Clamp(reg.Surface.Y() - delta))
			}
			return
		}
		active.Callbacks.OnResize(c.bounds.Clamp(active.Surface.Y() - delta))
		return
	}

	c.header.SetY(c.bounds.Clamp(c.header.Y() + delta))
	active.Callbacks.OnResize(c.bounds.Clamp(active.Surface.Y() + delta))
}

// settle decides, on release, whether the header animates open or closed.
// The first matching rule wins.
func (c *Controller) settle() {
	if c.drag.pressed {
		c.cancelAnimation()
		return
	}
	active := c.drag.active
	if active == nil {
		return
	}

	up := c.drag.scrollingUp
	delta := c.drag.scrollDelta

	switch active.Callbacks.OnHeaderBeforeAnimation(up, delta) {
	case DirectionUp:
		c.animateToward(true)
		return
	case DirectionDown:
		c.animateToward(false)
		return
	}

	h := c.height
	half := h / 2
	// Header position relative to fully open.
	y := c.header.Y() - c.bounds.Max

	switch {
	case c.bounds.StrictlyInside(active.Surface.Y()):
		c.animateToward(false)
	case up && delta > half:
		c.animateToward(true)
	case up && y < -half:
		c.animateToward(true)
	case up && y > -half:
		c.animateToward(false)
	case !up && y <= -h:
		c.animateToward(false)
	case !up && delta > half:
		c.animateToward(false)
	case !up && y < -half:
		c.animateToward(true)
	case !up && y > -half:
		c.animateToward(false)
	}
}
