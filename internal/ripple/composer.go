package ripple

// Composer gates ticks on elapsed time and tracks whether the surface may
// hold lit pixels. The zero value has never ticked and assumes a blank
// surface.
type Composer struct {
	Interval uint16

	last   uint16
	ticked bool
	dirty  bool
}

// Due reports whether a tick should run at now and, if so, records it. The
// first call always ticks.
func (c *Composer) Due(now uint16) bool {
	if c.ticked && now-c.last < c.Interval {
		return false
	}
	c.last = now
	c.ticked = true
	return true
}

// Dirty reports whether lit pixels may remain on the surface.
func (c *Composer) Dirty() bool {
	return c.dirty
}

// Wipe clears a dirty surface before drawing and reports whether it did.
func (c *Composer) Wipe(clear func()) bool {
	if !c.dirty {
		return false
	}
	clear()
	c.dirty = false
	return true
}

// Settle closes a tick that left active ripples alive. With none left the
// surface is cleared once; further idle ticks do nothing. It reports whether
// the surface changed.
func (c *Composer) Settle(active int, clear func()) bool {
	if active > 0 {
		c.dirty = true
		return true
	}
	return c.Wipe(clear)
}
