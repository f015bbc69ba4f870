package runner

// FrameClock is a deterministic Scheduler. Frontends call Advance once per
// display frame; tests call it directly.
type FrameClock struct {
	pending func()
}

// NewFrameClock creates an idle clock.
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// RequestNextTick implements Scheduler. A second request before Advance
// replaces the first.
func (c *FrameClock) RequestNextTick(handler func()) {
	c.pending = handler
}

// Advance runs the pending handler, if any. The handler may request the
// next tick while it runs. Returns false when nothing was scheduled.
func (c *FrameClock) Advance() bool {
	h := c.pending
	if h == nil {
		return false
	}
	c.pending = nil
	h()
	return true
}

// Pending reports whether a tick is scheduled.
func (c *FrameClock) Pending() bool {
	return c.pending != nil
}
