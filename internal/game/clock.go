package game

// Clock is the monotonic frame counter driving time-based effects
// (idle bobbing, spawn cadence). It is never reset by a game reset.
type Clock struct {
	frame int
}

// Advance increments the counter and returns the new frame number.
func (c *Clock) Advance() int {
	c.frame++
	return c.frame
}

// Frame returns the current frame number.
func (c *Clock) Frame() int {
	return c.frame
}
