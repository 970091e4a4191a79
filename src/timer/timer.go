package timer

// Countdown counts whole ticks down to zero. It is shared by the movement
// and door-hold phases of a cabin, so at most one phase is timed at a time.
type Countdown struct {
	Ticks int
}

// Start arms the countdown, replacing whatever was left of the previous phase.
func (c *Countdown) Start(ticks int) {
	if ticks < 0 {
		ticks = 0
	}
	c.Ticks = ticks
}

func (c *Countdown) Stop() {
	c.Ticks = 0
}

// Tick decrements by one, never below zero.
func (c *Countdown) Tick() {
	if c.Ticks > 0 {
		c.Ticks--
	}
}

func (c Countdown) Expired() bool {
	return c.Ticks == 0
}

func (c Countdown) Remaining() int {
	return c.Ticks
}
