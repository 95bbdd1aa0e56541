package common

import "time"

// Clock supplies the duration of the current step and the monotonic time
// since the simulation started.
type Clock interface {
	Delta() time.Duration
	Elapsed() time.Duration
}

// FixedClock advances by a fixed step on every Tick. It is the clock used by
// every front-end since the simulation runs at a fixed rate.
type FixedClock struct {
	step    time.Duration
	delta   time.Duration
	elapsed time.Duration
}

func NewFixedClock(step time.Duration) *FixedClock {
	return &FixedClock{step: step}
}

// NewFixedClockTPS returns a clock stepping 1/tps seconds per tick.
func NewFixedClockTPS(tps int) *FixedClock {
	if tps <= 0 {
		tps = 60
	}
	return NewFixedClock(time.Second / time.Duration(tps))
}

// Tick starts a new step of the configured size.
func (c *FixedClock) Tick() {
	c.TickBy(c.step)
}

// TickBy starts a new step of an arbitrary size. Negative steps are clamped
// to zero so Elapsed never goes backwards.
func (c *FixedClock) TickBy(d time.Duration) {
	if d < 0 {
		d = 0
	}
	c.delta = d
	c.elapsed += d
}

func (c *FixedClock) Step() time.Duration {
	return c.step
}

func (c *FixedClock) Delta() time.Duration {
	return c.delta
}

func (c *FixedClock) Elapsed() time.Duration {
	return c.elapsed
}
