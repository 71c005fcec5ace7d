package core

import "time"

// maxFrameTime caps the time fed into a Clock in one call so a stalled
// terminal does not trigger a burst of catch-up ticks.
const maxFrameTime = 250 * time.Millisecond

// Clock is a fixed-timestep accumulator. The platform feeds it real elapsed
// time each frame and runs as many simulation ticks as it reports.
type Clock struct {
	step        time.Duration
	accumulator time.Duration
}

// NewClock creates a clock producing ticksPerSecond ticks per second.
// Non-positive rates fall back to one tick per second.
func NewClock(ticksPerSecond int) *Clock {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 1
	}
	return &Clock{step: time.Second / time.Duration(ticksPerSecond)}
}

// Step returns the fixed tick duration.
func (c *Clock) Step() time.Duration {
	return c.step
}

// Advance adds elapsed time and returns the number of whole ticks due.
func (c *Clock) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		return 0
	}
	if elapsed > maxFrameTime {
		elapsed = maxFrameTime
	}
	c.accumulator += elapsed

	ticks := 0
	for c.accumulator >= c.step {
		c.accumulator -= c.step
		ticks++
	}
	return ticks
}

// Alpha returns how far the clock is into the next tick, in [0, 1).
func (c *Clock) Alpha() float64 {
	return float64(c.accumulator) / float64(c.step)
}

// Reset drops any accumulated time.
func (c *Clock) Reset() {
	c.accumulator = 0
}
