package core

import "time"

// Clock converts wall-clock time into simulation ticks.
// Both grid games (fixed interval) and continuous games (delta time) are
// driven through the same Advance call, so Step code never sees real time.
type Clock struct {
	interval    time.Duration
	maxFrame    time.Duration // 0 means uncapped
	accumulator time.Duration
	ticks       uint64
	stopped     bool
}

// NewFixedClock returns a clock that fires rate ticks per second and
// replays every tick that is due.
func NewFixedClock(rate int) *Clock {
	if rate <= 0 {
		rate = 60
	}
	return &Clock{interval: time.Second / time.Duration(rate)}
}

// NewAccumulatorClock returns a delta-time clock with a frame-time cap.
// Frames longer than maxFrame are truncated so a stall does not trigger a
// burst of catch-up ticks.
func NewAccumulatorClock(rate int, maxFrame time.Duration) *Clock {
	c := NewFixedClock(rate)
	c.maxFrame = maxFrame
	return c
}

// Interval returns the duration of one tick.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Paused reports whether tick production is halted.
func (c *Clock) Paused() bool {
	return c.stopped
}

// Ticks returns the number of ticks produced so far.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Advance feeds elapsed wall time and returns the number of ticks due.
func (c *Clock) Advance(elapsed time.Duration) int {
	if c.stopped || elapsed <= 0 {
		return 0
	}
	if c.maxFrame > 0 && elapsed > c.maxFrame {
		elapsed = c.maxFrame
	}
	c.accumulator += elapsed

	n := 0
	for c.accumulator >= c.interval {
		c.accumulator -= c.interval
		n++
	}
	c.ticks += uint64(n)
	return n
}

// Pause halts tick production; Advance returns 0 until Resume is called.
func (c *Clock) Pause() {
	c.stopped = true
	c.accumulator = 0
}

// Resume restarts tick production.
func (c *Clock) Resume() {
	c.stopped = false
}

// TicksFor converts a duration into a whole number of ticks at the given
// rate, never less than one.
func TicksFor(d time.Duration, rate int) int {
	if rate <= 0 {
		rate = 60
	}
	n := int(d * time.Duration(rate) / time.Second)
	return max(1, n)
}
