// Package clock measures elapsed wall-clock time between game ticks.
package clock

import "time"

// Clock reports the time since the previous tick and the total time
// accumulated across ticks
type Clock struct {
	now  func() time.Time
	last time.Time

	// total is the sum of all dt values returned by Tick
	total float64

	// maxStep caps a single dt so a stall does not teleport the ball
	maxStep float64
}

// New creates a clock reading the system time. A maxStep of zero disables
// the cap.
func New(maxStep float64) *Clock {
	return NewWithSource(time.Now, maxStep)
}

// NewWithSource creates a clock reading time from now
func NewWithSource(now func() time.Time, maxStep float64) *Clock {
	return &Clock{
		now:     now,
		last:    now(),
		maxStep: maxStep,
	}
}

// Tick returns the seconds elapsed since the previous Tick, Skip or Reset
func (c *Clock) Tick() float64 {
	t := c.now()
	dt := t.Sub(c.last).Seconds()
	c.last = t

	if dt < 0 {
		dt = 0
	}
	if c.maxStep > 0 && dt > c.maxStep {
		dt = c.maxStep
	}
	c.total += dt
	return dt
}

// Skip discards the time since the previous tick, e.g. while paused
func (c *Clock) Skip() {
	c.last = c.now()
}

// Total returns the accumulated seconds
func (c *Clock) Total() float64 {
	return c.total
}

// Reset starts counting from zero
func (c *Clock) Reset() {
	c.last = c.now()
	c.total = 0
}
