package hal

import (
	"math"
	"time"
)

const fpsSamples = 30

// FPSCounter averages the frame rate over the last fpsSamples frames.
type FPSCounter struct {
	now    func() time.Time
	stamps [fpsSamples + 1]time.Time
	head   int
	n      int
}

// NewFPSCounter returns a counter reading time from now (time.Now if nil).
func NewFPSCounter(now func() time.Time) *FPSCounter {
	if now == nil {
		now = time.Now
	}
	return &FPSCounter{now: now}
}

// Tick records the end of a frame.
func (c *FPSCounter) Tick() {
	c.stamps[c.head] = c.now()
	c.head = (c.head + 1) % len(c.stamps)
	if c.n < len(c.stamps) {
		c.n++
	}
}

// FPS returns the average frames per second, or 0 before two frames.
func (c *FPSCounter) FPS() int {
	if c.n < 2 {
		return 0
	}
	newest := c.stamps[(c.head-1+len(c.stamps))%len(c.stamps)]
	oldest := c.stamps[(c.head-c.n+len(c.stamps))%len(c.stamps)]
	d := newest.Sub(oldest)
	if d <= 0 {
		return 0
	}
	return int(math.Round(float64(c.n-1) / d.Seconds()))
}
