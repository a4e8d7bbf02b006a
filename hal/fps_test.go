package hal

import (
	"testing"
	"time"
)

func TestFPSCounter(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	c := NewFPSCounter(clock)
	if got := c.FPS(); got != 0 {
		t.Fatalf("FPS() before frames = %d, want 0", got)
	}
	c.Tick()
	if got := c.FPS(); got != 0 {
		t.Fatalf("FPS() after one frame = %d, want 0", got)
	}

	for i := 0; i < 100; i++ {
		now = now.Add(time.Second / 60)
		c.Tick()
	}
	if got := c.FPS(); got != 60 {
		t.Fatalf("FPS() at 60Hz = %d, want 60", got)
	}

	// The window slides: a burst of slower frames pulls the average down.
	for i := 0; i < fpsSamples; i++ {
		now = now.Add(time.Second / 20)
		c.Tick()
	}
	if got := c.FPS(); got != 20 {
		t.Fatalf("FPS() at 20Hz = %d, want 20", got)
	}
}

func TestFPSCounterStalledClock(t *testing.T) {
	now := time.Unix(5, 0)
	c := NewFPSCounter(func() time.Time { return now })
	c.Tick()
	c.Tick()
	if got := c.FPS(); got != 0 {
		t.Fatalf("FPS() with no elapsed time = %d, want 0", got)
	}
}
