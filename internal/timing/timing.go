// Package timing tracks per-frame delta time and a once-a-second FPS figure.
package timing

import "time"

// Clock measures the time between frames.
type Clock struct {
	lastFrame time.Time
	delta     float32

	fpsFrames     int
	fpsLastUpdate time.Time
	fps           float64
}

// NewClock starts both the frame and FPS windows at now.
func NewClock(now time.Time) *Clock {
	return &Clock{lastFrame: now, fpsLastUpdate: now}
}

// Tick advances to now and returns the seconds since the previous tick.
// Time going backwards yields zero.
func (c *Clock) Tick(now time.Time) float32 {
	d := now.Sub(c.lastFrame).Seconds()
	if d < 0 {
		d = 0
	}
	c.delta = float32(d)
	c.lastFrame = now
	return c.delta
}

// Delta is the value returned by the last Tick.
func (c *Clock) Delta() float32 {
	return c.delta
}

// CountFrame records a presented frame. Once at least a second has passed
// since the last report it returns the average FPS and true.
func (c *Clock) CountFrame(now time.Time) (float64, bool) {
	c.fpsFrames++
	elapsed := now.Sub(c.fpsLastUpdate)
	if elapsed < time.Second {
		return c.fps, false
	}
	c.fps = float64(c.fpsFrames) / elapsed.Seconds()
	c.fpsFrames = 0
	c.fpsLastUpdate = now
	return c.fps, true
}
