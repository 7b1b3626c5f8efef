package game

import "time"

// FrameClock caps the loop to a fixed frame rate.
type FrameClock struct {
	ticker *time.Ticker
}

// NewFrameClock creates a clock ticking fps times per second.
func NewFrameClock(fps int) *FrameClock {
	return &FrameClock{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

// Tick blocks until the next frame slot.
func (c *FrameClock) Tick() {
	<-c.ticker.C
}

// Stop releases the clock's ticker.
func (c *FrameClock) Stop() {
	c.ticker.Stop()
}
