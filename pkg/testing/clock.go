package testing

import (
	"sync"
	"time"
)

// FakeClock stamps the ticks a Tester emits. All methods are safe for
// concurrent use.
type FakeClock struct {
	mu       sync.Mutex
	now      time.Time
	interval time.Duration
}

// NewFakeClock returns a FakeClock starting at a fixed epoch and stepping
// 16ms per tick.
func NewFakeClock() *FakeClock {
	return &FakeClock{
		now:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		interval: 16 * time.Millisecond,
	}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// SetInterval changes how far each tick advances the clock.
func (c *FakeClock) SetInterval(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.interval = d
}

// tick advances one interval and returns the new time.
func (c *FakeClock) tick() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.interval)
	return c.now
}
