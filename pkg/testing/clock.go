package testing

import (
	"sync"
	"time"
)

// FakeClock is a hand-advanced animation.Clock. It starts at the Unix
// epoch so frame timestamps read as plain offsets from zero, which
// keeps failure messages legible. All methods are safe for concurrent
// use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at the Unix epoch.
func NewFakeClock() *FakeClock {
	return NewFakeClockAt(time.Unix(0, 0))
}

// NewFakeClockAt returns a FakeClock starting at a specific instant.
func NewFakeClockAt(t time.Time) *FakeClock {
	return &FakeClock{now: t}
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
