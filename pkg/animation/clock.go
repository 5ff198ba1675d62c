package animation

import (
	"time"

	"github.com/pleskac/motion/pkg/value"
)

// Clock is the time source behind the frame tickers and velocity
// tracking. The default reads system time; tests install a fake via
// SetClock and advance it by hand between frames.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = systemClock{}

// SetClock replaces the animation clock and re-points motion value
// velocity timestamps at it, so one fake clock governs both frame
// elapsed time and the velocity a new animation is seeded with. It
// returns the previous clock so callers can restore it during cleanup:
//
//	defer SetClock(SetClock(fake))
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	value.SetNowFunc(c.Now)
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
