package testing

import (
	"time"

	"github.com/pleskac/motion/pkg/animation"
)

// Pump advances the fake clock by step and steps all active tickers,
// frames times. Use it to drive an animation to a known point in time.
func Pump(clk *FakeClock, step time.Duration, frames int) {
	for range frames {
		clk.Advance(step)
		animation.StepTickers()
	}
}

// PumpUntil pumps frames of the given step until the condition holds or
// the deadline elapses, and reports whether the condition was met.
func PumpUntil(clk *FakeClock, step time.Duration, deadline time.Duration, cond func() bool) bool {
	var elapsed time.Duration
	for elapsed < deadline {
		if cond() {
			return true
		}
		clk.Advance(step)
		animation.StepTickers()
		elapsed += step
	}
	return cond()
}
