// Package testing provides deterministic test tooling for animation code.
//
// Install a [FakeClock] as the animation clock, start an animation, and
// pump frames by hand:
//
//	func TestFade(t *testing.T) {
//	    clk := motiontest.NewFakeClock()
//	    defer animation.SetClock(animation.SetClock(clk))
//
//	    opacity := value.New(0.0)
//	    stop := animation.Select("opacity", opacity, []float64{1}, tr,
//	        animation.Callbacks[float64]{})(nil)
//	    defer stop()
//
//	    motiontest.Pump(clk, 16*time.Millisecond, 20)
//	    // assert on opacity.Get()
//	}
package testing
