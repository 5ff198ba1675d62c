package animation_test

import (
	"testing"
	"time"

	"github.com/pleskac/motion/pkg/animation"
	"github.com/pleskac/motion/pkg/graphics"
	motiontest "github.com/pleskac/motion/pkg/testing"
	"github.com/pleskac/motion/pkg/value"
)

func TestResolveKeyframes(t *testing.T) {
	got := animation.ResolveKeyframes(1.0, 5.0)
	if len(got) != 2 || got[0] != 1 || got[1] != 5 {
		t.Errorf("single target = %v, want [1 5]", got)
	}

	got = animation.ResolveKeyframes(1.0, 0.0, 10.0, 5.0)
	if len(got) != 3 || got[0] != 0 || got[2] != 5 {
		t.Errorf("multi target = %v, want [0 10 5]", got)
	}

	got = animation.ResolveKeyframes(3.0)
	if len(got) != 2 || got[0] != 3 || got[1] != 3 {
		t.Errorf("empty target = %v, want [3 3]", got)
	}
}

func TestTween_MultiKeyframe(t *testing.T) {
	clk := withFakeClock(t)

	mv := value.New(0.0)
	stop := animation.Select("x", mv, []float64{0, 100, 50}, &animation.Transition{
		Type:     animation.TypeTween,
		Duration: animation.Float(1),
		Ease:     []animation.Easing{animation.Linear},
	}, animation.Callbacks[float64]{})(nil)
	defer stop()

	motiontest.Pump(clk, 250*time.Millisecond, 1)
	if got := mv.Get(); got != 50 {
		t.Errorf("value at 250ms = %v, want 50 (halfway up the first segment)", got)
	}

	motiontest.Pump(clk, 500*time.Millisecond, 1)
	if got := mv.Get(); got != 75 {
		t.Errorf("value at 750ms = %v, want 75 (halfway down the second segment)", got)
	}
}

func TestTween_CustomTimes(t *testing.T) {
	clk := withFakeClock(t)

	// The middle keyframe sits at 80% of the timeline.
	mv := value.New(0.0)
	stop := animation.Select("x", mv, []float64{0, 100, 50}, &animation.Transition{
		Type:     animation.TypeTween,
		Duration: animation.Float(1),
		Ease:     []animation.Easing{animation.Linear},
		Times:    []float64{0, 0.8, 1},
	}, animation.Callbacks[float64]{})(nil)
	defer stop()

	motiontest.Pump(clk, 400*time.Millisecond, 1)
	if got := mv.Get(); got != 50 {
		t.Errorf("value at 400ms = %v, want 50 (halfway to the 800ms keyframe)", got)
	}
}

func TestTween_RepeatLoop(t *testing.T) {
	clk := withFakeClock(t)

	mv := value.New(0.0)
	completions := 0
	stop := animation.Select("x", mv, []float64{100}, &animation.Transition{
		Type:     animation.TypeTween,
		Duration: animation.Float(1),
		Ease:     []animation.Easing{animation.Linear},
		Repeat:   animation.Int(1),
	}, animation.Callbacks[float64]{})(func() { completions++ })
	defer stop()

	// 1250ms: 250ms into the second pass of a looping timeline.
	motiontest.Pump(clk, 1250*time.Millisecond, 1)
	if got := mv.Get(); got != 25 {
		t.Errorf("value at 1250ms = %v, want 25", got)
	}
	if completions != 0 {
		t.Errorf("completed during the second pass: %d", completions)
	}

	motiontest.Pump(clk, time.Second, 1)
	if got := mv.Get(); got != 100 {
		t.Errorf("final value = %v, want 100", got)
	}
	if completions != 1 {
		t.Errorf("completions = %d, want 1", completions)
	}
}

func TestTween_RepeatReverse(t *testing.T) {
	clk := withFakeClock(t)

	mv := value.New(0.0)
	stop := animation.Select("x", mv, []float64{100}, &animation.Transition{
		Type:       animation.TypeTween,
		Duration:   animation.Float(1),
		Ease:       []animation.Easing{animation.Linear},
		Repeat:     animation.Int(1),
		RepeatType: animation.RepeatReverse,
	}, animation.Callbacks[float64]{})(nil)
	defer stop()

	// 1250ms: 250ms into the reversed second pass, playing backwards
	// from 100.
	motiontest.Pump(clk, 1250*time.Millisecond, 1)
	if got := mv.Get(); got != 75 {
		t.Errorf("value at 1250ms = %v, want 75", got)
	}

	// A reversed odd final pass rests at the first keyframe.
	motiontest.Pump(clk, time.Second, 1)
	if got := mv.Get(); got != 0 {
		t.Errorf("final value = %v, want 0", got)
	}
}

func TestTween_RepeatDelayHoldsEndValue(t *testing.T) {
	clk := withFakeClock(t)

	mv := value.New(0.0)
	stop := animation.Select("x", mv, []float64{100}, &animation.Transition{
		Type:        animation.TypeTween,
		Duration:    animation.Float(1),
		Ease:        []animation.Easing{animation.Linear},
		Repeat:      animation.Int(1),
		RepeatDelay: animation.Float(0.5),
	}, animation.Callbacks[float64]{})(nil)
	defer stop()

	// 1200ms: inside the repeat-delay gap, holding the first pass's end.
	motiontest.Pump(clk, 1200*time.Millisecond, 1)
	if got := mv.Get(); got != 100 {
		t.Errorf("value inside repeat delay = %v, want 100", got)
	}

	// 1750ms: 250ms into the second pass.
	motiontest.Pump(clk, 550*time.Millisecond, 1)
	if got := mv.Get(); got != 25 {
		t.Errorf("value in second pass = %v, want 25", got)
	}
}

func TestTween_ColorKeyframes(t *testing.T) {
	clk := withFakeClock(t)

	mv := value.New(graphics.ColorBlack)
	stop := animation.Select("color", mv, []graphics.Color{graphics.ColorWhite}, &animation.Transition{
		Type:     animation.TypeTween,
		Duration: animation.Float(1),
		Ease:     []animation.Easing{animation.Linear},
	}, animation.Callbacks[graphics.Color]{})(nil)
	defer stop()

	motiontest.Pump(clk, 500*time.Millisecond, 1)
	r, g, b, a := mv.Get().RGBAF()
	if r < 0.4 || r > 0.6 || g < 0.4 || g > 0.6 || b < 0.4 || b > 0.6 {
		t.Errorf("midpoint color = (%v %v %v), want grey", r, g, b)
	}
	if a != 1 {
		t.Errorf("midpoint alpha = %v, want 1", a)
	}

	motiontest.Pump(clk, 600*time.Millisecond, 1)
	if mv.Get() != graphics.ColorWhite {
		t.Errorf("final color = %v, want white", mv.Get())
	}
}

func TestSpring_ConvergesOnTarget(t *testing.T) {
	clk := withFakeClock(t)

	mv := value.New(0.0)
	completions := 0
	stop := animation.Select("x", mv, []float64{50}, &animation.Transition{
		Type:      animation.TypeSpring,
		Stiffness: animation.Float(300),
		Damping:   animation.Float(20),
	}, animation.Callbacks[float64]{})(func() { completions++ })
	defer stop()

	if !motiontest.PumpUntil(clk, frame, 10*time.Second, func() bool { return completions > 0 }) {
		t.Fatal("spring did not settle")
	}
	if got := mv.Get(); got != 50 {
		t.Errorf("settled value = %v, want exactly 50", got)
	}
	if completions != 1 {
		t.Errorf("completions = %d, want 1", completions)
	}

	motiontest.Pump(clk, frame, 5)
	if completions != 1 {
		t.Errorf("completions after settle = %d, want 1", completions)
	}
}

func TestSpring_OnColorFallsBackToTween(t *testing.T) {
	clk := withFakeClock(t)

	// Spring physics cannot drive a color; the run must still reach the
	// target through the tween engine.
	mv := value.New(graphics.ColorBlack)
	done := false
	stop := animation.Select("color", mv, []graphics.Color{graphics.ColorRed}, &animation.Transition{
		Type: animation.TypeSpring,
	}, animation.Callbacks[graphics.Color]{})(func() { done = true })
	defer stop()

	if !motiontest.PumpUntil(clk, frame, 2*time.Second, func() bool { return done }) {
		t.Fatal("color animation did not complete")
	}
	if mv.Get() != graphics.ColorRed {
		t.Errorf("final color = %v, want red", mv.Get())
	}
}

func TestInertia_DecaysToRest(t *testing.T) {
	clk := withFakeClock(t)

	mv := value.New(0.0)
	mv.SetVelocity(500)
	done := false
	stop := animation.Select("x", mv, nil, &animation.Transition{
		Type: animation.TypeInertia,
	}, animation.Callbacks[float64]{})(func() { done = true })
	defer stop()

	if !motiontest.PumpUntil(clk, frame, 10*time.Second, func() bool { return done }) {
		t.Fatal("inertia did not come to rest")
	}
	// Projected rest position is from + power*velocity = 0 + 0.8*500.
	if got := mv.Get(); got != 400 {
		t.Errorf("rest position = %v, want 400", got)
	}
}

func TestInertia_BouncesAtBoundary(t *testing.T) {
	clk := withFakeClock(t)

	mv := value.New(0.0)
	mv.SetVelocity(500)
	done := false
	stop := animation.Select("x", mv, nil, &animation.Transition{
		Type: animation.TypeInertia,
		Max:  animation.Float(100),
	}, animation.Callbacks[float64]{})(func() { done = true })
	defer stop()

	if !motiontest.PumpUntil(clk, frame, 10*time.Second, func() bool { return done }) {
		t.Fatal("bounded inertia did not settle")
	}
	if got := mv.Get(); got != 100 {
		t.Errorf("settled position = %v, want the 100 boundary", got)
	}
}
