package animation_test

import (
	"testing"
	"time"

	"github.com/pleskac/motion/pkg/animation"
	motiontest "github.com/pleskac/motion/pkg/testing"
	"github.com/pleskac/motion/pkg/value"
)

const frame = 16 * time.Millisecond

// withFakeClock installs a fake animation clock for the duration of the
// test and returns it.
func withFakeClock(t *testing.T) *motiontest.FakeClock {
	t.Helper()
	clk := motiontest.NewFakeClock()
	prev := animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clk
}

func TestChooseStrategy(t *testing.T) {
	// The accelerated path needs every condition to hold at once.
	eligible := animation.Capabilities{
		Animatable:           true,
		Accelerable:          true,
		AcceleratedSupported: true,
		HasOwner:             true,
	}

	cases := []struct {
		name string
		caps animation.Capabilities
		want animation.Strategy
	}{
		{"unanimatable", animation.Capabilities{}, animation.StrategyInstant},
		{"instant override", animation.Capabilities{Animatable: true, InstantAll: true}, animation.StrategyInstant},
		{"disabled", animation.Capabilities{Animatable: true, Disabled: true}, animation.StrategyInstant},
		{"inertia", animation.Capabilities{Animatable: true, Type: animation.TypeInertia}, animation.StrategyInertia},
		{"plain", animation.Capabilities{Animatable: true}, animation.StrategyMainThread},
		{"accelerated", eligible, animation.StrategyAccelerated},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := animation.ChooseStrategy(c.caps); got != c.want {
				t.Errorf("ChooseStrategy = %v, want %v", got, c.want)
			}
		})
	}

	// Each acceleration condition independently flips the decision back
	// to the main-thread engine.
	flips := []struct {
		name string
		mut  func(*animation.Capabilities)
	}{
		{"not accelerable", func(c *animation.Capabilities) { c.Accelerable = false }},
		{"unsupported environment", func(c *animation.Capabilities) { c.AcceleratedSupported = false }},
		{"no owner", func(c *animation.Capabilities) { c.HasOwner = false }},
		{"owner handles updates", func(c *animation.Capabilities) { c.OwnerHandlesUpdates = true }},
		{"repeat requested", func(c *animation.Capabilities) { c.RepeatRequested = true }},
	}
	for _, f := range flips {
		t.Run("flip/"+f.name, func(t *testing.T) {
			caps := eligible
			f.mut(&caps)
			if got := animation.ChooseStrategy(caps); got != animation.StrategyMainThread {
				t.Errorf("ChooseStrategy = %v, want main thread", got)
			}
		})
	}
}

func TestSelect_TypeNoneIsInstant(t *testing.T) {
	withFakeClock(t)

	mv := value.New(0.0)
	var updates []float64
	completions := 0

	start := animation.Select("x", mv, []float64{10}, &animation.Transition{Type: animation.TypeNone},
		animation.Callbacks[float64]{OnUpdate: func(v float64) { updates = append(updates, v) }})

	stop := start(func() { completions++ })

	if len(updates) != 1 || updates[0] != 10 {
		t.Fatalf("updates = %v, want exactly [10]", updates)
	}
	if completions != 1 {
		t.Fatalf("completions = %d, want 1", completions)
	}
	if mv.Get() != 10 {
		t.Errorf("value = %v, want 10", mv.Get())
	}

	// Cancellation after completion is a no-op.
	stop()
	stop()
	if completions != 1 {
		t.Errorf("completions after stop = %d, want 1", completions)
	}
}

func TestSelect_InstantAnimationsFlag(t *testing.T) {
	withFakeClock(t)

	animation.SetInstantAnimations(true)
	t.Cleanup(func() { animation.SetInstantAnimations(false) })

	mv := value.New(0.0)
	done := false
	animation.Select("x", mv, []float64{5}, &animation.Transition{Duration: animation.Float(1)},
		animation.Callbacks[float64]{})(func() { done = true })

	if !done || mv.Get() != 5 {
		t.Errorf("instant flag: done=%v value=%v, want true and 5", done, mv.Get())
	}

	// Cleared flag restores normal selection.
	animation.SetInstantAnimations(false)
	mv2 := value.New(0.0)
	animation.Select("x", mv2, []float64{5}, &animation.Transition{Duration: animation.Float(1)},
		animation.Callbacks[float64]{})(nil)
	if mv2.Get() == 5 {
		t.Error("animation resolved instantly with the flag cleared")
	}
}

func TestSelect_UnanimatableValueIsInstant(t *testing.T) {
	withFakeClock(t)

	mv := value.New("start")
	done := false
	animation.Select("label", mv, []string{"end"}, &animation.Transition{Duration: animation.Float(1)},
		animation.Callbacks[string]{})(func() { done = true })

	if !done {
		t.Error("expected instant completion for unanimatable type")
	}
	if mv.Get() != "end" {
		t.Errorf("value = %q, want %q", mv.Get(), "end")
	}
}

func TestSelect_TweenTimeline(t *testing.T) {
	clk := withFakeClock(t)

	mv := value.New(0.0)
	completions := 0
	stop := animation.Select("x", mv, []float64{100}, &animation.Transition{
		Type:     animation.TypeTween,
		Duration: animation.Float(1),
		Ease:     []animation.Easing{animation.Linear},
	}, animation.Callbacks[float64]{})(func() { completions++ })
	defer stop()

	motiontest.Pump(clk, 250*time.Millisecond, 1)
	if got := mv.Get(); got != 25 {
		t.Errorf("value at 250ms = %v, want 25", got)
	}

	motiontest.Pump(clk, 250*time.Millisecond, 1)
	if got := mv.Get(); got != 50 {
		t.Errorf("value at 500ms = %v, want 50", got)
	}

	motiontest.Pump(clk, 600*time.Millisecond, 1)
	if got := mv.Get(); got != 100 {
		t.Errorf("final value = %v, want 100", got)
	}
	if completions != 1 {
		t.Errorf("completions = %d, want 1", completions)
	}

	// Ticks after completion change nothing.
	motiontest.Pump(clk, frame, 3)
	if completions != 1 {
		t.Errorf("completions after extra frames = %d, want 1", completions)
	}
}

func TestSelect_ElapsedResumption(t *testing.T) {
	clk := withFakeClock(t)

	// A run that reports 500ms already played, net of a 200ms delay,
	// resumes 300ms into the timeline.
	mv := value.New(0.0)
	stop := animation.Select("x", mv, []float64{100}, &animation.Transition{
		Type:     animation.TypeTween,
		Duration: animation.Float(1),
		Ease:     []animation.Easing{animation.Linear},
		Delay:    animation.Float(0.2),
		Elapsed:  animation.Float(500),
	}, animation.Callbacks[float64]{})(nil)
	defer stop()

	motiontest.Pump(clk, 0, 1)
	if got := mv.Get(); got != 30 {
		t.Errorf("resumed value = %v, want 30 (300ms into a 1s timeline)", got)
	}
}

func TestSelect_DelayHoldsUpdates(t *testing.T) {
	clk := withFakeClock(t)

	mv := value.New(0.0)
	var updates int
	stop := animation.Select("x", mv, []float64{100}, &animation.Transition{
		Type:     animation.TypeTween,
		Duration: animation.Float(0.5),
		Delay:    animation.Float(0.2),
	}, animation.Callbacks[float64]{OnUpdate: func(float64) { updates++ }})(nil)
	defer stop()

	motiontest.Pump(clk, 50*time.Millisecond, 3) // 150ms, still inside the delay
	if updates != 0 {
		t.Errorf("updates during delay = %d, want 0", updates)
	}

	motiontest.Pump(clk, 100*time.Millisecond, 1) // 250ms, past the delay
	if updates == 0 {
		t.Error("expected updates after the delay elapsed")
	}
}

func TestSelect_ValueOverrides(t *testing.T) {
	clk := withFakeClock(t)

	tr := &animation.Transition{
		Type:     animation.TypeTween,
		Duration: animation.Float(1),
		Ease:     []animation.Easing{animation.Linear},
		Values: map[string]animation.Transition{
			"opacity": {
				Type:     animation.TypeTween,
				Duration: animation.Float(0.5),
				Ease:     []animation.Easing{animation.Linear},
			},
		},
	}

	opacity := value.New(0.0)
	stop := animation.Select("opacity", opacity, []float64{1}, tr, animation.Callbacks[float64]{})(nil)
	defer stop()

	motiontest.Pump(clk, 250*time.Millisecond, 1)
	if got := opacity.Get(); got != 0.5 {
		t.Errorf("opacity at 250ms = %v, want 0.5 under the 0.5s override", got)
	}
}

func TestSelect_StopCancelsWithoutCompletion(t *testing.T) {
	clk := withFakeClock(t)

	mv := value.New(0.0)
	completions := 0
	stop := animation.Select("x", mv, []float64{100}, &animation.Transition{
		Type:     animation.TypeTween,
		Duration: animation.Float(1),
	}, animation.Callbacks[float64]{})(func() { completions++ })

	motiontest.Pump(clk, frame, 2)
	stop()
	at := mv.Get()

	motiontest.Pump(clk, frame, 10)
	if mv.Get() != at {
		t.Errorf("value moved after stop: %v -> %v", at, mv.Get())
	}
	if completions != 0 {
		t.Errorf("completions = %d, want 0 after cancellation", completions)
	}

	// stop is idempotent.
	stop()
	stop()
	if completions != 0 {
		t.Errorf("completions after repeated stop = %d, want 0", completions)
	}
}

func TestSelect_DefaultHeuristics(t *testing.T) {
	clk := withFakeClock(t)

	// An undefined transition on a positional value takes the spring
	// defaults and still converges on the target.
	x := value.New(0.0)
	done := false
	stop := animation.Select("x", x, []float64{100}, nil,
		animation.Callbacks[float64]{})(func() { done = true })
	defer stop()

	if !motiontest.PumpUntil(clk, frame, 5*time.Second, func() bool { return done }) {
		t.Fatal("spring-defaulted animation did not complete")
	}
	if got := x.Get(); got != 100 {
		t.Errorf("settled value = %v, want 100", got)
	}
}

type handlerOwner struct {
	handles map[string]bool
}

func (o *handlerOwner) HasUpdateHandler(name string) bool {
	return o.handles[name]
}

func TestSelect_OwnerHandlerStaysOnMainThread(t *testing.T) {
	clk := withFakeClock(t)

	// With an owner whose handler is registered, the run must still
	// deliver per-frame updates — acceleration would swallow them.
	mv := value.New(0.0)
	mv.SetOwner(&handlerOwner{handles: map[string]bool{"x": true}})

	updates := 0
	stop := animation.Select("x", mv, []float64{10}, &animation.Transition{
		Type:     animation.TypeTween,
		Duration: animation.Float(0.2),
	}, animation.Callbacks[float64]{OnUpdate: func(float64) { updates++ }})(nil)
	defer stop()

	motiontest.Pump(clk, frame, 5)
	if updates == 0 {
		t.Error("expected per-frame updates with an owner handler present")
	}
}
