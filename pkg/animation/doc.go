// Package animation selects and drives per-frame animation strategies
// for motion values.
//
// # Core Components
//
// The package is built around a handful of pieces:
//
//   - [Select]: given a motion value, a target, and a [Transition],
//     normalizes units and elapsed time, picks exactly one strategy
//     (instant, inertia, accelerated, or the main-thread keyframe
//     engine), and returns a [StartAnimation] handle.
//
//   - [Transition]: the declarative description of how a value should
//     move — tween durations and easings, spring physics, inertia decay,
//     repetition, and per-value overrides. Public time fields are in
//     seconds; every strategy receives milliseconds.
//
//   - [SpringSimulation]: closed-form damped spring physics used by the
//     spring and inertia strategies.
//
//   - [Ticker] and [Clock]: the frame-pump primitives. The host embeds
//     the loop and calls [StepTickers] once per frame; nothing in this
//     package schedules frames on its own.
//
// # Basic Usage
//
//	x := value.New(0.0)
//	start := animation.Select("x", x, []float64{100}, &animation.Transition{
//	    Duration: animation.Float(0.3),
//	    Ease:     []animation.Easing{animation.EaseOut},
//	}, animation.Callbacks[float64]{})
//
//	stop := start(func() { fmt.Println("done") })
//	// per frame: animation.StepTickers()
//	// to cancel: stop()
//
// Starting is one-shot per call; each invocation of the handle creates a
// fresh run. The returned stop function may be called any number of
// times — the first call before completion cancels the run and
// suppresses the completion callback, later calls are no-ops.
package animation
