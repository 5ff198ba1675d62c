package animation

import "github.com/pleskac/motion/pkg/interpolate"

// StartAnimation begins an animation when invoked with a completion
// callback and returns a stop function. Each invocation is a fresh run.
// The stop function is safe to call repeatedly; the first call before
// completion cancels the run and suppresses completion, later calls and
// calls after completion are no-ops.
type StartAnimation func(onComplete func()) (stop func())

// Callbacks carries the user-supplied per-frame and completion hooks for
// one animation. Either field may be nil.
type Callbacks[T any] struct {
	// OnUpdate fires after the motion value has been written each frame.
	OnUpdate func(T)
	// OnComplete fires when the animation finishes. It does not fire on
	// cancellation.
	OnComplete func()
}

// Options is the normalized, strategy-agnostic configuration handed to a
// strategy by [Select]. Every time field is in milliseconds.
type Options[T any] struct {
	// Keyframes is the resolved waypoint sequence, length >= 2, starting
	// at the value's current state.
	Keyframes []T

	// Velocity seeds the physics strategies, in units per second.
	Velocity float64

	// Elapsed is how much of the run has already played. Negative while
	// a delay is still pending.
	Elapsed float64

	// Duration of one timeline pass. Zero means the engine default.
	Duration float64

	// Type distinguishes the spring mode of the main-thread engine from
	// plain tweening.
	Type Type

	Ease  []Easing
	Times []float64

	Repeat      int
	RepeatDelay float64
	RepeatType  RepeatType

	// Spring holds resolved spring physics parameters; zero fields take
	// the [DefaultSpring] values.
	Spring SpringSpec

	// Inertia parameters.
	Power        float64
	TimeConstant float64
	Min          *float64
	Max          *float64
	RestDelta    float64
	RestSpeed    float64

	// OnUpdate receives every frame's value, in increasing time order.
	OnUpdate func(T)
	// OnComplete fires exactly once, after the final OnUpdate.
	OnComplete func()

	// Mixer overrides per-segment blending in the keyframe engine.
	Mixer interpolate.Mixer[T]
}

// final returns the last keyframe.
func (o Options[T]) final() T {
	return o.Keyframes[len(o.Keyframes)-1]
}

// composeComplete chains the caller's completion callback with the
// user's OnComplete, in that order.
func composeComplete(complete, user func()) func() {
	return func() {
		if complete != nil {
			complete()
		}
		if user != nil {
			user()
		}
	}
}
