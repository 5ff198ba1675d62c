package animation

import (
	"github.com/pleskac/motion/pkg/interpolate"
	"github.com/pleskac/motion/pkg/value"
)

// Strategy is the closed set of animation backends [Select] can pick.
type Strategy int

const (
	// StrategyInstant applies the final keyframe with no intermediate
	// frames and completes immediately.
	StrategyInstant Strategy = iota
	// StrategyInertia runs the velocity-decay physics engine on a
	// continuously-ticked path; its keyframes cannot be precomputed.
	StrategyInertia
	// StrategyAccelerated hands the timeline to a platform compositor.
	StrategyAccelerated
	// StrategyMainThread runs the default tween/spring engine driven by
	// the frame ticker.
	StrategyMainThread
)

// Capabilities is everything the strategy decision depends on: what the
// value can do, what the transition asks for, and what the environment
// supports. Building it is side-effect free, and [ChooseStrategy] is a
// pure function of it, so every branch of the decision can be tested in
// isolation.
type Capabilities struct {
	// Animatable reports whether the value's type blends continuously.
	Animatable bool
	// InstantAll is the process-wide instant-animations override.
	InstantAll bool
	// Disabled is an explicit Type of none on the effective transition.
	Disabled bool
	// Type is the effective transition's requested strategy type.
	Type Type
	// Accelerable reports whether the value name is in the accelerable set.
	Accelerable bool
	// AcceleratedSupported is the environment probe result.
	AcceleratedSupported bool
	// HasOwner reports whether the value is attached to an owner.
	HasOwner bool
	// OwnerHandlesUpdates reports a custom per-frame update handler on
	// the owner. Acceleration bypasses per-frame callbacks, so such a
	// handler would never fire.
	OwnerHandlesUpdates bool
	// RepeatRequested reports a nonzero repeat count, which the
	// accelerated backend does not support.
	RepeatRequested bool
}

// ChooseStrategy picks exactly one strategy from the capabilities.
func ChooseStrategy(c Capabilities) Strategy {
	if !c.Animatable || c.InstantAll || c.Disabled {
		return StrategyInstant
	}
	if c.Type == TypeInertia {
		return StrategyInertia
	}
	if c.Accelerable && c.AcceleratedSupported &&
		c.HasOwner && !c.OwnerHandlesUpdates && !c.RepeatRequested {
		return StrategyAccelerated
	}
	return StrategyMainThread
}

// Select computes the animation for one value: it resolves the effective
// per-value transition, normalizes delay and elapsed time, materializes
// keyframes from the current value and the target, chooses a strategy,
// and returns the handle that starts it.
//
// The returned handle writes every frame's value into mv and forwards it
// to the user's OnUpdate; on completion it invokes the handle's
// completion callback followed by the user's OnComplete. Select itself
// performs no side effects and raises no errors — malformed transitions
// degrade to defaults.
//
// Starting two animations on the same value is a caller-level hazard:
// the last write wins and nothing here arbitrates. Stop the previous
// animation first.
func Select[T any](name string, mv *value.MotionValue[T], target []T, transition *Transition, user Callbacks[T]) StartAnimation {
	var root Transition
	if transition != nil {
		root = *transition
	}
	eff := root.ForValue(name)

	delay := floatOr(eff.Delay, 0)
	elapsed := floatOr(eff.Elapsed, 0) - SecondsToMilliseconds(delay)

	keyframes := ResolveKeyframes(mv.Get(), target...)

	owner := mv.Owner()
	caps := Capabilities{
		Animatable:           interpolate.CanMix(keyframes[0]),
		InstantAll:           InstantAnimations(),
		Disabled:             eff.Type == TypeNone,
		Type:                 eff.Type,
		Accelerable:          isAccelerable(name),
		AcceleratedSupported: SupportsAcceleration(),
		HasOwner:             owner != nil,
		OwnerHandlesUpdates:  owner != nil && owner.HasUpdateHandler(name),
		RepeatRequested:      intOr(eff.Repeat, 0) != 0,
	}

	opts := Options[T]{
		Keyframes: keyframes,
		Velocity:  mv.GetVelocity(),
		Elapsed:   elapsed,
		OnUpdate: func(v T) {
			mv.Set(v)
			if user.OnUpdate != nil {
				user.OnUpdate(v)
			}
		},
	}

	switch ChooseStrategy(caps) {
	case StrategyInstant:
		return startInstant(opts, user.OnComplete)

	case StrategyInertia:
		applyTransition(&opts, eff)
		return startInertia(opts, user.OnComplete)

	case StrategyAccelerated:
		if !eff.IsDefined() {
			eff = Merge(DefaultTransition(name, len(keyframes)), eff)
		}
		applyTransition(&opts, eff)
		return startAccelerated(opts, user.OnComplete)

	case StrategyMainThread:
		if !eff.IsDefined() {
			// The effective transition says nothing about motion; take
			// the per-value heuristics without overwriting explicit
			// fields.
			eff = Merge(DefaultTransition(name, len(keyframes)), eff)
		}
		applyTransition(&opts, eff)
		return startMainThread(opts, user.OnComplete)
	}
	panic("motion/animation: unreachable strategy")
}

// applyTransition overlays the effective transition's fields onto the
// options, converting public seconds fields to the milliseconds every
// strategy consumes. The already-computed elapsed is left alone.
func applyTransition[T any](opts *Options[T], t Transition) {
	opts.Type = t.Type
	if t.Duration != nil {
		opts.Duration = SecondsToMilliseconds(*t.Duration)
	}
	if t.RepeatDelay != nil {
		opts.RepeatDelay = SecondsToMilliseconds(*t.RepeatDelay)
	}
	opts.Ease = t.Ease
	opts.Times = t.Times
	opts.Repeat = intOr(t.Repeat, 0)
	opts.RepeatType = t.RepeatType

	opts.Spring = SpringSpec{
		Mass:      floatOr(t.Mass, 0),
		Stiffness: floatOr(t.Stiffness, 0),
		Damping:   floatOr(t.Damping, 0),
		RestDelta: floatOr(t.RestDelta, 0),
		RestSpeed: floatOr(t.RestSpeed, 0),
	}

	opts.Power = floatOr(t.Power, 0)
	opts.TimeConstant = floatOr(t.TimeConstant, 0)
	opts.Min = t.Min
	opts.Max = t.Max
	opts.RestDelta = floatOr(t.RestDelta, 0)
	opts.RestSpeed = floatOr(t.RestSpeed, 0)
}

// startMainThread runs the tween engine, or the spring engine when the
// transition asks for spring physics on a numeric value.
func startMainThread[T any](opts Options[T], userComplete func()) StartAnimation {
	if opts.Type == TypeSpring {
		if kf, ok := toFloats(opts.Keyframes); ok {
			return startSpring(opts, kf, userComplete)
		}
		// Springs only drive numbers; other types tween instead.
	}
	return func(complete func()) func() {
		o := opts
		o.OnComplete = composeComplete(complete, userComplete)
		eng := newKeyframeAnimation(o)
		eng.start()
		return eng.Stop
	}
}

func startSpring[T any](opts Options[T], keyframes []float64, userComplete func()) StartAnimation {
	return func(complete func()) func() {
		eng := newSpringAnimation(
			opts.Spring,
			keyframes[0],
			opts.Velocity,
			keyframes[len(keyframes)-1],
			opts.Elapsed,
			func(f float64) { opts.OnUpdate(fromFloat[T](f)) },
			composeComplete(complete, userComplete),
		)
		eng.start()
		return eng.Stop
	}
}

// startInertia runs the physics decay engine. Inertia only drives
// numeric values; anything else snaps.
func startInertia[T any](opts Options[T], userComplete func()) StartAnimation {
	kf, ok := toFloats(opts.Keyframes)
	if !ok {
		return startInstant(opts, userComplete)
	}
	return func(complete func()) func() {
		o := Options[float64]{
			Keyframes:    kf,
			Velocity:     opts.Velocity,
			Elapsed:      opts.Elapsed,
			Power:        opts.Power,
			TimeConstant: opts.TimeConstant,
			Min:          opts.Min,
			Max:          opts.Max,
			RestDelta:    opts.RestDelta,
			RestSpeed:    opts.RestSpeed,
			OnUpdate:     func(f float64) { opts.OnUpdate(fromFloat[T](f)) },
			OnComplete:   composeComplete(complete, userComplete),
		}
		eng := newInertiaAnimation(o)
		eng.start()
		return eng.Stop
	}
}
