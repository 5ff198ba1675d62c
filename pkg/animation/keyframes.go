package animation

import (
	"fmt"
	"time"

	"github.com/pleskac/motion/pkg/interpolate"
)

// defaultDuration is the timeline length, in milliseconds, when neither
// the transition nor the per-value defaults specify one.
const defaultDuration = 300

// maxFrameDelta caps the per-frame time step fed to the physics
// simulations, in seconds. A stalled frame then slows the animation
// instead of making it jump.
const maxFrameDelta = 0.032

// ResolveKeyframes expands a target description into the waypoint
// sequence an animation plays through. A single target becomes
// [current, target]; an explicit multi-keyframe target is used as given;
// an empty target holds the current value.
func ResolveKeyframes[T any](current T, target ...T) []T {
	switch len(target) {
	case 0:
		return []T{current, current}
	case 1:
		return []T{current, target[0]}
	default:
		return target
	}
}

// keyframeAnimation is the main-thread tween engine: a duration/easing
// timeline across the keyframes, with optional repetition and elapsed
// resumption. One instance is one run.
type keyframeAnimation[T any] struct {
	opts   Options[T]
	mapper func(float64) T

	duration    float64 // ms, one timeline pass
	repeatDelay float64 // ms
	repeat      int     // negative repeats forever

	status Status
	ticker *Ticker
}

func newKeyframeAnimation[T any](opts Options[T]) *keyframeAnimation[T] {
	duration := opts.Duration
	if duration <= 0 {
		duration = defaultDuration
	}

	times := opts.Times
	if len(times) == 0 {
		times = evenOffsets(len(opts.Keyframes))
	} else if len(times) != len(opts.Keyframes) {
		panic(fmt.Sprintf("motion/animation: %d times for %d keyframes", len(times), len(opts.Keyframes)))
	}
	offsets := make([]float64, len(times))
	for i, t := range times {
		offsets[i] = t * duration
	}

	return &keyframeAnimation[T]{
		opts: opts,
		mapper: interpolate.Range(offsets, opts.Keyframes, &interpolate.Options[T]{
			Ease:  opts.Ease,
			Mixer: opts.Mixer,
		}),
		duration:    duration,
		repeatDelay: opts.RepeatDelay,
		repeat:      opts.Repeat,
	}
}

func (a *keyframeAnimation[T]) start() {
	a.status = StatusRunning
	a.ticker = NewTicker(a.tick)
	a.ticker.Start()
}

func (a *keyframeAnimation[T]) tick(elapsed time.Duration) {
	if a.status != StatusRunning {
		return
	}

	total := durationMs(elapsed) + a.opts.Elapsed
	if total < 0 {
		// Delay still pending.
		return
	}

	if a.repeat >= 0 && total >= a.totalDuration() {
		a.emit(a.endOffset())
		a.finish()
		return
	}

	span := a.duration + a.repeatDelay
	iteration := 0
	within := total
	if span > 0 {
		iteration = int(total / span)
		within = total - float64(iteration)*span
	}
	if within > a.duration {
		// Inside a repeat-delay gap: hold the end of the iteration.
		within = a.duration
	}
	if a.opts.RepeatType == RepeatReverse && iteration%2 == 1 {
		within = a.duration - within
	}
	a.emit(within)
}

// totalDuration is the full run length for a finite repeat count.
func (a *keyframeAnimation[T]) totalDuration() float64 {
	n := float64(a.repeat)
	return a.duration*(n+1) + a.repeatDelay*n
}

// endOffset is the timeline position of the final resting value, which
// for an odd reversed repetition is the first keyframe.
func (a *keyframeAnimation[T]) endOffset() float64 {
	if a.opts.RepeatType == RepeatReverse && a.repeat%2 == 1 {
		return 0
	}
	return a.duration
}

func (a *keyframeAnimation[T]) emit(offset float64) {
	if a.opts.OnUpdate != nil {
		a.opts.OnUpdate(a.mapper(offset))
	}
}

func (a *keyframeAnimation[T]) finish() {
	a.status = StatusCompleted
	a.ticker.Stop()
	if a.opts.OnComplete != nil {
		a.opts.OnComplete()
	}
}

// Stop cancels the run. Calls after completion or repeated calls are
// no-ops, and a cancelled run never fires its completion callbacks.
func (a *keyframeAnimation[T]) Stop() {
	if a.status != StatusRunning {
		return
	}
	a.status = StatusCancelled
	a.ticker.Stop()
}

// springAnimation drives a float64 value with a SpringSimulation from
// the first keyframe toward the last, seeded with the value's velocity.
type springAnimation struct {
	sim        *SpringSimulation
	elapsed    float64 // ms already played (resumption offset)
	simTime    float64 // ms the simulation has been advanced by
	onUpdate   func(float64)
	onComplete func()

	status Status
	ticker *Ticker
}

func newSpringAnimation(spec SpringSpec, from, velocity, target, elapsed float64, onUpdate func(float64), onComplete func()) *springAnimation {
	return &springAnimation{
		sim:        NewSpringSimulation(spec, from, velocity, target),
		elapsed:    elapsed,
		onUpdate:   onUpdate,
		onComplete: onComplete,
	}
}

func (a *springAnimation) start() {
	a.status = StatusRunning
	a.ticker = NewTicker(a.tick)
	a.ticker.Start()
}

func (a *springAnimation) tick(elapsed time.Duration) {
	if a.status != StatusRunning {
		return
	}

	total := durationMs(elapsed) + a.elapsed
	if total < 0 {
		return
	}

	done := advanceSimulation(a.sim, &a.simTime, total)
	if a.onUpdate != nil {
		a.onUpdate(a.sim.Position())
	}
	if done {
		a.finish()
	}
}

func (a *springAnimation) finish() {
	a.status = StatusCompleted
	a.ticker.Stop()
	if a.onComplete != nil {
		a.onComplete()
	}
}

func (a *springAnimation) Stop() {
	if a.status != StatusRunning {
		return
	}
	a.status = StatusCancelled
	a.ticker.Stop()
}

// advanceSimulation steps a spring from simTime to totalMs in capped
// substeps, so resumption offsets and stalled frames keep the
// integration stable. simTime is updated in place.
func advanceSimulation(sim *SpringSimulation, simTime *float64, totalMs float64) bool {
	const substep = maxFrameDelta * 1000
	for *simTime < totalMs {
		step := totalMs - *simTime
		if step > substep {
			step = substep
		}
		*simTime += step
		if sim.Step(step / 1000) {
			return true
		}
	}
	return sim.Done()
}

func evenOffsets(n int) []float64 {
	offsets := make([]float64, n)
	for i := range offsets {
		offsets[i] = float64(i) / float64(n-1)
	}
	return offsets
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// toFloats converts a keyframe sequence to float64 when the value type
// is numeric. The physics engines only drive numbers.
func toFloats[T any](keyframes []T) ([]float64, bool) {
	out := make([]float64, len(keyframes))
	for i, k := range keyframes {
		f, ok := any(k).(float64)
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

func fromFloat[T any](f float64) T {
	return any(f).(T)
}
