package animation

import (
	"math"
	"time"
)

// Inertia strategy defaults.
const (
	defaultPower           = 0.8
	defaultTimeConstant    = 700 // ms
	defaultBounceStiffness = 500
	defaultBounceDamping   = 10
	defaultInertiaDelta    = 0.5 // rest distance, units
	defaultInertiaSpeed    = 10  // rest velocity, units per second
)

// inertiaAnimation decays an initial velocity exponentially toward a
// projected resting position. When a min/max boundary is configured and
// the motion crosses it, the run hands off to a boundary spring seeded
// with the in-flight velocity, the way an overscrolled fling bounces
// back.
type inertiaAnimation struct {
	from     float64
	velocity float64 // units per second

	power        float64
	timeConstant float64 // ms
	min, max     *float64
	restDelta    float64
	restSpeed    float64

	amplitude float64
	target    float64

	bounce  *SpringSimulation
	simTime float64 // ms of boundary spring advanced so far

	elapsed    float64 // ms resumption offset
	onUpdate   func(float64)
	onComplete func()

	status Status
	ticker *Ticker
}

func newInertiaAnimation(opts Options[float64]) *inertiaAnimation {
	a := &inertiaAnimation{
		from:         opts.Keyframes[0],
		velocity:     opts.Velocity,
		power:        opts.Power,
		timeConstant: opts.TimeConstant,
		min:          opts.Min,
		max:          opts.Max,
		restDelta:    opts.RestDelta,
		restSpeed:    opts.RestSpeed,
		elapsed:      opts.Elapsed,
		onUpdate:     opts.OnUpdate,
		onComplete:   opts.OnComplete,
	}
	if a.power <= 0 {
		a.power = defaultPower
	}
	if a.timeConstant <= 0 {
		a.timeConstant = defaultTimeConstant
	}
	if a.restDelta <= 0 {
		a.restDelta = defaultInertiaDelta
	}
	if a.restSpeed <= 0 {
		a.restSpeed = defaultInertiaSpeed
	}

	a.amplitude = a.power * a.velocity
	a.target = a.from + a.amplitude

	// Already outside the boundary: bounce back immediately.
	if boundary, out := a.pastBoundary(a.from); out {
		a.startBounce(a.from, a.velocity, boundary, 0)
	}
	return a
}

func (a *inertiaAnimation) start() {
	a.status = StatusRunning
	a.ticker = NewTicker(a.tick)
	a.ticker.Start()
}

func (a *inertiaAnimation) tick(elapsed time.Duration) {
	if a.status != StatusRunning {
		return
	}

	total := durationMs(elapsed) + a.elapsed
	if total < 0 {
		return
	}

	if a.bounce != nil {
		a.tickBounce(total)
		return
	}

	decay := math.Exp(-total / a.timeConstant)
	position := a.target - a.amplitude*decay
	velocity := a.amplitude / a.timeConstant * decay * 1000 // per second

	if boundary, out := a.pastBoundary(position); out {
		a.startBounce(position, velocity, boundary, total)
		a.emit(position)
		return
	}

	if math.Abs(velocity) < a.restSpeed && math.Abs(a.target-position) < a.restDelta {
		a.emit(a.target)
		a.finish()
		return
	}
	a.emit(position)
}

func (a *inertiaAnimation) tickBounce(totalMs float64) {
	done := advanceSimulation(a.bounce, &a.simTime, totalMs)
	a.emit(a.bounce.Position())
	if done {
		a.finish()
	}
}

// pastBoundary reports the nearest violated boundary, if any.
func (a *inertiaAnimation) pastBoundary(position float64) (float64, bool) {
	if a.min != nil && position < *a.min {
		return *a.min, true
	}
	if a.max != nil && position > *a.max {
		return *a.max, true
	}
	return 0, false
}

func (a *inertiaAnimation) startBounce(position, velocity, boundary, atMs float64) {
	spec := bounceSpring(defaultBounceStiffness, defaultBounceDamping, a.restDelta, a.restSpeed)
	a.bounce = NewSpringSimulation(spec, position, velocity, boundary)
	a.simTime = atMs
}

func (a *inertiaAnimation) emit(position float64) {
	if a.onUpdate != nil {
		a.onUpdate(position)
	}
}

func (a *inertiaAnimation) finish() {
	a.status = StatusCompleted
	a.ticker.Stop()
	if a.onComplete != nil {
		a.onComplete()
	}
}

func (a *inertiaAnimation) Stop() {
	if a.status != StatusRunning {
		return
	}
	a.status = StatusCancelled
	a.ticker.Stop()
}
