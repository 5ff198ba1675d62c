package animation

import "math"

// SpringSpec describes a damped harmonic spring.
type SpringSpec struct {
	// Mass of the moving object. Higher mass means more momentum.
	Mass float64
	// Stiffness of the spring. Higher stiffness means faster motion.
	Stiffness float64
	// Damping opposes the motion. Higher damping means less oscillation.
	Damping float64
	// RestDelta is the distance from the target below which the spring
	// may settle.
	RestDelta float64
	// RestSpeed is the absolute velocity below which the spring may
	// settle, in units per second.
	RestSpeed float64
}

// DefaultSpring is a gently under-damped spring suited to UI motion.
func DefaultSpring() SpringSpec {
	return SpringSpec{Mass: 1, Stiffness: 100, Damping: 10, RestDelta: 0.01, RestSpeed: 0.1}
}

// IOSSpring approximates the near-critically-damped spring iOS uses for
// scroll overscroll bounce.
func IOSSpring() SpringSpec {
	return SpringSpec{Mass: 1, Stiffness: 1000, Damping: 63.2, RestDelta: 0.1, RestSpeed: 1}
}

// bounceSpring is the boundary spring the inertia strategy hands off to.
func bounceSpring(stiffness, damping, restDelta, restSpeed float64) SpringSpec {
	return SpringSpec{Mass: 1, Stiffness: stiffness, Damping: damping, RestDelta: restDelta, RestSpeed: restSpeed}
}

// SpringSimulation solves damped spring motion from a starting position
// and velocity toward a target. The solution is closed-form, so stepping
// is exact regardless of frame timing: Step only advances the solution's
// time parameter.
type SpringSimulation struct {
	spec   SpringSpec
	target float64

	// Initial conditions relative to the target.
	x0, v0 float64

	// Derived coefficients.
	omega0 float64 // undamped angular frequency
	zeta   float64 // damping ratio

	t        float64 // seconds since the simulation began
	position float64
	velocity float64
	done     bool
}

// NewSpringSimulation creates a spring at the given position with the
// given initial velocity (units per second), pulling toward target.
// Zero-valued spec fields take the [DefaultSpring] values.
func NewSpringSimulation(spec SpringSpec, position, velocity, target float64) *SpringSimulation {
	def := DefaultSpring()
	if spec.Mass <= 0 {
		spec.Mass = def.Mass
	}
	if spec.Stiffness <= 0 {
		spec.Stiffness = def.Stiffness
	}
	if spec.Damping <= 0 {
		spec.Damping = def.Damping
	}
	if spec.RestDelta <= 0 {
		spec.RestDelta = def.RestDelta
	}
	if spec.RestSpeed <= 0 {
		spec.RestSpeed = def.RestSpeed
	}

	s := &SpringSimulation{
		spec:     spec,
		target:   target,
		x0:       position - target,
		v0:       velocity,
		position: position,
		velocity: velocity,
	}
	s.omega0 = math.Sqrt(spec.Stiffness / spec.Mass)
	s.zeta = spec.Damping / (2 * math.Sqrt(spec.Stiffness*spec.Mass))

	if s.x0 == 0 && velocity == 0 {
		s.done = true
	}
	return s
}

// Step advances the simulation by dt seconds and reports whether the
// spring has settled. Once settled, Position returns exactly the target.
func (s *SpringSimulation) Step(dt float64) bool {
	if s.done {
		return true
	}
	if dt > 0 {
		s.t += dt
	}

	x, v := s.at(s.t)
	s.position = s.target + x
	s.velocity = v

	if math.Abs(x) < s.spec.RestDelta && math.Abs(v) < s.spec.RestSpeed {
		s.position = s.target
		s.velocity = 0
		s.done = true
	}
	return s.done
}

// Position returns the current position.
func (s *SpringSimulation) Position() float64 {
	return s.position
}

// Velocity returns the current velocity in units per second.
func (s *SpringSimulation) Velocity() float64 {
	return s.velocity
}

// Done reports whether the spring has settled at the target.
func (s *SpringSimulation) Done() bool {
	return s.done
}

// at evaluates displacement and velocity relative to the target at time
// t seconds, for the under-, critically-, and over-damped cases.
func (s *SpringSimulation) at(t float64) (x, v float64) {
	w0, zeta := s.omega0, s.zeta
	x0, v0 := s.x0, s.v0

	switch {
	case zeta < 1:
		wd := w0 * math.Sqrt(1-zeta*zeta)
		a := x0
		b := (v0 + zeta*w0*x0) / wd
		decay := math.Exp(-zeta * w0 * t)
		sin, cos := math.Sincos(wd * t)
		x = decay * (a*cos + b*sin)
		v = decay*(-a*wd*sin+b*wd*cos) - zeta*w0*x
	case zeta == 1:
		a := x0
		b := v0 + w0*x0
		decay := math.Exp(-w0 * t)
		x = decay * (a + b*t)
		v = decay*b - w0*x
	default:
		disc := w0 * math.Sqrt(zeta*zeta-1)
		r1 := -zeta*w0 + disc
		r2 := -zeta*w0 - disc
		c1 := (v0 - r2*x0) / (r1 - r2)
		c2 := x0 - c1
		e1 := math.Exp(r1 * t)
		e2 := math.Exp(r2 * t)
		x = c1*e1 + c2*e2
		v = c1*r1*e1 + c2*r2*e2
	}
	return x, v
}
