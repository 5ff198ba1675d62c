// Package value provides MotionValue, the mutable container an animation
// writes into on every frame.
//
// A MotionValue holds the current value of a single animatable property,
// tracks the velocity implied by recent writes, and carries an optional
// owner reference used by the animation selector to detect conflicting
// per-frame update handlers.
//
// A MotionValue is single-writer: at most one animation should be
// driving it at a time, and the caller is responsible for stopping a
// prior animation before starting a new one. The container does not
// arbitrate between concurrent writers.
package value

import "time"

// maxVelocityWindow is the longest gap between writes that still counts
// as continuous motion. Writes further apart than this reset velocity to
// zero instead of reporting a misleadingly small value.
const maxVelocityWindow = 100 * time.Millisecond

// Owner is the component a MotionValue belongs to, typically the UI node
// rendering it. The animation selector consults it when deciding whether
// a value may be handed to an accelerated timeline, which bypasses
// per-frame callbacks entirely.
type Owner interface {
	// HasUpdateHandler reports whether a custom per-frame update handler
	// is registered for the named property.
	HasUpdateHandler(name string) bool
}

// MotionValue holds the current value and derived velocity of one
// animatable property.
type MotionValue[T any] struct {
	current  T
	velocity float64

	prev    float64
	prevAt  time.Time
	hasPrev bool

	owner          Owner
	listeners      map[int]func(T)
	nextListenerID int
}

// New creates a MotionValue holding the given initial value.
func New[T any](initial T) *MotionValue[T] {
	v := &MotionValue[T]{listeners: make(map[int]func(T))}
	v.current = initial
	v.seedVelocity(initial)
	return v
}

// Get returns the current value.
func (v *MotionValue[T]) Get() T {
	return v.current
}

// Set writes a new current value, updates velocity tracking, and
// notifies listeners.
func (v *MotionValue[T]) Set(next T) {
	v.track(next)
	v.current = next
	for _, fn := range v.listeners {
		fn(next)
	}
}

// GetVelocity returns the velocity, in units per second, implied by the
// two most recent writes. Non-numeric values always report zero.
func (v *MotionValue[T]) GetVelocity() float64 {
	return v.velocity
}

// SetVelocity overrides the tracked velocity. Gesture code uses this to
// seed an animation with the velocity of a pointer at release time.
func (v *MotionValue[T]) SetVelocity(unitsPerSecond float64) {
	v.velocity = unitsPerSecond
}

// SetOwner attaches the owning component. Pass nil to detach.
func (v *MotionValue[T]) SetOwner(o Owner) {
	v.owner = o
}

// Owner returns the owning component, or nil.
func (v *MotionValue[T]) Owner() Owner {
	return v.owner
}

// OnChange adds a callback that fires on every Set.
// Returns an unsubscribe function.
func (v *MotionValue[T]) OnChange(fn func(T)) func() {
	id := v.nextListenerID
	v.nextListenerID++
	v.listeners[id] = fn
	return func() {
		delete(v.listeners, id)
	}
}

func (v *MotionValue[T]) track(next T) {
	f, ok := any(next).(float64)
	if !ok {
		return
	}
	t := now()
	if v.hasPrev {
		dt := t.Sub(v.prevAt)
		if dt > 0 && dt <= maxVelocityWindow {
			v.velocity = (f - v.prev) / dt.Seconds()
		} else {
			v.velocity = 0
		}
	}
	v.prev, v.prevAt, v.hasPrev = f, t, true
}

func (v *MotionValue[T]) seedVelocity(initial T) {
	if f, ok := any(initial).(float64); ok {
		v.prev, v.prevAt, v.hasPrev = f, now(), true
	}
}

// now is the package time source, replaceable for deterministic tests.
var now = time.Now

// SetNowFunc replaces the time source used for velocity tracking and
// returns the previous one so tests can restore it.
func SetNowFunc(fn func() time.Time) func() time.Time {
	prev := now
	now = fn
	return prev
}
