package animation

// The accelerated strategy hands a fully-materialized timeline to a
// platform compositor so it plays without per-frame callbacks. It is an
// extension point: no compositor backend ships yet, so the accelerable
// set is empty, the probe reports unsupported, and [ChooseStrategy]
// never returns [StrategyAccelerated] in practice. The decision contract
// is still enforced and tested so a backend can be added without
// touching the selector.

// accelerableValues names the properties a compositor backend could
// play. Empty until a backend exists.
var accelerableValues = map[string]struct{}{}

// isAccelerable reports whether the named value is in the accelerable set.
func isAccelerable(name string) bool {
	_, ok := accelerableValues[name]
	return ok
}

// SupportsAcceleration probes the execution environment for an
// accelerated playback backend.
func SupportsAcceleration() bool {
	return false
}

// startAccelerated currently falls back to the main-thread engine; a
// compositor backend replaces this body.
func startAccelerated[T any](opts Options[T], userComplete func()) StartAnimation {
	return startMainThread(opts, userComplete)
}
