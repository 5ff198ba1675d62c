package animation

import "sync"

// startInstant applies the final keyframe and completes in a single
// step: one OnUpdate with the final value, then completion, with no
// intermediate frames and nothing registered with the ticker.
func startInstant[T any](opts Options[T], userComplete func()) StartAnimation {
	return func(complete func()) func() {
		if opts.OnUpdate != nil {
			opts.OnUpdate(opts.final())
		}
		composeComplete(complete, userComplete)()
		return func() {}
	}
}

var (
	instantMu         sync.Mutex
	instantAnimations bool
)

// SetInstantAnimations toggles the process-wide instant-animations
// override. While set, every animation started by [Select] resolves
// instantly, regardless of its transition — used to snap initial state
// into place or honor a reduced-motion preference.
//
// The flag is read once per animation start and never clears itself:
// a caller enabling it for one render pass must disable it afterwards,
// or unrelated later animations will also snap.
func SetInstantAnimations(enabled bool) {
	instantMu.Lock()
	instantAnimations = enabled
	instantMu.Unlock()
}

// InstantAnimations reports the process-wide instant-animations override.
func InstantAnimations() bool {
	instantMu.Lock()
	defer instantMu.Unlock()
	return instantAnimations
}
