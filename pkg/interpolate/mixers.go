package interpolate

// Lerp linearly interpolates between two float64 values. It extrapolates
// for t outside [0, 1].
func Lerp(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// MixerFor resolves the blend function for a value type: the type's own
// [Mixable.Mix] when implemented, linear interpolation for float64, and
// a snap blend otherwise.
func MixerFor[T any](sample T) Mixer[T] {
	if _, ok := any(sample).(Mixable[T]); ok {
		return func(a, b T, t float64) T {
			return any(a).(Mixable[T]).Mix(b, t)
		}
	}
	if _, ok := any(sample).(float64); ok {
		return func(a, b T, t float64) T {
			v := Lerp(any(a).(float64), any(b).(float64), t)
			return any(v).(T)
		}
	}
	return snapMixer[T]
}

// CanMix reports whether values of the sample's type blend continuously.
// Types that only snap between keyframes are not animatable by the
// frame-driven engines.
func CanMix[T any](sample T) bool {
	if _, ok := any(sample).(Mixable[T]); ok {
		return true
	}
	_, ok := any(sample).(float64)
	return ok
}

// snapMixer holds a until the segment completes. It is the degenerate
// blend for types with no continuous representation.
func snapMixer[T any](a, b T, t float64) T {
	if t >= 1 {
		return b
	}
	return a
}
