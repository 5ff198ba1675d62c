// Package interpolate maps an input scalar through an ordered keyframe
// sequence into typed output values.
//
// The core entry points are [Range], which builds a reusable mapping
// function, and [Value], which evaluates a single input immediately:
//
//	opacity := interpolate.Range([]float64{0, 100}, []float64{0, 1}, nil)
//	opacity(50) // 0.5
//
// Output sequences can hold any single consistent type. Numbers blend
// linearly; composite types implement [Mixable] to supply their own
// blending (see graphics.Color for an example). A custom [Mixer] in
// [Options] overrides both.
package interpolate

import "fmt"

// Easing transforms normalized segment progress. Inputs and outputs are
// nominally in [0, 1], though extrapolation may pass values outside it.
type Easing func(float64) float64

// Mixer blends two values of the same type at a normalized position t.
type Mixer[T any] func(a, b T, t float64) T

// Mixable is the capability a composite value type implements so the
// interpolator can blend it. Types that do not implement Mixable and are
// not float64 degrade to a snap blend (hold a, then b at t >= 1).
type Mixable[T any] interface {
	Mix(to T, t float64) T
}

// Options configures a mapping built by [Range] or [Value]. The zero
// value (or a nil pointer) clamps out-of-range inputs to the boundary
// outputs and blends by type.
type Options[T any] struct {
	// Extrapolate disables the default clamping. Inputs beyond the ends
	// of the input range are extended linearly along the nearest
	// segment's slope.
	Extrapolate bool

	// Ease supplies easing per segment. A single function applies to
	// every segment; otherwise the slice length must be exactly one less
	// than the range length. Nil means identity.
	Ease []Easing

	// Mixer overrides automatic type-based blending for every segment.
	Mixer Mixer[T]
}

// Range returns a reusable function mapping an input scalar through
// inputRange into outputRange. The two ranges must have equal length,
// at least 2. A descending input range is handled by reversing both
// ranges up front, with easings reversed and mirrored along with them
// so each segment keeps the easing declared for it; beyond that,
// segments are located by ordinal position, so a non-monotonic output
// range is fine.
//
// Range panics if the caller contract is violated: mismatched or too
// short ranges, or an easing slice of the wrong length. These signal
// programming errors, not runtime conditions.
func Range[T any](inputRange []float64, outputRange []T, opts *Options[T]) func(float64) T {
	if len(inputRange) != len(outputRange) {
		panic(fmt.Sprintf("motion/interpolate: input range length %d != output range length %d",
			len(inputRange), len(outputRange)))
	}
	if len(inputRange) < 2 {
		panic(fmt.Sprintf("motion/interpolate: range length %d, need at least 2", len(inputRange)))
	}

	var o Options[T]
	if opts != nil {
		o = *opts
	}

	segments := len(inputRange) - 1
	if n := len(o.Ease); n > 1 && n != segments {
		panic(fmt.Sprintf("motion/interpolate: %d easing functions for %d segments", n, segments))
	}

	in, out, eases := inputRange, outputRange, o.Ease
	if in[0] > in[len(in)-1] {
		in, out = reverse(in), reverse(out)
		eases = reverse(eases)
		for i, e := range eases {
			eases[i] = mirrorEase(e)
		}
	}

	mix := o.Mixer
	if mix == nil {
		mix = MixerFor(out[0])
	}

	return func(v float64) T {
		if !o.Extrapolate {
			if v < in[0] {
				v = in[0]
			} else if v > in[len(in)-1] {
				v = in[len(in)-1]
			}
		}

		i := findSegment(in, v)
		t := segmentProgress(in[i], in[i+1], v)
		if ease := segmentEase(eases, i); ease != nil {
			t = ease(t)
		}
		return mix(out[i], out[i+1], t)
	}
}

// Value evaluates a single input immediately. It is exactly
// Range(inputRange, outputRange, opts)(input), so the two call shapes
// can never disagree.
func Value[T any](input float64, inputRange []float64, outputRange []T, opts *Options[T]) T {
	return Range(inputRange, outputRange, opts)(input)
}

// findSegment returns the index of the first segment, in ascending
// ordinal order, whose upper boundary exceeds v. Inputs beyond the last
// boundary land on the final segment, which lets clamped values saturate
// and extrapolated values extend its slope. Adjacent duplicate
// boundaries produce a zero-width segment that segmentProgress resolves
// at its end value.
func findSegment(in []float64, v float64) int {
	i := 0
	for ; i < len(in)-2; i++ {
		if v < in[i+1] {
			break
		}
	}
	return i
}

func segmentProgress(from, to, v float64) float64 {
	span := to - from
	if span == 0 {
		if v >= from {
			return 1
		}
		return 0
	}
	return (v - from) / span
}

func segmentEase(ease []Easing, i int) Easing {
	switch len(ease) {
	case 0:
		return nil
	case 1:
		return ease[0]
	default:
		return ease[i]
	}
}

// mirrorEase flips an easing for a segment traversed in the opposite
// direction: both the progress axis and the output axis reverse.
func mirrorEase(e Easing) Easing {
	if e == nil {
		return nil
	}
	return func(t float64) float64 { return 1 - e(1-t) }
}

func reverse[T any](s []T) []T {
	r := make([]T, len(s))
	for i, v := range s {
		r[len(s)-1-i] = v
	}
	return r
}
