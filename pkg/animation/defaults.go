package animation

import "strings"

// defaultTweenEase is the curve for values that read better eased than
// sprung: opacity, colors, rotation.
var defaultTweenEase = CubicBezier(0.25, 0.1, 0.35, 1)

// transformNames are the positional properties that default to spring
// physics.
var transformNames = map[string]struct{}{
	"x": {}, "y": {}, "z": {},
	"translateX": {}, "translateY": {}, "translateZ": {},
	"skew": {}, "skewX": {}, "skewY": {},
}

// DefaultTransition returns the heuristic transition for a value name,
// used when the caller's transition says nothing about how to move:
// positional transforms get an under-damped spring, scales a critically
// damped one, and everything else (opacity, colors, rotation) a short
// eased tween. Timelines with more than two keyframes always tween, as a
// spring has no path through intermediate waypoints.
func DefaultTransition(name string, keyframeCount int) Transition {
	if keyframeCount > 2 {
		return Transition{
			Type:     TypeTween,
			Duration: Float(0.8),
			Ease:     []Easing{Linear},
		}
	}

	if _, ok := transformNames[name]; ok {
		return Transition{
			Type:      TypeSpring,
			Stiffness: Float(500),
			Damping:   Float(25),
			RestSpeed: Float(10),
		}
	}

	if strings.HasPrefix(name, "scale") {
		return Transition{
			Type:      TypeSpring,
			Stiffness: Float(550),
			Damping:   Float(30),
			RestSpeed: Float(10),
		}
	}

	return Transition{
		Type:     TypeTween,
		Duration: Float(0.3),
		Ease:     []Easing{defaultTweenEase},
	}
}
