package animation

// Type identifies which animation strategy a transition requests.
// The empty string leaves the choice to the per-value defaults.
type Type string

const (
	// TypeTween is a duration/easing-driven keyframe animation.
	TypeTween Type = "tween"
	// TypeSpring is a physics-driven spring toward the final keyframe.
	TypeSpring Type = "spring"
	// TypeInertia is a velocity-decay animation, optionally bounded.
	TypeInertia Type = "inertia"
	// TypeNone disables animation; the value snaps to its final keyframe.
	TypeNone Type = "none"
)

// RepeatType controls how a repeating timeline replays.
type RepeatType string

const (
	// RepeatLoop restarts each repetition from the first keyframe.
	RepeatLoop RepeatType = "loop"
	// RepeatReverse plays alternate repetitions backwards.
	RepeatReverse RepeatType = "reverse"
)

// Transition describes how a value animates toward its target.
//
// Pointer fields distinguish "unset" from an explicit zero, the same way
// optional keys work in a YAML document; unset fields fall back to
// per-value defaults. Delay, Duration, and RepeatDelay are in seconds.
// TimeConstant and Elapsed are in milliseconds, matching what the
// physics strategies consume directly.
type Transition struct {
	// Delay postpones the start of the animation, in seconds.
	Delay *float64 `yaml:"delay,omitempty"`

	// Type selects a strategy explicitly. Empty means "decide from the
	// value's defaults"; TypeNone disables animation entirely.
	Type Type `yaml:"type,omitempty"`

	// Duration is the length of one timeline pass, in seconds.
	Duration *float64 `yaml:"duration,omitempty"`

	// Ease supplies easing functions: one for every segment, or exactly
	// one per segment between consecutive keyframes.
	Ease []Easing `yaml:"-"`

	// Times positions each keyframe on the timeline as a fraction of the
	// duration in [0, 1]. Empty means evenly spaced.
	Times []float64 `yaml:"times,omitempty,flow"`

	// Repeat is the number of times the timeline replays after the first
	// pass. A negative count repeats forever.
	Repeat *int `yaml:"repeat,omitempty"`

	// RepeatDelay pauses between repetitions, in seconds.
	RepeatDelay *float64 `yaml:"repeatDelay,omitempty"`

	// RepeatType selects loop or reverse replay. Defaults to loop.
	RepeatType RepeatType `yaml:"repeatType,omitempty"`

	// Spring parameters, consumed when the spring strategy runs.
	Stiffness *float64 `yaml:"stiffness,omitempty"`
	Damping   *float64 `yaml:"damping,omitempty"`
	Mass      *float64 `yaml:"mass,omitempty"`

	// Inertia parameters, consumed when the inertia strategy runs.
	// TimeConstant is in milliseconds.
	Power        *float64 `yaml:"power,omitempty"`
	TimeConstant *float64 `yaml:"timeConstant,omitempty"`
	Min          *float64 `yaml:"min,omitempty"`
	Max          *float64 `yaml:"max,omitempty"`

	// Rest thresholds for the physics strategies.
	RestDelta *float64 `yaml:"restDelta,omitempty"`
	RestSpeed *float64 `yaml:"restSpeed,omitempty"`

	// Elapsed reports how much of the animation has already played, in
	// milliseconds, so a previously-started run can resume instead of
	// replaying its delay. Set by infrastructure, not by callers.
	Elapsed *float64 `yaml:"-"`

	// Values holds per-value-name overrides applied on top of the root
	// fields when the named value animates.
	Values map[string]Transition `yaml:"values,omitempty"`
}

// Float returns a pointer to v, for filling optional Transition fields.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for filling optional Transition fields.
func Int(v int) *int { return &v }

// ForValue resolves the effective transition for the named value by
// merging the value-specific override, if any, onto the root fields.
// The result carries no further per-value overrides.
func (t Transition) ForValue(name string) Transition {
	root := t
	root.Values = nil
	override, ok := t.Values[name]
	if !ok {
		return root
	}
	return Merge(root, override)
}

// Merge lays override onto base, field by field. A field set in override
// wins; an unset field keeps the base value. The precedence is exactly
// this function — there is no other layering.
func Merge(base, override Transition) Transition {
	out := base
	if override.Delay != nil {
		out.Delay = override.Delay
	}
	if override.Type != "" {
		out.Type = override.Type
	}
	if override.Duration != nil {
		out.Duration = override.Duration
	}
	if override.Ease != nil {
		out.Ease = override.Ease
	}
	if override.Times != nil {
		out.Times = override.Times
	}
	if override.Repeat != nil {
		out.Repeat = override.Repeat
	}
	if override.RepeatDelay != nil {
		out.RepeatDelay = override.RepeatDelay
	}
	if override.RepeatType != "" {
		out.RepeatType = override.RepeatType
	}
	if override.Stiffness != nil {
		out.Stiffness = override.Stiffness
	}
	if override.Damping != nil {
		out.Damping = override.Damping
	}
	if override.Mass != nil {
		out.Mass = override.Mass
	}
	if override.Power != nil {
		out.Power = override.Power
	}
	if override.TimeConstant != nil {
		out.TimeConstant = override.TimeConstant
	}
	if override.Min != nil {
		out.Min = override.Min
	}
	if override.Max != nil {
		out.Max = override.Max
	}
	if override.RestDelta != nil {
		out.RestDelta = override.RestDelta
	}
	if override.RestSpeed != nil {
		out.RestSpeed = override.RestSpeed
	}
	if override.Elapsed != nil {
		out.Elapsed = override.Elapsed
	}
	return out
}

// IsDefined reports whether the transition specifies how to animate.
// Delay, elapsed, and repetition alone do not count: a transition that
// only says "later" or "again" still takes the per-value defaults for
// its motion.
func (t Transition) IsDefined() bool {
	return t.Type != "" ||
		t.Duration != nil ||
		t.Ease != nil ||
		t.Times != nil ||
		t.Stiffness != nil ||
		t.Damping != nil ||
		t.Mass != nil ||
		t.Power != nil ||
		t.TimeConstant != nil
}

// SecondsToMilliseconds converts a public-facing seconds field into the
// milliseconds every strategy consumes.
func SecondsToMilliseconds(s float64) float64 {
	return s * 1000
}

func floatOr(p *float64, def float64) float64 {
	if p != nil {
		return *p
	}
	return def
}

func intOr(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}
