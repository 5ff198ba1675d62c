// Package config loads named transition presets from YAML, so transition
// tuning can live in a document instead of code:
//
//	transitions:
//	  panel:
//	    type: tween
//	    duration: 0.25
//	    ease: easeOut
//	  badge:
//	    type: spring
//	    stiffness: 400
//	    damping: 20
//	    values:
//	      opacity:
//	        type: tween
//	        duration: 0.15
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pleskac/motion/pkg/animation"
	"github.com/pleskac/motion/pkg/errors"
)

// File is the top-level shape of a preset document.
type File struct {
	Transitions map[string]Spec `yaml:"transitions"`
}

// Spec mirrors animation.Transition with easing referred to by name.
type Spec struct {
	Delay       *float64  `yaml:"delay"`
	Type        string    `yaml:"type"`
	Duration    *float64  `yaml:"duration"`
	Ease        easeList  `yaml:"ease"`
	Times       []float64 `yaml:"times"`
	Repeat      *int      `yaml:"repeat"`
	RepeatDelay *float64  `yaml:"repeatDelay"`
	RepeatType  string    `yaml:"repeatType"`

	Stiffness *float64 `yaml:"stiffness"`
	Damping   *float64 `yaml:"damping"`
	Mass      *float64 `yaml:"mass"`

	Power        *float64 `yaml:"power"`
	TimeConstant *float64 `yaml:"timeConstant"`
	Min          *float64 `yaml:"min"`
	Max          *float64 `yaml:"max"`

	RestDelta *float64 `yaml:"restDelta"`
	RestSpeed *float64 `yaml:"restSpeed"`

	Values map[string]Spec `yaml:"values"`
}

// easeList accepts a single easing name or a sequence of them.
type easeList []string

func (e *easeList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var one string
		if err := node.Decode(&one); err != nil {
			return err
		}
		*e = easeList{one}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := node.Decode(&many); err != nil {
			return err
		}
		*e = easeList(many)
		return nil
	default:
		return fmt.Errorf("ease must be a name or a list of names")
	}
}

// Load reads a preset document and resolves it into transitions keyed by
// preset name.
func Load(r io.Reader) (map[string]animation.Transition, error) {
	const op = "config.Load"

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.E(op, errors.KindConfig, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.E(op, errors.KindConfig, err)
	}

	out := make(map[string]animation.Transition, len(f.Transitions))
	for name, spec := range f.Transitions {
		t, err := spec.Transition()
		if err != nil {
			return nil, errors.Errorf(op, errors.KindConfig, "preset %q: %v", name, err)
		}
		out[name] = t
	}
	return out, nil
}

// LoadFile reads a preset document from disk.
func LoadFile(path string) (map[string]animation.Transition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.E("config.LoadFile", errors.KindConfig, err)
	}
	defer f.Close()
	return Load(f)
}

// Transition resolves the spec into an animation.Transition, validating
// the strategy type and easing names.
func (s Spec) Transition() (animation.Transition, error) {
	const op = "config.Spec.Transition"

	t := animation.Transition{
		Delay:        s.Delay,
		Duration:     s.Duration,
		Times:        s.Times,
		Repeat:       s.Repeat,
		RepeatDelay:  s.RepeatDelay,
		Stiffness:    s.Stiffness,
		Damping:      s.Damping,
		Mass:         s.Mass,
		Power:        s.Power,
		TimeConstant: s.TimeConstant,
		Min:          s.Min,
		Max:          s.Max,
		RestDelta:    s.RestDelta,
		RestSpeed:    s.RestSpeed,
	}

	switch animation.Type(s.Type) {
	case "", animation.TypeTween, animation.TypeSpring, animation.TypeInertia, animation.TypeNone:
		t.Type = animation.Type(s.Type)
	default:
		return animation.Transition{}, errors.Errorf(op, errors.KindUnsupported, "unknown transition type %q", s.Type)
	}

	switch animation.RepeatType(s.RepeatType) {
	case "", animation.RepeatLoop, animation.RepeatReverse:
		t.RepeatType = animation.RepeatType(s.RepeatType)
	default:
		return animation.Transition{}, errors.Errorf(op, errors.KindUnsupported, "unknown repeat type %q", s.RepeatType)
	}

	for _, name := range s.Ease {
		fn, err := animation.EasingByName(name)
		if err != nil {
			return animation.Transition{}, errors.E(op, errors.KindParsing, err)
		}
		t.Ease = append(t.Ease, fn)
	}

	if len(s.Values) > 0 {
		t.Values = make(map[string]animation.Transition, len(s.Values))
		for name, sub := range s.Values {
			if len(sub.Values) > 0 {
				return animation.Transition{}, errors.Errorf(op, errors.KindConfig, "value override %q may not nest further overrides", name)
			}
			vt, err := sub.Transition()
			if err != nil {
				return animation.Transition{}, errors.Errorf(op, errors.KindConfig, "value %q: %w", name, err)
			}
			t.Values[name] = vt
		}
	}
	return t, nil
}
