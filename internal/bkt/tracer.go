package bkt

import (
	"fmt"
	"sort"
)

// Params holds the four Bayesian Knowledge Tracing probabilities for a
// skill.
type Params struct {
	// PInit is the prior probability the skill is already known.
	PInit float64

	// PTransit is the probability of learning the skill on one attempt.
	PTransit float64

	// PSlip is the probability of answering incorrectly despite knowing.
	PSlip float64

	// PGuess is the probability of answering correctly without knowing.
	PGuess float64
}

// DefaultParams returns the standard BKT parameterization.
func DefaultParams() Params {
	return Params{
		PInit:    0.30,
		PTransit: 0.25,
		PSlip:    0.10,
		PGuess:   0.20,
	}
}

// Validate checks that all probabilities are well-formed. Slip and guess
// must stay below 0.5 or the observation model becomes degenerate.
func (p Params) Validate() error {
	check := func(name string, v float64) error {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be in [0,1], got %v", name, v)
		}
		return nil
	}
	if err := check("p_init", p.PInit); err != nil {
		return err
	}
	if err := check("p_transit", p.PTransit); err != nil {
		return err
	}
	if err := check("p_slip", p.PSlip); err != nil {
		return err
	}
	if err := check("p_guess", p.PGuess); err != nil {
		return err
	}
	if p.PSlip >= 0.5 {
		return fmt.Errorf("p_slip must be < 0.5, got %v", p.PSlip)
	}
	if p.PGuess >= 0.5 {
		return fmt.Errorf("p_guess must be < 0.5, got %v", p.PGuess)
	}
	return nil
}

// Tracer maintains one mastery probability per skill, updated after every
// graded response. The state persists for the lifetime of a learner's
// skill history; callers snapshot and restore it across sessions.
type Tracer struct {
	defaults Params
	perSkill map[string]Params
	mastery  map[string]float64
}

// NewTracer creates a tracer seeded with the given default parameters.
func NewTracer(defaults Params) (*Tracer, error) {
	if err := defaults.Validate(); err != nil {
		return nil, fmt.Errorf("invalid BKT defaults: %w", err)
	}
	return &Tracer{
		defaults: defaults,
		perSkill: make(map[string]Params),
		mastery:  make(map[string]float64),
	}, nil
}

// SetSkillParams overrides the parameters for a single skill.
func (t *Tracer) SetSkillParams(skill string, p Params) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid params for skill %q: %w", skill, err)
	}
	t.perSkill[skill] = p
	return nil
}

func (t *Tracer) params(skill string) Params {
	if p, ok := t.perSkill[skill]; ok {
		return p
	}
	return t.defaults
}

// Mastery returns the current mastery probability for a skill, seeding it
// from the configured prior on first access.
func (t *Tracer) Mastery(skill string) float64 {
	if m, ok := t.mastery[skill]; ok {
		return m
	}
	m := t.params(skill).PInit
	t.mastery[skill] = m
	return m
}

// Update applies the standard BKT update for one observed response and
// returns the new mastery probability.
//
// The posterior P(known|obs) uses the slip/guess observation model, then
// the learning transition projects mastery forward one step:
//
//	P(next) = P(known|obs) + (1 - P(known|obs)) * p_transit
func (t *Tracer) Update(skill string, correct bool) float64 {
	p := t.params(skill)
	prior := t.Mastery(skill)

	var posterior float64
	if correct {
		num := prior * (1 - p.PSlip)
		den := num + (1-prior)*p.PGuess
		if den > 0 {
			posterior = num / den
		}
	} else {
		num := prior * p.PSlip
		den := num + (1-prior)*(1-p.PGuess)
		if den > 0 {
			posterior = num / den
		}
	}

	next := posterior + (1-posterior)*p.PTransit
	next = clamp01(next)
	t.mastery[skill] = next
	return next
}

// MasteryMap returns a copy of the full skill→mastery map.
func (t *Tracer) MasteryMap() map[string]float64 {
	out := make(map[string]float64, len(t.mastery))
	for k, v := range t.mastery {
		out[k] = v
	}
	return out
}

// Skills returns the tracked skills, sorted.
func (t *Tracer) Skills() []string {
	out := make([]string, 0, len(t.mastery))
	for k := range t.mastery {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Restore replaces the tracer's state with a previously snapshotted
// mastery map. Values are clamped to [0,1].
func (t *Tracer) Restore(state map[string]float64) {
	t.mastery = make(map[string]float64, len(state))
	for k, v := range state {
		t.mastery[k] = clamp01(v)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
