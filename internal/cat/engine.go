package cat

import (
	"fmt"
	"math"

	"github.com/imranulf/learnora/internal/itembank"
)

// Config holds the CAT stopping criteria and estimation settings.
type Config struct {
	// SEStop terminates the session once the standard error of the
	// ability estimate drops to this value or below.
	SEStop float64

	// MaxItems terminates the session after this many items.
	MaxItems int

	// InitialTheta is the ability estimate before any responses.
	InitialTheta float64

	// ThetaBound clamps ability estimates to [-ThetaBound, ThetaBound].
	ThetaBound float64

	// MaxIterations bounds the Newton-Raphson re-estimation loop.
	MaxIterations int
}

// DefaultConfig returns the standard stopping criteria.
func DefaultConfig() Config {
	return Config{
		SEStop:        0.30,
		MaxItems:      20,
		InitialTheta:  0.0,
		ThetaBound:    4.0,
		MaxIterations: 25,
	}
}

// Validate checks the config for structural misconfiguration.
func (c Config) Validate() error {
	if c.SEStop <= 0 {
		return fmt.Errorf("SEStop must be > 0, got %v", c.SEStop)
	}
	if c.MaxItems <= 0 {
		return fmt.Errorf("MaxItems must be > 0, got %d", c.MaxItems)
	}
	if c.ThetaBound <= 0 {
		return fmt.Errorf("ThetaBound must be > 0, got %v", c.ThetaBound)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("MaxIterations must be > 0, got %d", c.MaxIterations)
	}
	return nil
}

// Engine selects items by maximum Fisher information and re-estimates
// ability after each response. The engine itself is stateless across
// sessions; all per-attempt state lives in the Session.
type Engine struct {
	bank *itembank.Bank
	cfg  Config
}

// NewEngine creates a CAT engine over the given item bank.
func NewEngine(bank *itembank.Bank, cfg Config) (*Engine, error) {
	if bank == nil {
		return nil, fmt.Errorf("item bank is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid CAT config: %w", err)
	}
	return &Engine{bank: bank, cfg: cfg}, nil
}

// NewSession starts an assessment over the given target skills.
// Every skill must have at least one item in the bank.
func (e *Engine) NewSession(skills ...string) (*Session, error) {
	if len(skills) == 0 {
		return nil, fmt.Errorf("at least one target skill is required")
	}
	if err := e.bank.RequireSkills(skills); err != nil {
		return nil, err
	}
	return &Session{
		Skills:        skills,
		Responses:     make(map[string]int),
		Theta:         e.cfg.InitialTheta,
		StandardError: math.Inf(1),
		asked:         make(map[string]bool),
	}, nil
}

// SelectNextItem returns the unused item for the session's target skills
// with maximum Fisher information at the current theta. Ties break on the
// lowest item code. Returns (nil, false) once the session is complete.
// If no eligible item remains before the stopping criteria are met, the
// session completes early and is flagged as such.
func (e *Engine) SelectNextItem(s *Session) (*itembank.Item, bool) {
	if s.Complete {
		return nil, false
	}

	var best *itembank.Item
	bestInfo := -1.0
	for _, skill := range s.Skills {
		for _, it := range e.bank.BySkill(skill) {
			if s.asked[it.Code] {
				continue
			}
			info := FisherInformation(s.Theta, it.Discrimination, it.Difficulty)
			if info > bestInfo || (info == bestInfo && best != nil && it.Code < best.Code) {
				item := it
				best = &item
				bestInfo = info
			}
		}
	}

	if best == nil {
		// Bank exhausted: graceful degradation, not an error.
		s.Complete = true
		s.EarlyTermination = true
		return nil, false
	}
	return best, true
}

// RecordResponse records a scored response and re-estimates ability from
// all responses seen so far. It returns the updated theta and standard
// error, and marks the session complete when a stopping criterion holds.
func (e *Engine) RecordResponse(s *Session, item itembank.Item, correct bool) (theta, se float64, err error) {
	if s.Complete {
		return s.Theta, s.StandardError, fmt.Errorf("session is complete")
	}
	if s.asked[item.Code] {
		return s.Theta, s.StandardError, fmt.Errorf("item %q already administered", item.Code)
	}

	score := 0.0
	scoreInt := 0
	if correct {
		score = 1.0
		scoreInt = 1
	}

	s.asked[item.Code] = true
	s.Asked = append(s.Asked, item.Code)
	s.Responses[item.Code] = scoreInt
	s.responses = append(s.responses, response{
		a:     item.Discrimination,
		b:     item.Difficulty,
		score: score,
	})

	s.Theta = estimateAbility(s.responses, s.Theta, e.cfg.ThetaBound, e.cfg.MaxIterations)
	s.StandardError = standardError(s.Theta, s.responses)

	if s.StandardError <= e.cfg.SEStop || len(s.Asked) >= e.cfg.MaxItems {
		s.Complete = true
	}

	return s.Theta, s.StandardError, nil
}
