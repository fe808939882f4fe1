package cat

import (
	"math"
	"testing"

	"github.com/imranulf/learnora/internal/itembank"
)

func algebraBank(t *testing.T) *itembank.Bank {
	t.Helper()
	b, err := itembank.New([]itembank.Item{
		{Code: "alg-1", Skill: "algebra", Discrimination: 1.0, Difficulty: -1},
		{Code: "alg-2", Skill: "algebra", Discrimination: 1.2, Difficulty: 0},
		{Code: "alg-3", Skill: "algebra", Discrimination: 0.9, Difficulty: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestProbability_Midpoint(t *testing.T) {
	// At theta == b the 2PL probability is exactly 0.5.
	p := Probability(0.7, 1.3, 0.7)
	if math.Abs(p-0.5) > 1e-9 {
		t.Errorf("Probability at theta=b = %f, want 0.5", p)
	}
}

func TestFisherInformation_PeaksAtDifficulty(t *testing.T) {
	at := FisherInformation(0, 1.0, 0)
	away := FisherInformation(2, 1.0, 0)
	if at <= away {
		t.Errorf("information at difficulty (%f) should exceed information away (%f)", at, away)
	}
}

func TestNewSession_MissingSkill(t *testing.T) {
	e, err := NewEngine(algebraBank(t), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.NewSession("calculus"); err == nil {
		t.Error("NewSession(calculus) expected error for empty skill")
	}
}

func TestSelectNextItem_MaxInformation(t *testing.T) {
	e, err := NewEngine(algebraBank(t), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	s, err := e.NewSession("algebra")
	if err != nil {
		t.Fatal(err)
	}

	// At theta=0 the a=1.2, b=0 item carries the most information.
	item, ok := e.SelectNextItem(s)
	if !ok {
		t.Fatal("SelectNextItem returned no item")
	}
	if item.Code != "alg-2" {
		t.Errorf("selected %q, want alg-2", item.Code)
	}
}

func TestSelectNextItem_TieBreakLowestCode(t *testing.T) {
	bank, err := itembank.New([]itembank.Item{
		{Code: "b-item", Skill: "algebra", Discrimination: 1.0, Difficulty: 0},
		{Code: "a-item", Skill: "algebra", Discrimination: 1.0, Difficulty: 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	e, err := NewEngine(bank, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	s, _ := e.NewSession("algebra")
	item, ok := e.SelectNextItem(s)
	if !ok || item.Code != "a-item" {
		t.Errorf("tie should break to lowest code, got %v", item)
	}
}

// Concrete scenario: three algebra items, responses correct, correct,
// incorrect. Theta moves in the direction of each response and the
// session completes at max_items=3.
func TestSession_ThreeItemScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxItems = 3
	e, err := NewEngine(algebraBank(t), cfg)
	if err != nil {
		t.Fatal(err)
	}
	s, err := e.NewSession("algebra")
	if err != nil {
		t.Fatal(err)
	}

	responses := []bool{true, true, false}
	prev := s.Theta
	for i, correct := range responses {
		item, ok := e.SelectNextItem(s)
		if !ok {
			t.Fatalf("step %d: no item available", i)
		}
		theta, _, err := e.RecordResponse(s, *item, correct)
		if err != nil {
			t.Fatalf("step %d: RecordResponse error: %v", i, err)
		}
		if correct && theta <= prev {
			t.Errorf("step %d: theta %f did not increase after correct response (prev %f)", i, theta, prev)
		}
		if !correct && theta >= prev {
			t.Errorf("step %d: theta %f did not decrease after incorrect response (prev %f)", i, theta, prev)
		}
		if theta <= -cfg.ThetaBound || theta >= cfg.ThetaBound {
			t.Errorf("step %d: theta %f escaped bound %f", i, theta, cfg.ThetaBound)
		}
		prev = theta
	}

	if !s.Complete {
		t.Error("session should be complete after max_items responses")
	}
	if s.EarlyTermination {
		t.Error("hitting max_items is normal termination, not early")
	}
	if _, ok := e.SelectNextItem(s); ok {
		t.Error("SelectNextItem must return terminal signal once complete")
	}
}

// Monotonic convergence: all-correct responses at increasing difficulty
// keep theta non-decreasing and the standard error non-increasing.
func TestSession_MonotonicConvergence(t *testing.T) {
	items := []itembank.Item{
		{Code: "m-1", Skill: "algebra", Discrimination: 1.0, Difficulty: -1},
		{Code: "m-2", Skill: "algebra", Discrimination: 1.0, Difficulty: 0},
		{Code: "m-3", Skill: "algebra", Discrimination: 1.0, Difficulty: 1},
		{Code: "m-4", Skill: "algebra", Discrimination: 1.0, Difficulty: 2},
	}
	bank, err := itembank.New(items)
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.MaxItems = len(items)
	e, err := NewEngine(bank, cfg)
	if err != nil {
		t.Fatal(err)
	}
	s, _ := e.NewSession("algebra")

	prevTheta := s.Theta
	prevSE := math.Inf(1)
	for _, it := range items {
		theta, se, err := e.RecordResponse(s, it, true)
		if err != nil {
			t.Fatal(err)
		}
		if theta < prevTheta {
			t.Errorf("theta decreased: %f -> %f", prevTheta, theta)
		}
		if se > prevSE {
			t.Errorf("standard error increased: %f -> %f", prevSE, se)
		}
		prevTheta, prevSE = theta, se
	}
}

func TestSession_ExhaustedBankTerminatesEarly(t *testing.T) {
	bank, err := itembank.New([]itembank.Item{
		{Code: "only", Skill: "algebra", Discrimination: 1.0, Difficulty: 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.MaxItems = 10
	cfg.SEStop = 0.01 // unreachable with one item
	e, err := NewEngine(bank, cfg)
	if err != nil {
		t.Fatal(err)
	}
	s, _ := e.NewSession("algebra")

	item, ok := e.SelectNextItem(s)
	if !ok {
		t.Fatal("expected one selectable item")
	}
	if _, _, err := e.RecordResponse(s, *item, true); err != nil {
		t.Fatal(err)
	}

	if _, ok := e.SelectNextItem(s); ok {
		t.Fatal("bank is exhausted, no item should be returned")
	}
	if !s.Complete {
		t.Error("session should complete when the bank is exhausted")
	}
	if !s.EarlyTermination {
		t.Error("exhausted bank must flag early termination")
	}
}

func TestRecordResponse_DuplicateItem(t *testing.T) {
	e, err := NewEngine(algebraBank(t), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	s, _ := e.NewSession("algebra")
	item, _ := e.SelectNextItem(s)
	if _, _, err := e.RecordResponse(s, *item, true); err != nil {
		t.Fatal(err)
	}
	if _, _, err := e.RecordResponse(s, *item, true); err == nil {
		t.Error("recording the same item twice should error")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SEStop = 0
	if err := cfg.Validate(); err == nil {
		t.Error("SEStop=0 should be invalid")
	}
	cfg = DefaultConfig()
	cfg.MaxItems = 0
	if err := cfg.Validate(); err == nil {
		t.Error("MaxItems=0 should be invalid")
	}
}
