package gaps

import (
	"testing"

	"github.com/imranulf/learnora/internal/assessment"
	"github.com/imranulf/learnora/internal/content"
)

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()
	a, err := NewAdapter(DefaultConfig())
	if err != nil {
		t.Fatalf("NewAdapter: %v", err)
	}
	return a
}

func TestIdentifyGapsScenario(t *testing.T) {
	a := newTestAdapter(t)

	summary := &assessment.Summary{
		Skills: []string{"algebra", "probability"},
		Mastery: map[string]float64{
			"algebra":     0.35,
			"probability": 0.80,
		},
	}

	gapsOut, err := a.IdentifyGaps(summary)
	if err != nil {
		t.Fatalf("IdentifyGaps: %v", err)
	}
	if len(gapsOut) != 1 {
		t.Fatalf("gaps = %d, want exactly 1 (algebra only)", len(gapsOut))
	}
	g := gapsOut[0]
	if g.Skill != "algebra" {
		t.Errorf("gap skill = %q, want algebra", g.Skill)
	}
	if g.Priority != PriorityHigh {
		t.Errorf("priority = %q, want high", g.Priority)
	}
	if g.RecommendedDifficulty != content.DifficultyBeginner {
		t.Errorf("difficulty = %q, want beginner", g.RecommendedDifficulty)
	}
	// 60 base minutes scaled by (1 - 0.35).
	if g.EstimatedStudyMinutes != 39 {
		t.Errorf("study minutes = %d, want 39", g.EstimatedStudyMinutes)
	}
}

func TestIdentifyGapsCombinesGraderScore(t *testing.T) {
	a := newTestAdapter(t)

	grade := 0.2
	summary := &assessment.Summary{
		Skills:      []string{"algebra"},
		Mastery:     map[string]float64{"algebra": 0.75},
		GraderScore: &grade,
	}

	// Combined = 0.7*0.75 + 0.3*0.2 = 0.585 < 0.7: mastery alone would
	// not open a gap, the grader score pulls it under.
	gapsOut, err := a.IdentifyGaps(summary)
	if err != nil {
		t.Fatalf("IdentifyGaps: %v", err)
	}
	if len(gapsOut) != 1 {
		t.Fatalf("gaps = %d, want 1", len(gapsOut))
	}
	if gapsOut[0].Priority != PriorityMedium {
		t.Errorf("priority = %q, want medium for combined 0.585", gapsOut[0].Priority)
	}
	if gapsOut[0].RecommendedDifficulty != content.DifficultyAdvanced {
		t.Errorf("difficulty = %q, want advanced (mastery 0.75 drives difficulty)", gapsOut[0].RecommendedDifficulty)
	}
}

func TestIdentifyGapsThetaFallback(t *testing.T) {
	a := newTestAdapter(t)

	// No mastery record for the skill: the logistic squash of theta=-2
	// (~0.12) stands in, producing a high-priority beginner gap.
	summary := &assessment.Summary{
		Skills:  []string{"fractions"},
		Theta:   -2.0,
		Mastery: map[string]float64{},
	}

	gapsOut, err := a.IdentifyGaps(summary)
	if err != nil {
		t.Fatalf("IdentifyGaps: %v", err)
	}
	if len(gapsOut) != 1 {
		t.Fatalf("gaps = %d, want 1", len(gapsOut))
	}
	g := gapsOut[0]
	if g.Priority != PriorityHigh {
		t.Errorf("priority = %q, want high", g.Priority)
	}
	if g.MasteryLevel < 0.11 || g.MasteryLevel > 0.13 {
		t.Errorf("mastery stand-in = %v, want ~0.12", g.MasteryLevel)
	}
}

func TestIdentifyGapsOrdering(t *testing.T) {
	a := newTestAdapter(t)

	summary := &assessment.Summary{
		Mastery: map[string]float64{
			"geometry":    0.55, // medium
			"algebra":     0.10, // high, worst
			"fractions":   0.30, // high
			"probability": 0.90, // no gap
		},
	}

	gapsOut, err := a.IdentifyGaps(summary)
	if err != nil {
		t.Fatalf("IdentifyGaps: %v", err)
	}
	want := []string{"algebra", "fractions", "geometry"}
	if len(gapsOut) != len(want) {
		t.Fatalf("gaps = %d, want %d", len(gapsOut), len(want))
	}
	for i, skill := range want {
		if gapsOut[i].Skill != skill {
			t.Errorf("gap[%d] = %q, want %q", i, gapsOut[i].Skill, skill)
		}
	}
}

func TestDifficultyForMastery(t *testing.T) {
	cases := []struct {
		mastery float64
		want    string
	}{
		{0.0, content.DifficultyBeginner},
		{0.39, content.DifficultyBeginner},
		{0.4, content.DifficultyIntermediate},
		{0.7, content.DifficultyIntermediate},
		{0.71, content.DifficultyAdvanced},
		{1.0, content.DifficultyAdvanced},
	}
	for _, c := range cases {
		if got := DifficultyForMastery(c.mastery); got != c.want {
			t.Errorf("DifficultyForMastery(%v) = %q, want %q", c.mastery, got, c.want)
		}
	}
}

func TestDiscoveryQueries(t *testing.T) {
	a := newTestAdapter(t)

	gapsOut := []LearningGap{
		{Skill: "algebra", RecommendedDifficulty: content.DifficultyBeginner},
		{Skill: "geometry", RecommendedDifficulty: content.DifficultyIntermediate},
	}
	profile := &content.UserProfile{AvailableTimeDaily: 45}

	queries := a.DiscoveryQueries(gapsOut, profile)
	if len(queries) != 2 {
		t.Fatalf("queries = %d, want 2", len(queries))
	}
	if queries[0].Text != "algebra mathematics tutorial beginner practice" {
		t.Errorf("query text = %q", queries[0].Text)
	}
	if queries[0].Difficulty != content.DifficultyBeginner {
		t.Errorf("difficulty = %q, want beginner", queries[0].Difficulty)
	}
	if queries[0].MaxDurationMinutes != 45 {
		t.Errorf("max duration = %d, want 45", queries[0].MaxDurationMinutes)
	}
}

func TestDiscoveryQueriesWithoutProfile(t *testing.T) {
	a := newTestAdapter(t)
	queries := a.DiscoveryQueries([]LearningGap{
		{Skill: "algebra", RecommendedDifficulty: content.DifficultyBeginner},
	}, nil)
	if queries[0].MaxDurationMinutes != 0 {
		t.Errorf("max duration = %d, want 0 (no filter)", queries[0].MaxDurationMinutes)
	}
}

func TestConfigValidate(t *testing.T) {
	bad := []Config{
		{GapThreshold: 0, HighThreshold: 0.4, MasteryWeight: 0.7, GraderWeight: 0.3, DefaultStudyMinutes: 60},
		{GapThreshold: 0.7, HighThreshold: 0.8, MasteryWeight: 0.7, GraderWeight: 0.3, DefaultStudyMinutes: 60},
		{GapThreshold: 0.7, HighThreshold: 0.4, MasteryWeight: 0.5, GraderWeight: 0.3, DefaultStudyMinutes: 60},
		{GapThreshold: 0.7, HighThreshold: 0.4, MasteryWeight: 0.7, GraderWeight: 0.3, DefaultStudyMinutes: 0},
	}
	for i, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}
