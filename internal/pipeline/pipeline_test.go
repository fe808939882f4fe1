package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/imranulf/learnora/internal/assessment"
	"github.com/imranulf/learnora/internal/content"
	"github.com/imranulf/learnora/internal/itembank"
	"github.com/imranulf/learnora/internal/retrieval"
)

func testBank(t *testing.T) *itembank.Bank {
	t.Helper()
	bank, err := itembank.New([]itembank.Item{
		{Code: "alg-1", Skill: "algebra", Discrimination: 1.0, Difficulty: -1.0},
		{Code: "alg-2", Skill: "algebra", Discrimination: 1.2, Difficulty: 0.0},
		{Code: "alg-3", Skill: "algebra", Discrimination: 0.9, Difficulty: 1.0},
	})
	if err != nil {
		t.Fatalf("building bank: %v", err)
	}
	return bank
}

func testCorpus() []content.LearningContent {
	return []content.LearningContent{
		{
			ID: "c-1", Title: "Algebra basics tutorial", ContentType: "tutorial",
			Description: "algebra mathematics practice for beginners",
			Difficulty:  content.DifficultyBeginner, DurationMinutes: 30,
			Tags: []string{"algebra", "mathematics"},
		},
		{
			ID: "c-2", Title: "Intro to algebra video", ContentType: "video",
			Description: "algebra mathematics tutorial with worked practice problems",
			Difficulty:  content.DifficultyBeginner, DurationMinutes: 20,
			Tags: []string{"algebra"}, Prerequisites: []string{"c-1"},
		},
		{
			ID: "c-3", Title: "Advanced algebra proofs", ContentType: "article",
			Description: "algebra mathematics for advanced learners",
			Difficulty:  content.DifficultyAdvanced, DurationMinutes: 90,
			Tags: []string{"algebra"},
		},
		{
			ID: "c-4", Title: "Probability crash course", ContentType: "video",
			Description: "probability mathematics tutorial",
			Difficulty:  content.DifficultyBeginner, DurationMinutes: 25,
			Tags: []string{"probability"},
		},
	}
}

func testIndex() *retrieval.Index {
	ix := retrieval.NewIndex()
	ix.AddContents(testCorpus())
	return ix
}

// allWrong drives mastery low so the run produces an algebra gap.
func allWrong(itembank.Item) bool { return false }

func newTestPipeline(t *testing.T, rec Recorder) *Pipeline {
	t.Helper()
	runner, err := assessment.NewRunner(testBank(t), assessment.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	p, err := New(runner, testIndex(), rec, DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func TestRunProducesBundle(t *testing.T) {
	p := newTestPipeline(t, nil)

	profile := &content.UserProfile{
		UserID:             "u-1",
		PreferredFormats:   []string{"video"},
		AvailableTimeDaily: 60,
	}
	bundle, err := p.Run(context.Background(), assessment.Input{
		UserID: "u-1",
		Skills: []string{"algebra"},
		Oracle: allWrong,
	}, profile)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if bundle.ID == "" {
		t.Error("expected a bundle ID")
	}
	if len(bundle.Gaps) != 1 || bundle.Gaps[0].Skill != "algebra" {
		t.Fatalf("gaps = %+v, want one algebra gap", bundle.Gaps)
	}
	if len(bundle.Recommended) == 0 {
		t.Fatal("expected recommendations for the algebra gap")
	}
	for _, r := range bundle.Recommended {
		if r.Content.Difficulty != content.DifficultyBeginner {
			t.Errorf("content %s difficulty = %q, want beginner (gap filter)", r.Content.ID, r.Content.Difficulty)
		}
		if r.Content.DurationMinutes > 60 {
			t.Errorf("content %s duration %d exceeds the 60-minute budget", r.Content.ID, r.Content.DurationMinutes)
		}
		if r.Skill != "algebra" {
			t.Errorf("recommendation skill = %q, want algebra", r.Skill)
		}
	}
	if len(bundle.LearningPath) != len(bundle.Recommended) {
		t.Errorf("learning path has %d entries, want %d", len(bundle.LearningPath), len(bundle.Recommended))
	}
	wantMinutes := 0
	for _, r := range bundle.Recommended {
		wantMinutes += r.Content.DurationMinutes
	}
	if bundle.EstimatedCompletionMinutes != wantMinutes {
		t.Errorf("completion minutes = %d, want %d", bundle.EstimatedCompletionMinutes, wantMinutes)
	}
	if !bundle.NextAssessmentAt.After(bundle.CreatedAt) {
		t.Error("next assessment trigger should be after creation time")
	}
}

func TestLearningPathHonorsPrerequisites(t *testing.T) {
	p := newTestPipeline(t, nil)

	bundle, err := p.Run(context.Background(), assessment.Input{
		UserID: "u-1",
		Skills: []string{"algebra"},
		Oracle: allWrong,
	}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	pos := make(map[string]int, len(bundle.LearningPath))
	for i, id := range bundle.LearningPath {
		pos[id] = i
	}
	p1, ok1 := pos["c-1"]
	p2, ok2 := pos["c-2"]
	if ok1 && ok2 && p1 > p2 {
		t.Errorf("c-1 is a prerequisite of c-2 but ordered after it: %v", bundle.LearningPath)
	}
}

func TestRunAnnotatesEmptyRetrieval(t *testing.T) {
	runner, err := assessment.NewRunner(testBank(t), assessment.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	// Empty index: every gap query comes back without content.
	p, err := New(runner, retrieval.NewIndex(), nil, DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	bundle, err := p.Run(context.Background(), assessment.Input{
		UserID: "u-1",
		Skills: []string{"algebra"},
		Oracle: allWrong,
	}, nil)
	if err != nil {
		t.Fatalf("Run should degrade, not fail: %v", err)
	}
	if len(bundle.Recommended) != 0 {
		t.Errorf("expected no recommendations from an empty index")
	}
	found := false
	for _, n := range bundle.Notes {
		if n == `no matching content found for skill "algebra"` {
			found = true
		}
	}
	if !found {
		t.Errorf("missing degradation note, got %v", bundle.Notes)
	}
}

type fakeRecorder struct {
	assessments     int
	recommendations int
	learningTime    int
	failLearning    bool
}

func (f *fakeRecorder) RecordAssessment(context.Context, *assessment.Summary) error {
	f.assessments++
	return nil
}

func (f *fakeRecorder) RecordRecommendation(context.Context, *Bundle) error {
	f.recommendations++
	return nil
}

func (f *fakeRecorder) RecordLearningTime(context.Context, string, []string, int) error {
	if f.failLearning {
		return errors.New("store unavailable")
	}
	f.learningTime++
	return nil
}

func TestRunPersistsThroughRecorder(t *testing.T) {
	rec := &fakeRecorder{}
	p := newTestPipeline(t, rec)

	if _, err := p.Run(context.Background(), assessment.Input{
		UserID: "u-1",
		Skills: []string{"algebra"},
		Oracle: allWrong,
	}, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rec.assessments != 1 || rec.recommendations != 1 {
		t.Errorf("recorded %d assessments and %d recommendations, want 1 and 1",
			rec.assessments, rec.recommendations)
	}
}

func TestUpdateAfterLearning(t *testing.T) {
	rec := &fakeRecorder{}
	p := newTestPipeline(t, rec)

	update, err := p.UpdateAfterLearning(context.Background(), "u-1", []string{"c-1", "c-2"}, 50)
	if err != nil {
		t.Fatalf("UpdateAfterLearning: %v", err)
	}
	if rec.learningTime != 1 {
		t.Errorf("learning time recorded %d times, want 1", rec.learningTime)
	}
	if update.MinutesSpent != 50 {
		t.Errorf("minutes = %d, want 50", update.MinutesSpent)
	}
	if !update.NextAssessmentAt.After(update.RecordedAt) {
		t.Error("next assessment trigger should be in the future")
	}
}

func TestUpdateAfterLearningValidation(t *testing.T) {
	p := newTestPipeline(t, nil)
	if _, err := p.UpdateAfterLearning(context.Background(), "", nil, 10); err == nil {
		t.Error("expected error for missing user ID")
	}
	if _, err := p.UpdateAfterLearning(context.Background(), "u-1", nil, -1); err == nil {
		t.Error("expected error for negative minutes")
	}
}

func TestNewValidation(t *testing.T) {
	runner, err := assessment.NewRunner(testBank(t), assessment.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	if _, err := New(nil, retrieval.NewIndex(), nil, DefaultConfig()); err == nil {
		t.Error("expected error for nil runner")
	}
	if _, err := New(runner, nil, nil, DefaultConfig()); err == nil {
		t.Error("expected error for nil index")
	}
	bad := DefaultConfig()
	bad.Gaps.MasteryWeight = 0.5
	if _, err := New(runner, retrieval.NewIndex(), nil, bad); err == nil {
		t.Error("expected error for invalid gap policy")
	}
}
