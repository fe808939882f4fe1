package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot with mastery state.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			UserID:  "u-1",
			Mastery: map[string]float64{"algebra": 0.45, "geometry": 0.8},
			Theta:   0.7,
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Mastery["algebra"] != 0.45 {
		t.Errorf("mastery[algebra] = %v, want 0.45", snap.Data.Mastery["algebra"])
	}
	if snap.Data.Theta != 0.7 {
		t.Errorf("theta = %v, want 0.7", snap.Data.Theta)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	// Count remaining snapshots.
	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Save only 2 snapshots.
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the snapshots table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}

func TestAppendAndQueryAssessments(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	conceptScore := 0.67
	for i := 0; i < 3; i++ {
		err := repo.AppendAssessment(ctx, AssessmentEventData{
			UserID:        "u-1",
			SessionID:     string(rune('a' + i)),
			Skills:        []string{"algebra"},
			Theta:         float64(i),
			StandardError: 0.5,
			ItemsAsked:    3,
			GraderPath:    "rubric",
			ConceptMapScore: func() *float64 {
				if i == 2 {
					return &conceptScore
				}
				return nil
			}(),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.RecentAssessments(ctx, "u-1", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].Theta != 2 {
		t.Errorf("newest theta = %v, want 2", events[0].Theta)
	}
	if events[0].ConceptMapScore == nil || *events[0].ConceptMapScore != 0.67 {
		t.Errorf("concept map score not round-tripped: %v", events[0].ConceptMapScore)
	}

	other, err := repo.RecentAssessments(ctx, "u-2", 0)
	if err != nil {
		t.Fatalf("recent (other user): %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no events for another user, got %d", len(other))
	}
}

func TestSkillAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	responses := []ResponseEventData{
		{UserID: "u-1", SessionID: "s-1", ItemCode: "alg-1", Skill: "algebra", Correct: true},
		{UserID: "u-1", SessionID: "s-1", ItemCode: "alg-2", Skill: "algebra", Correct: false},
		{UserID: "u-1", SessionID: "s-1", ItemCode: "geo-1", Skill: "geometry", Correct: true},
		{UserID: "u-2", SessionID: "s-2", ItemCode: "alg-1", Skill: "algebra", Correct: false},
	}
	for i, r := range responses {
		if err := repo.AppendResponse(ctx, r); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.SkillAccuracy(ctx, "u-1")
	if err != nil {
		t.Fatalf("skill accuracy: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("stats = %d skills, want 2", len(stats))
	}
	// Sorted by skill name.
	if stats[0].Skill != "algebra" || stats[0].Total != 2 || stats[0].Correct != 1 {
		t.Errorf("algebra stats = %+v, want 1/2 correct", stats[0])
	}
	if stats[0].Accuracy != 0.5 {
		t.Errorf("algebra accuracy = %v, want 0.5", stats[0].Accuracy)
	}
	if stats[1].Skill != "geometry" || stats[1].Accuracy != 1.0 {
		t.Errorf("geometry stats = %+v, want 1/1 correct", stats[1])
	}
}

func TestAppendRecommendationAndLearningTime(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendRecommendation(ctx, RecommendationEventData{
		UserID:           "u-1",
		BundleID:         "b-1",
		GapCount:         1,
		ContentCount:     3,
		EstimatedMinutes: 75,
		LearningPath:     []string{"c-1", "c-2", "c-3"},
	})
	if err != nil {
		t.Fatalf("append recommendation: %v", err)
	}

	err = repo.AppendLearningTime(ctx, LearningTimeEventData{
		UserID:     "u-1",
		ContentIDs: []string{"c-1"},
		Minutes:    30,
	})
	if err != nil {
		t.Fatalf("append learning time: %v", err)
	}

	count, err := s.Client().RecommendationEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count recommendations: %v", err)
	}
	if count != 1 {
		t.Errorf("recommendation events = %d, want 1", count)
	}
}
