// Package pipeline sequences one full adaptive learning run: assessment,
// gap analysis, content retrieval, personalization, and learning-path
// assembly, bundled into a single immutable result.
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/imranulf/learnora/internal/assessment"
	"github.com/imranulf/learnora/internal/content"
	"github.com/imranulf/learnora/internal/gaps"
	"github.com/imranulf/learnora/internal/retrieval"
)

// Recorder persists pipeline outcomes. The core has no database
// dependency; callers inject an implementation (the event store) or
// leave it nil to skip persistence. Recording failures degrade the
// bundle with a note instead of failing the run.
type Recorder interface {
	RecordAssessment(ctx context.Context, summary *assessment.Summary) error
	RecordRecommendation(ctx context.Context, bundle *Bundle) error
	RecordLearningTime(ctx context.Context, userID string, contentIDs []string, minutes int) error
}

// Config holds the orchestration knobs.
type Config struct {
	Assessment assessment.Config
	Gaps       gaps.Config

	// Strategy and DenseWeight configure retrieval. Zero DenseWeight
	// selects the engine default.
	Strategy    retrieval.Strategy
	DenseWeight float64

	// TopKPerGap bounds the merged recommendations contributed per gap.
	TopKPerGap int

	// NextAssessmentAfter sets the re-assessment trigger interval.
	NextAssessmentAfter time.Duration
}

// DefaultConfig composes the package defaults: hybrid retrieval, five
// recommendations per gap, re-assessment after one week.
func DefaultConfig() Config {
	return Config{
		Assessment:          assessment.DefaultConfig(),
		Gaps:                gaps.DefaultConfig(),
		Strategy:            retrieval.StrategyHybrid,
		TopKPerGap:          5,
		NextAssessmentAfter: 7 * 24 * time.Hour,
	}
}

// Recommendation is one piece of content selected for a gap.
type Recommendation struct {
	Content content.LearningContent
	Score   float64

	// Skill is the gap that produced this recommendation.
	Skill string
}

// Bundle is the final immutable output of one pipeline run.
type Bundle struct {
	ID     string
	UserID string

	Assessment  *assessment.Summary
	Gaps        []gaps.LearningGap
	Recommended []Recommendation

	// LearningPath orders recommended content IDs by gap priority, then
	// difficulty progression, with prerequisites pulled ahead of their
	// dependents.
	LearningPath []string

	// EstimatedCompletionMinutes sums the durations of the recommended
	// content.
	EstimatedCompletionMinutes int

	// NextAssessmentAt is when a re-assessment should be triggered.
	NextAssessmentAt time.Time

	// Notes lists degradations encountered during the run.
	Notes []string

	CreatedAt time.Time
}

// LearningUpdate is the receipt for an update-after-learning call.
type LearningUpdate struct {
	UserID           string
	ContentIDs       []string
	MinutesSpent     int
	NextAssessmentAt time.Time
	RecordedAt       time.Time
}

// Pipeline wires the assessment runner, the gap adapter, and the
// retrieval index. Construction fails fast on structural
// misconfiguration; Run degrades gracefully on everything recoverable.
type Pipeline struct {
	runner   *assessment.Runner
	adapter  *gaps.Adapter
	index    *retrieval.Index
	recorder Recorder
	cfg      Config
}

// New creates a Pipeline. The recorder may be nil.
func New(runner *assessment.Runner, index *retrieval.Index, recorder Recorder, cfg Config) (*Pipeline, error) {
	if runner == nil {
		return nil, fmt.Errorf("assessment runner is required")
	}
	if index == nil {
		return nil, fmt.Errorf("retrieval index is required")
	}
	adapter, err := gaps.NewAdapter(cfg.Gaps)
	if err != nil {
		return nil, err
	}
	if cfg.TopKPerGap <= 0 {
		cfg.TopKPerGap = DefaultConfig().TopKPerGap
	}
	if cfg.Strategy == 0 {
		cfg.Strategy = retrieval.StrategyHybrid
	}
	if cfg.NextAssessmentAfter <= 0 {
		cfg.NextAssessmentAfter = DefaultConfig().NextAssessmentAfter
	}
	return &Pipeline{
		runner:   runner,
		adapter:  adapter,
		index:    index,
		recorder: recorder,
		cfg:      cfg,
	}, nil
}

// Run executes the full sequence and returns the recommendation bundle.
func (p *Pipeline) Run(ctx context.Context, in assessment.Input, profile *content.UserProfile) (*Bundle, error) {
	summary, err := p.runner.Run(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("running assessment: %w", err)
	}

	gapList, err := p.adapter.IdentifyGaps(summary)
	if err != nil {
		return nil, fmt.Errorf("identifying gaps: %w", err)
	}

	bundle := &Bundle{
		ID:         uuid.NewString(),
		UserID:     in.UserID,
		Assessment: summary,
		Gaps:       gapList,
		Notes:      append([]string(nil), summary.Notes...),
		CreatedAt:  time.Now().UTC(),
	}
	bundle.NextAssessmentAt = bundle.CreatedAt.Add(p.cfg.NextAssessmentAfter)

	queries := p.adapter.DiscoveryQueries(gapList, profile)
	recs, notes := p.retrieve(queries, gapList, profile)
	bundle.Recommended = recs
	bundle.Notes = append(bundle.Notes, notes...)

	bundle.LearningPath = learningPath(recs, gapList)
	for _, r := range recs {
		bundle.EstimatedCompletionMinutes += r.Content.DurationMinutes
	}

	if p.recorder != nil {
		if err := p.recorder.RecordAssessment(ctx, summary); err != nil {
			bundle.Notes = append(bundle.Notes, fmt.Sprintf("assessment not persisted: %v", err))
		}
		if err := p.recorder.RecordRecommendation(ctx, bundle); err != nil {
			bundle.Notes = append(bundle.Notes, fmt.Sprintf("recommendation not persisted: %v", err))
		}
	}

	return bundle, nil
}

// retrieve runs one search per gap query, applies the query's
// difficulty and duration filters, and merges hits across gaps keeping
// the best score per content ID.
func (p *Pipeline) retrieve(queries []gaps.Query, gapList []gaps.LearningGap, profile *content.UserProfile) ([]Recommendation, []string) {
	var notes []string
	best := make(map[string]Recommendation)
	order := make([]string, 0)

	for _, q := range queries {
		results, err := p.index.Search(q.Text, p.cfg.Strategy, retrieval.Options{
			TopK:        p.cfg.TopKPerGap * 3,
			DenseWeight: p.cfg.DenseWeight,
			Profile:     profile,
		})
		if err != nil {
			notes = append(notes, fmt.Sprintf("search failed for skill %q: %v", q.Skill, err))
			continue
		}

		kept := 0
		for _, r := range results {
			if kept >= p.cfg.TopKPerGap {
				break
			}
			if q.Difficulty != "" && r.Content.Difficulty != "" && r.Content.Difficulty != q.Difficulty {
				continue
			}
			if q.MaxDurationMinutes > 0 && r.Content.DurationMinutes > q.MaxDurationMinutes {
				continue
			}
			kept++
			prev, seen := best[r.Content.ID]
			if !seen {
				order = append(order, r.Content.ID)
			}
			if !seen || r.Score > prev.Score {
				best[r.Content.ID] = Recommendation{Content: r.Content, Score: r.Score, Skill: q.Skill}
			}
		}
		if kept == 0 {
			notes = append(notes, fmt.Sprintf("no matching content found for skill %q", q.Skill))
		}
	}

	out := make([]Recommendation, 0, len(best))
	for _, id := range order {
		out = append(out, best[id])
	}
	return out, notes
}

// learningPath orders recommended content IDs: gap priority first, then
// difficulty progression, keeping merge order for ties, and finally
// pulls prerequisites ahead of the content that lists them.
func learningPath(recs []Recommendation, gapList []gaps.LearningGap) []string {
	if len(recs) == 0 {
		return nil
	}

	prio := make(map[string]int, len(gapList))
	for i, g := range gapList {
		// Gaps arrive already ordered by priority; the index doubles as
		// the priority rank.
		prio[g.Skill] = i
	}

	ordered := make([]Recommendation, len(recs))
	copy(ordered, recs)
	sort.SliceStable(ordered, func(i, j int) bool {
		pi, pj := prio[ordered[i].Skill], prio[ordered[j].Skill]
		if pi != pj {
			return pi < pj
		}
		return content.DifficultyRank(ordered[i].Content.Difficulty) <
			content.DifficultyRank(ordered[j].Content.Difficulty)
	})

	// Prerequisite pass: if a later entry is listed as a prerequisite of
	// an earlier one, move it ahead. Bounded passes keep this O(n²) in
	// the worst case, which is fine at recommendation sizes.
	ids := make([]string, len(ordered))
	for i, r := range ordered {
		ids[i] = r.Content.ID
	}
	byID := make(map[string]Recommendation, len(ordered))
	for _, r := range ordered {
		byID[r.Content.ID] = r
	}
	for pass := 0; pass < len(ids); pass++ {
		moved := false
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				if isPrereq(byID[ids[i]].Content, ids[j]) {
					id := ids[j]
					copy(ids[i+1:j+1], ids[i:j])
					ids[i] = id
					moved = true
				}
			}
		}
		if !moved {
			break
		}
	}
	return ids
}

func isPrereq(c content.LearningContent, id string) bool {
	for _, p := range c.Prerequisites {
		if p == id {
			return true
		}
	}
	return false
}

// UpdateAfterLearning records externally tracked learning time. It does
// not re-run the assessment; the returned receipt carries the next
// re-assessment trigger instead.
func (p *Pipeline) UpdateAfterLearning(ctx context.Context, userID string, contentIDs []string, minutesSpent int) (*LearningUpdate, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if minutesSpent < 0 {
		return nil, fmt.Errorf("minutes spent must be >= 0, got %d", minutesSpent)
	}

	now := time.Now().UTC()
	update := &LearningUpdate{
		UserID:           userID,
		ContentIDs:       append([]string(nil), contentIDs...),
		MinutesSpent:     minutesSpent,
		NextAssessmentAt: now.Add(p.cfg.NextAssessmentAfter),
		RecordedAt:       now,
	}

	if p.recorder != nil {
		if err := p.recorder.RecordLearningTime(ctx, userID, contentIDs, minutesSpent); err != nil {
			return nil, fmt.Errorf("recording learning time: %w", err)
		}
	}
	return update, nil
}
