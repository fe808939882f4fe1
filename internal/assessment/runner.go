// Package assessment runs one full adaptive assessment: the CAT loop
// against a response oracle, per-response knowledge tracing, optional
// concept-map scoring, and optional free-text grading, aggregated into
// a single summary.
package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/imranulf/learnora/internal/bkt"
	"github.com/imranulf/learnora/internal/cat"
	"github.com/imranulf/learnora/internal/conceptmap"
	"github.com/imranulf/learnora/internal/grader"
	"github.com/imranulf/learnora/internal/itembank"
)

// Config holds the knobs for one assessment run.
type Config struct {
	CAT cat.Config
	BKT bkt.Params
}

// DefaultConfig composes the package defaults.
func DefaultConfig() Config {
	return Config{
		CAT: cat.DefaultConfig(),
		BKT: bkt.DefaultParams(),
	}
}

// FreeTextTask is one open-ended question answered by the learner and
// scored by the injected grader.
type FreeTextTask struct {
	Rubric   grader.Rubric
	Response string
}

// Input describes one assessment attempt.
type Input struct {
	// UserID identifies the learner.
	UserID string

	// Skills are the target skills for the adaptive loop.
	Skills []string

	// Oracle answers each administered item.
	Oracle Oracle

	// SubmittedEdges and RequiredEdges feed the concept-map scorer.
	// Scoring runs only when RequiredEdges is non-empty.
	SubmittedEdges []conceptmap.Edge
	RequiredEdges  []conceptmap.Edge

	// FreeText tasks are scored by the grader and averaged.
	FreeText []FreeTextTask
}

// Summary is the aggregated outcome of one assessment.
type Summary struct {
	SessionID string
	UserID    string
	Skills    []string

	// Theta and StandardError are the final ability estimate.
	Theta         float64
	StandardError float64

	// ItemsAsked lists administered item codes in order; Responses maps
	// item code to the observed score.
	ItemsAsked []string
	Responses  map[string]int

	// Mastery is the post-assessment BKT mastery map.
	Mastery map[string]float64

	// ConceptMapScore is set when concept-map edges were scored.
	ConceptMapScore *float64

	// GraderScore is the mean free-text score; GraderPath records which
	// scoring path produced it ("llm", or "rubric" when any task fell
	// back).
	GraderScore *float64
	GraderPath  string

	// EarlyTermination is true when the item bank ran out before the
	// stopping criteria were met.
	EarlyTermination bool

	// Notes lists degradations encountered during the run.
	Notes []string

	CreatedAt time.Time
}

// Runner wires the adaptive loop, the knowledge tracer, and the
// graders together. One Runner serves one learner's state; concurrent
// learners get separate Runners.
type Runner struct {
	engine *cat.Engine
	tracer *bkt.Tracer
	grader grader.Grader
	cfg    Config
}

// NewRunner creates a Runner over the given item bank. A nil grader
// selects the deterministic rubric scorer.
func NewRunner(bank *itembank.Bank, cfg Config, g grader.Grader) (*Runner, error) {
	engine, err := cat.NewEngine(bank, cfg.CAT)
	if err != nil {
		return nil, err
	}
	tracer, err := bkt.NewTracer(cfg.BKT)
	if err != nil {
		return nil, err
	}
	if g == nil {
		g = grader.NewRubricGrader()
	}
	return &Runner{engine: engine, tracer: tracer, grader: g, cfg: cfg}, nil
}

// Tracer exposes the knowledge tracer so callers can snapshot or
// restore mastery state across runs.
func (r *Runner) Tracer() *bkt.Tracer {
	return r.tracer
}

// Run executes the assessment to completion and aggregates the summary.
// Structural misconfiguration (no skills, missing bank coverage, empty
// required edge set alongside submitted edges) fails fast; recoverable
// degradations are annotated in Notes instead.
func (r *Runner) Run(ctx context.Context, in Input) (*Summary, error) {
	if in.Oracle == nil {
		return nil, fmt.Errorf("response oracle is required")
	}

	session, err := r.engine.NewSession(in.Skills...)
	if err != nil {
		return nil, err
	}

	// Seed priors for every target skill so the mastery map covers
	// skills the adaptive loop never reaches.
	for _, skill := range in.Skills {
		r.tracer.Mastery(skill)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("assessment aborted: %w", err)
		}
		item, ok := r.engine.SelectNextItem(session)
		if !ok {
			break
		}
		correct := in.Oracle(*item)
		if _, _, err := r.engine.RecordResponse(session, *item, correct); err != nil {
			return nil, fmt.Errorf("recording response for %q: %w", item.Code, err)
		}
		r.tracer.Update(item.Skill, correct)
	}

	summary := r.summarize(session, in)

	if len(in.RequiredEdges) > 0 {
		score, err := conceptmap.Score(in.SubmittedEdges, in.RequiredEdges)
		if err != nil {
			return nil, fmt.Errorf("scoring concept map: %w", err)
		}
		summary.ConceptMapScore = &score
	} else if len(in.SubmittedEdges) > 0 {
		return nil, fmt.Errorf("concept map submitted without a required edge set")
	}

	if len(in.FreeText) > 0 {
		if err := r.gradeFreeText(ctx, in.FreeText, summary); err != nil {
			return nil, err
		}
	}

	return summary, nil
}

// summarize copies the session state into an immutable Summary; none of
// the slice or map fields alias the live session.
func (r *Runner) summarize(session *cat.Session, in Input) *Summary {
	responses := make(map[string]int, len(session.Responses))
	for code, score := range session.Responses {
		responses[code] = score
	}
	summary := &Summary{
		SessionID:        uuid.NewString(),
		UserID:           in.UserID,
		Skills:           append([]string(nil), in.Skills...),
		Theta:            session.Theta,
		StandardError:    session.StandardError,
		ItemsAsked:       append([]string(nil), session.Asked...),
		Responses:        responses,
		Mastery:          r.tracer.MasteryMap(),
		EarlyTermination: session.EarlyTermination,
		CreatedAt:        time.Now().UTC(),
	}
	if session.EarlyTermination {
		summary.Notes = append(summary.Notes,
			"item bank exhausted before stopping criteria; ability estimate uses all available items")
	}
	return summary
}

// gradeFreeText scores each task and averages. The summary path is
// "llm" only when every task was LLM-scored; any fallback marks the
// whole run "rubric" and adds a degradation note.
func (r *Runner) gradeFreeText(ctx context.Context, tasks []FreeTextTask, summary *Summary) error {
	total := 0.0
	path := grader.PathLLM
	fellBack := false
	for _, task := range tasks {
		g, err := r.grader.Grade(ctx, task.Rubric, task.Response)
		if err != nil {
			return fmt.Errorf("grading response for skill %q: %w", task.Rubric.Skill, err)
		}
		total += g.Score
		if g.Path != grader.PathLLM {
			path = grader.PathRubric
			fellBack = true
		}
	}
	mean := total / float64(len(tasks))
	summary.GraderScore = &mean
	summary.GraderPath = path
	if fellBack {
		summary.Notes = append(summary.Notes, "free-text grading used the rubric fallback")
	}
	return nil
}
