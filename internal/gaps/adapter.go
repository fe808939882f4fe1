// Package gaps turns assessment outcomes into prioritized learning
// gaps and retrieval queries. All output is derived and recomputed per
// run; nothing here is mutated in place.
package gaps

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/imranulf/learnora/internal/assessment"
	"github.com/imranulf/learnora/internal/content"
)

// Priority classifies how urgently a gap needs attention.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// rank orders priorities for learning-path sorting, highest first.
func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// LearningGap is one under-mastered skill with remediation parameters.
type LearningGap struct {
	Skill                 string
	MasteryLevel          float64
	Priority              Priority
	RecommendedDifficulty string
	EstimatedStudyMinutes int
	Rationale             string
}

// Query is a retrieval request derived from one gap.
type Query struct {
	Skill string

	// Text is the query string fed to the retrieval engine.
	Text string

	// Difficulty filters results to the gap's recommended level.
	Difficulty string

	// MaxDurationMinutes filters out content longer than the learner's
	// daily time budget. Zero means no duration filter.
	MaxDurationMinutes int
}

// Config holds the gap policy thresholds. The defaults implement the
// standard policy: gaps open below 0.7 combined mastery, high priority
// below 0.4, 70/30 mastery/grader weighting.
type Config struct {
	// GapThreshold is the combined score below which a skill produces a
	// gap.
	GapThreshold float64

	// HighThreshold is the combined score below which a gap is high
	// priority; gaps between HighThreshold and GapThreshold are medium.
	HighThreshold float64

	// MasteryWeight and GraderWeight combine BKT mastery with the
	// external grader score. They must sum to 1.
	MasteryWeight float64
	GraderWeight  float64

	// BaseStudyMinutes is the per-skill base study duration, scaled by
	// (1 - mastery). DefaultStudyMinutes applies to skills without an
	// entry.
	BaseStudyMinutes    map[string]int
	DefaultStudyMinutes int

	// QueryQualifier is the domain qualifier injected into generated
	// query text, e.g. "mathematics".
	QueryQualifier string
}

// DefaultConfig returns the standard gap policy.
func DefaultConfig() Config {
	return Config{
		GapThreshold:        0.70,
		HighThreshold:       0.40,
		MasteryWeight:       0.70,
		GraderWeight:        0.30,
		DefaultStudyMinutes: 60,
		QueryQualifier:      "mathematics",
	}
}

// Validate checks the policy for structural misconfiguration.
func (c Config) Validate() error {
	if c.GapThreshold <= 0 || c.GapThreshold > 1 {
		return fmt.Errorf("GapThreshold must be in (0,1], got %v", c.GapThreshold)
	}
	if c.HighThreshold <= 0 || c.HighThreshold >= c.GapThreshold {
		return fmt.Errorf("HighThreshold must be in (0, GapThreshold), got %v", c.HighThreshold)
	}
	if math.Abs(c.MasteryWeight+c.GraderWeight-1) > 1e-9 {
		return fmt.Errorf("MasteryWeight + GraderWeight must sum to 1, got %v",
			c.MasteryWeight+c.GraderWeight)
	}
	if c.DefaultStudyMinutes <= 0 {
		return fmt.Errorf("DefaultStudyMinutes must be > 0, got %d", c.DefaultStudyMinutes)
	}
	return nil
}

// Adapter applies the gap policy to assessment summaries.
type Adapter struct {
	cfg Config
}

// NewAdapter creates an Adapter with a validated policy.
func NewAdapter(cfg Config) (*Adapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gap policy: %w", err)
	}
	return &Adapter{cfg: cfg}, nil
}

// MasteryForTheta maps an ability estimate onto the mastery scale via a
// logistic squash. Used as the stand-in when BKT has no record for a
// skill.
func MasteryForTheta(theta float64) float64 {
	return 1 / (1 + math.Exp(-theta))
}

// DifficultyForMastery maps mastery onto a recommended content
// difficulty: below 0.4 beginner, 0.4 to 0.7 intermediate, above 0.7
// advanced.
func DifficultyForMastery(mastery float64) string {
	switch {
	case mastery < 0.4:
		return content.DifficultyBeginner
	case mastery <= 0.7:
		return content.DifficultyIntermediate
	default:
		return content.DifficultyAdvanced
	}
}

// IdentifyGaps derives learning gaps from an assessment summary. Every
// target skill is evaluated; skills absent from the mastery map use the
// logistic theta mapping instead. Output is ordered by priority, then
// ascending combined score, then skill name.
func (a *Adapter) IdentifyGaps(summary *assessment.Summary) ([]LearningGap, error) {
	if summary == nil {
		return nil, fmt.Errorf("assessment summary is required")
	}

	skills := make(map[string]bool, len(summary.Mastery))
	for skill := range summary.Mastery {
		skills[skill] = true
	}
	for _, skill := range summary.Skills {
		skills[skill] = true
	}

	ordered := make([]string, 0, len(skills))
	for skill := range skills {
		ordered = append(ordered, skill)
	}
	sort.Strings(ordered)

	type scored struct {
		gap      LearningGap
		combined float64
	}
	var out []scored
	for _, skill := range ordered {
		mastery, ok := summary.Mastery[skill]
		rationale := fmt.Sprintf("mastery %.2f", mastery)
		if !ok {
			mastery = MasteryForTheta(summary.Theta)
			rationale = fmt.Sprintf("no mastery record; ability estimate %.2f mapped to %.2f",
				summary.Theta, mastery)
		}

		combined := mastery
		if summary.GraderScore != nil {
			combined = a.cfg.MasteryWeight*mastery + a.cfg.GraderWeight*(*summary.GraderScore)
			rationale += fmt.Sprintf(", grader %.2f, combined %.2f", *summary.GraderScore, combined)
		}

		if combined >= a.cfg.GapThreshold {
			continue
		}

		priority := PriorityMedium
		if combined < a.cfg.HighThreshold {
			priority = PriorityHigh
		}

		base := a.cfg.DefaultStudyMinutes
		if b, ok := a.cfg.BaseStudyMinutes[skill]; ok {
			base = b
		}

		out = append(out, scored{
			combined: combined,
			gap: LearningGap{
				Skill:                 skill,
				MasteryLevel:          mastery,
				Priority:              priority,
				RecommendedDifficulty: DifficultyForMastery(mastery),
				EstimatedStudyMinutes: int(math.Round(float64(base) * (1 - mastery))),
				Rationale:             rationale,
			},
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].gap.Priority != out[j].gap.Priority {
			return out[i].gap.Priority.rank() < out[j].gap.Priority.rank()
		}
		if out[i].combined != out[j].combined {
			return out[i].combined < out[j].combined
		}
		return out[i].gap.Skill < out[j].gap.Skill
	})

	gapsOut := make([]LearningGap, len(out))
	for i, s := range out {
		gapsOut[i] = s.gap
	}
	return gapsOut, nil
}

// DiscoveryQueries turns gaps into retrieval queries. The duration
// filter comes from the profile's daily time budget when available.
func (a *Adapter) DiscoveryQueries(gapList []LearningGap, profile *content.UserProfile) []Query {
	queries := make([]Query, 0, len(gapList))
	for _, g := range gapList {
		q := Query{
			Skill:      g.Skill,
			Text:       a.queryText(g),
			Difficulty: g.RecommendedDifficulty,
		}
		if profile != nil && profile.AvailableTimeDaily > 0 {
			q.MaxDurationMinutes = profile.AvailableTimeDaily
		}
		queries = append(queries, q)
	}
	return queries
}

func (a *Adapter) queryText(g LearningGap) string {
	parts := []string{g.Skill}
	if a.cfg.QueryQualifier != "" {
		parts = append(parts, a.cfg.QueryQualifier)
	}
	parts = append(parts, "tutorial", g.RecommendedDifficulty, "practice")
	return strings.Join(parts, " ")
}
