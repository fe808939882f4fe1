// Package content defines the learning-content corpus and user-profile
// records consumed by the retrieval and personalization layers. Records
// are supplied by the caller (crawler, API fetcher, manual catalog); the
// engine never fetches content itself.
package content

import "time"

// Difficulty levels used across the catalog and gap analysis.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// LearningContent is a single piece of indexable learning material.
// Immutable per indexing pass.
type LearningContent struct {
	ID              string
	Title           string
	ContentType     string // video, article, tutorial, exercise, ...
	Source          string
	URL             string
	Description     string
	Difficulty      string
	DurationMinutes int
	Tags            []string
	Prerequisites   []string
	Metadata        map[string]string
	CreatedAt       time.Time
}

// UserProfile is a read-only input to personalization; the engine never
// mutates it.
type UserProfile struct {
	UserID             string
	KnowledgeAreas     map[string]float64 // topic -> level in [0,1]
	LearningGoals      []string
	PreferredFormats   []string
	AvailableTimeDaily int // minutes
	LearningStyle      string
}

// PrefersFormat reports whether the profile lists the given content type
// among its preferred formats.
func (p *UserProfile) PrefersFormat(contentType string) bool {
	if p == nil {
		return false
	}
	for _, f := range p.PreferredFormats {
		if f == contentType {
			return true
		}
	}
	return false
}

// DifficultyRank orders difficulty labels for learning-path progression.
// Unknown labels sort after advanced.
func DifficultyRank(d string) int {
	switch d {
	case DifficultyBeginner:
		return 0
	case DifficultyIntermediate:
		return 1
	case DifficultyAdvanced:
		return 2
	default:
		return 3
	}
}
