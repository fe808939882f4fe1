// Package grader scores free-text learner responses against a rubric.
// Grading is an injected capability: the LLM-backed implementation is
// optional and always paired with a deterministic rubric fallback, so
// the assessment core never hard-depends on an AI provider.
package grader

import "context"

// Scoring paths recorded on every grade so downstream consumers know
// which scorer produced the result.
const (
	PathLLM    = "llm"
	PathRubric = "rubric"
)

// Rubric describes what a correct response looks like for one question.
type Rubric struct {
	// Skill the graded question belongs to.
	Skill string

	// Question is the prompt shown to the learner.
	Question string

	// ReferenceAnswer is the canonical correct answer.
	ReferenceAnswer string

	// Keywords are terms a strong response is expected to mention.
	// Used by the deterministic fallback scorer.
	Keywords []string
}

// Grade is the outcome of scoring one response.
type Grade struct {
	// Score is the correctness score in [0,1].
	Score float64

	// Path is the scoring path that produced the score: PathLLM or
	// PathRubric.
	Path string

	// Feedback is an optional short explanation.
	Feedback string
}

// Grader scores a free-text response against a rubric.
type Grader interface {
	Grade(ctx context.Context, rubric Rubric, response string) (Grade, error)
}
