package grader

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/imranulf/learnora/internal/llm"
)

// Config tunes the LLM grading call.
type Config struct {
	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness. Grading wants determinism, so
	// the default is 0.
	Temperature float64

	// Timeout bounds one grading call. The rubric fallback takes over
	// when the call exceeds it.
	Timeout time.Duration
}

// DefaultConfig returns sensible grading defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens: 512,
		Timeout:   20 * time.Second,
	}
}

// LLMGrader scores responses with an LLM and falls back to the
// deterministic rubric scorer whenever the provider fails, times out,
// or returns a malformed grade. Grade therefore never returns an
// error from provider trouble; the Path field tells callers which
// scorer actually ran.
type LLMGrader struct {
	provider llm.Provider
	fallback *RubricGrader
	cfg      Config
}

// NewLLMGrader creates a grader backed by the given provider.
func NewLLMGrader(provider llm.Provider, cfg Config) (*LLMGrader, error) {
	if provider == nil {
		return nil, fmt.Errorf("llm provider is required")
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultConfig().MaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &LLMGrader{
		provider: provider,
		fallback: NewRubricGrader(),
		cfg:      cfg,
	}, nil
}

// gradeSchema is the structured output contract for grading calls.
var gradeSchema = &llm.Schema{
	Name:        "response-grade",
	Description: "Correctness grade for a learner's free-text response",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Correctness score from 0 (wrong) to 1 (fully correct)",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two sentences explaining the score",
			},
		},
		"required":             []any{"score", "feedback"},
		"additionalProperties": false,
	},
}

type gradePayload struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

func (g *LLMGrader) Grade(ctx context.Context, rubric Rubric, response string) (Grade, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()
	ctx = llm.WithPurpose(ctx, "grading")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: gradingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGradingPrompt(rubric, response)},
		},
		Schema:      gradeSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return g.fallback.Grade(ctx, rubric, response)
	}

	var payload gradePayload
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return g.fallback.Grade(ctx, rubric, response)
	}
	if payload.Score < 0 || payload.Score > 1 {
		return g.fallback.Grade(ctx, rubric, response)
	}

	return Grade{
		Score:    payload.Score,
		Path:     PathLLM,
		Feedback: payload.Feedback,
	}, nil
}

const gradingSystemPrompt = `You are a strict but fair grader for a learning platform.
Score the learner's response against the reference answer on correctness of
the underlying concept, not on phrasing. Partial credit is allowed. Respond
only with the requested JSON.`

func buildGradingPrompt(rubric Rubric, response string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Skill: %s\n\n", rubric.Skill)
	fmt.Fprintf(&b, "Question:\n%s\n\n", rubric.Question)
	fmt.Fprintf(&b, "Reference answer:\n%s\n\n", rubric.ReferenceAnswer)
	if len(rubric.Keywords) > 0 {
		fmt.Fprintf(&b, "Key concepts a strong answer mentions: %s\n\n", strings.Join(rubric.Keywords, ", "))
	}
	fmt.Fprintf(&b, "Learner response:\n%s\n", response)
	return b.String()
}
