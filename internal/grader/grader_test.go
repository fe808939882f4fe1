package grader

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/imranulf/learnora/internal/llm"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

var sampleRubric = Rubric{
	Skill:           "algebra",
	Question:        "Solve 2x + 4 = 10 for x.",
	ReferenceAnswer: "x = 3, subtract 4 from both sides then divide by 2",
	Keywords:        []string{"subtract", "divide", "3"},
}

func TestRubricGraderKeywordFraction(t *testing.T) {
	g := NewRubricGrader()

	grade, err := g.Grade(context.Background(), sampleRubric, "First subtract 4, the answer is 3")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if grade.Path != PathRubric {
		t.Errorf("path = %q, want %q", grade.Path, PathRubric)
	}
	// "subtract" and "3" match, "divide" does not.
	if !almostEqual(grade.Score, 2.0/3.0) {
		t.Errorf("score = %v, want 2/3", grade.Score)
	}
}

func TestRubricGraderNoKeywordsUsesReferenceOverlap(t *testing.T) {
	g := NewRubricGrader()
	rubric := Rubric{
		Skill:           "geometry",
		Question:        "What is the area of a 3x4 rectangle?",
		ReferenceAnswer: "the area is 12",
	}

	exact, err := g.Grade(context.Background(), rubric, "The area is 12.")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if !almostEqual(exact.Score, 1.0) {
		t.Errorf("exact-match score = %v, want 1", exact.Score)
	}

	partial, err := g.Grade(context.Background(), rubric, "it is 12")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if partial.Score <= 0 || partial.Score >= 1 {
		t.Errorf("partial-overlap score = %v, want in (0,1)", partial.Score)
	}
}

func TestRubricGraderEmptyResponse(t *testing.T) {
	g := NewRubricGrader()
	grade, err := g.Grade(context.Background(), sampleRubric, "   ")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if grade.Score != 0 {
		t.Errorf("score = %v, want 0", grade.Score)
	}
}

func TestRubricGraderMultiWordKeyword(t *testing.T) {
	g := NewRubricGrader()
	rubric := Rubric{
		Skill:    "probability",
		Question: "Define independent events.",
		Keywords: []string{"joint probability", "product"},
	}

	grade, err := g.Grade(context.Background(), rubric, "the joint probability equals the product of the marginals")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if !almostEqual(grade.Score, 1.0) {
		t.Errorf("score = %v, want 1", grade.Score)
	}
}

func TestLLMGraderHappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 0.85, "feedback": "Right method, minor arithmetic slip."}`),
	})
	g, err := NewLLMGrader(mock, DefaultConfig())
	if err != nil {
		t.Fatalf("NewLLMGrader: %v", err)
	}

	grade, err := g.Grade(context.Background(), sampleRubric, "subtract 4 then divide, x is 3")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if grade.Path != PathLLM {
		t.Errorf("path = %q, want %q", grade.Path, PathLLM)
	}
	if !almostEqual(grade.Score, 0.85) {
		t.Errorf("score = %v, want 0.85", grade.Score)
	}
	if grade.Feedback == "" {
		t.Error("expected feedback to be carried through")
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestLLMGraderSendsRubricContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 1, "feedback": "ok"}`),
	})
	g, err := NewLLMGrader(mock, DefaultConfig())
	if err != nil {
		t.Fatalf("NewLLMGrader: %v", err)
	}

	if _, err := g.Grade(context.Background(), sampleRubric, "x = 3"); err != nil {
		t.Fatalf("Grade: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "response-grade" {
		t.Fatalf("expected response-grade schema on request, got %+v", req.Schema)
	}
	prompt := req.Messages[0].Content
	for _, want := range []string{sampleRubric.Question, sampleRubric.ReferenceAnswer, "x = 3"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestLLMGraderFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("upstream down")})
	g, err := NewLLMGrader(mock, DefaultConfig())
	if err != nil {
		t.Fatalf("NewLLMGrader: %v", err)
	}

	grade, err := g.Grade(context.Background(), sampleRubric, "subtract 4 then divide by 2 to get 3")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if grade.Path != PathRubric {
		t.Errorf("path = %q, want rubric fallback", grade.Path)
	}
	if !almostEqual(grade.Score, 1.0) {
		t.Errorf("fallback score = %v, want 1 (all keywords present)", grade.Score)
	}
}

func TestLLMGraderFallsBackOnMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	g, err := NewLLMGrader(mock, DefaultConfig())
	if err != nil {
		t.Fatalf("NewLLMGrader: %v", err)
	}

	grade, err := g.Grade(context.Background(), sampleRubric, "subtract then divide, 3")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if grade.Path != PathRubric {
		t.Errorf("path = %q, want rubric fallback", grade.Path)
	}
}

func TestLLMGraderFallsBackOnOutOfRangeScore(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 1.7, "feedback": "oops"}`),
	})
	g, err := NewLLMGrader(mock, DefaultConfig())
	if err != nil {
		t.Fatalf("NewLLMGrader: %v", err)
	}

	grade, err := g.Grade(context.Background(), sampleRubric, "subtract")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if grade.Path != PathRubric {
		t.Errorf("path = %q, want rubric fallback", grade.Path)
	}
	if !almostEqual(grade.Score, 1.0/3.0) {
		t.Errorf("fallback score = %v, want 1/3", grade.Score)
	}
}

func TestNewLLMGraderRequiresProvider(t *testing.T) {
	if _, err := NewLLMGrader(nil, Config{}); err == nil {
		t.Fatal("expected error for nil provider")
	}
}

func TestNewLLMGraderAppliesDefaults(t *testing.T) {
	g, err := NewLLMGrader(llm.NewMockProvider(), Config{})
	if err != nil {
		t.Fatalf("NewLLMGrader: %v", err)
	}
	if g.cfg.MaxTokens != 512 {
		t.Errorf("MaxTokens = %d, want 512", g.cfg.MaxTokens)
	}
	if g.cfg.Timeout != 20*time.Second {
		t.Errorf("Timeout = %v, want 20s", g.cfg.Timeout)
	}
}
