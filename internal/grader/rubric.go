package grader

import (
	"context"
	"strings"
)

// RubricGrader is the deterministic fallback scorer. It needs no
// external services and always succeeds.
//
// With keywords configured, the score is the fraction of rubric
// keywords the response mentions. Without keywords, the score is the
// token overlap (Jaccard) between the response and the reference
// answer, with an exact normalized match scoring 1.
type RubricGrader struct{}

// NewRubricGrader creates the fallback scorer.
func NewRubricGrader() *RubricGrader {
	return &RubricGrader{}
}

func (g *RubricGrader) Grade(_ context.Context, rubric Rubric, response string) (Grade, error) {
	score := rubricScore(rubric, response)
	return Grade{Score: score, Path: PathRubric}, nil
}

func rubricScore(rubric Rubric, response string) float64 {
	resp := normalize(response)
	if resp == "" {
		return 0
	}

	if len(rubric.Keywords) > 0 {
		respTokens := tokenSet(resp)
		matched := 0
		for _, kw := range rubric.Keywords {
			if containsAll(respTokens, normalize(kw)) {
				matched++
			}
		}
		return float64(matched) / float64(len(rubric.Keywords))
	}

	ref := normalize(rubric.ReferenceAnswer)
	if ref == "" {
		return 0
	}
	if resp == ref {
		return 1
	}

	// Jaccard overlap of token sets.
	a := tokenSet(resp)
	b := tokenSet(ref)
	inter := 0
	for tok := range a {
		if b[tok] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// containsAll reports whether every token of the (possibly multi-word)
// keyword appears in the response token set.
func containsAll(respTokens map[string]bool, keyword string) bool {
	toks := strings.Fields(keyword)
	if len(toks) == 0 {
		return false
	}
	for _, t := range toks {
		if !respTokens[t] {
			return false
		}
	}
	return true
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}

func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
