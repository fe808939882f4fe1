package llm

import (
	"math"
	"testing"
)

// Every model ID the friendly-name aliases resolve to must be priced, so
// default-configured providers never show up as "?" in llm stats.
func TestLookupCost_CoversResolvedAliases(t *testing.T) {
	resolved := make([]string, 0, len(anthropicModels)+len(geminiModels)+1)
	for _, id := range anthropicModels {
		resolved = append(resolved, id)
	}
	resolved = append(resolved, "gpt-4o-mini") // OpenAI default
	resolved = append(resolved, geminiModels["gemini-flash"])

	for _, id := range resolved {
		if LookupCost(id) == nil {
			t.Errorf("no pricing for configured model %q", id)
		}
	}
}

func TestLookupCost_UnknownModel(t *testing.T) {
	if c := LookupCost("some-future-model"); c != nil {
		t.Fatalf("expected nil for unknown model, got %+v", c)
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 1, OutputPerMTok: 5}
	got := c.Cost(2_000_000, 500_000)
	want := 2.0 + 2.5
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("Cost() = %f, want %f", got, want)
	}
}
