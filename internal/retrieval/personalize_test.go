package retrieval

import (
	"testing"

	"github.com/imranulf/learnora/internal/content"
)

func sampleResults() []Result {
	return []Result{
		{Content: content.LearningContent{ID: "a", ContentType: "article", DurationMinutes: 90}, Score: 1.0},
		{Content: content.LearningContent{ID: "b", ContentType: "video", DurationMinutes: 20}, Score: 0.95},
		{Content: content.LearningContent{ID: "c", ContentType: "article", DurationMinutes: 15}, Score: 0.5},
	}
}

func TestPersonalize_FormatAndTimeBoosts(t *testing.T) {
	profile := &content.UserProfile{
		UserID:             "u1",
		PreferredFormats:   []string{"video"},
		AvailableTimeDaily: 30,
	}

	got := Personalize(sampleResults(), profile)

	// b gets 0.95 * 1.10 * 1.05 = 1.097..., overtaking a at 1.0.
	if got[0].Content.ID != "b" {
		t.Errorf("top result = %q, want b after boosts", got[0].Content.ID)
	}
	want := 0.95 * 1.10 * 1.05
	if diff := got[0].Score - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("boosted score = %f, want %f", got[0].Score, want)
	}
}

// Personalization monotonicity: a boost never decreases a score, and
// results receiving identical boosts keep their relative order.
func TestPersonalize_Monotonic(t *testing.T) {
	profile := &content.UserProfile{
		UserID:             "u1",
		PreferredFormats:   []string{"article"},
		AvailableTimeDaily: 200,
	}

	original := sampleResults()
	got := Personalize(original, profile)

	scores := make(map[string]float64)
	for _, r := range got {
		scores[r.Content.ID] = r.Score
	}
	for _, r := range original {
		if scores[r.Content.ID] < r.Score {
			t.Errorf("doc %s: boosted score %f below original %f", r.Content.ID, scores[r.Content.ID], r.Score)
		}
	}

	// a and c receive identical boosts (both articles under the time
	// budget? a is 90min <= 200, c is 15min <= 200, both preferred) so
	// their relative order must be preserved.
	posA, posC := -1, -1
	for i, r := range got {
		switch r.Content.ID {
		case "a":
			posA = i
		case "c":
			posC = i
		}
	}
	if posA > posC {
		t.Error("identically boosted results changed relative order")
	}
}

func TestPersonalize_NilProfile(t *testing.T) {
	original := sampleResults()
	got := Personalize(original, nil)
	if len(got) != len(original) {
		t.Fatal("nil profile must be a no-op")
	}
	for i := range got {
		if got[i].Score != original[i].Score {
			t.Errorf("score changed with nil profile: %f vs %f", got[i].Score, original[i].Score)
		}
	}
}

func TestPersonalize_MissingFieldsSkipBoosts(t *testing.T) {
	// No preferred formats and no time budget: scores unchanged.
	profile := &content.UserProfile{UserID: "u2"}
	original := sampleResults()
	got := Personalize(original, profile)
	for i := range got {
		if got[i].Score != original[i].Score {
			t.Errorf("doc %s: score changed without applicable boosts", got[i].Content.ID)
		}
	}
}

func TestPersonalize_BoostAppliedOncePerFactor(t *testing.T) {
	profile := &content.UserProfile{
		UserID:             "u3",
		PreferredFormats:   []string{"video", "video"}, // duplicate entry
		AvailableTimeDaily: 30,
	}
	results := []Result{
		{Content: content.LearningContent{ID: "b", ContentType: "video", DurationMinutes: 20}, Score: 1.0},
	}
	got := Personalize(results, profile)
	want := 1.0 * 1.10 * 1.05
	if diff := got[0].Score - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("score = %f, want %f (each factor applied once)", got[0].Score, want)
	}
}
