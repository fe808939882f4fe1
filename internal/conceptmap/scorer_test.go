package conceptmap

import (
	"math"
	"testing"
)

// Concrete scenario: {(a,b),(b,c)} against {(a,b),(b,c),(c,d)} scores 2/3.
func TestScore_TwoOfThree(t *testing.T) {
	submitted := []Edge{{A: "a", B: "b"}, {A: "b", B: "c"}}
	required := []Edge{{A: "a", B: "b"}, {A: "b", B: "c"}, {A: "c", B: "d"}}

	got, err := Score(submitted, required)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if math.Abs(got-2.0/3.0) > 1e-12 {
		t.Errorf("Score() = %v, want exactly 2/3", got)
	}
}

func TestScore_EdgesAreUnordered(t *testing.T) {
	submitted := []Edge{{A: "b", B: "a"}}
	required := []Edge{{A: "a", B: "b"}}
	got, err := Score(submitted, required)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1.0 {
		t.Errorf("reversed edge should match, score = %v", got)
	}
}

func TestScore_DuplicatesDeduplicated(t *testing.T) {
	submitted := []Edge{{A: "a", B: "b"}, {A: "b", B: "a"}, {A: "a", B: "b"}}
	required := []Edge{{A: "a", B: "b"}, {A: "c", B: "d"}}
	got, err := Score(submitted, required)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.5 {
		t.Errorf("Score() = %v, want 0.5 (duplicates must not inflate)", got)
	}
}

func TestScore_EmptyRequired(t *testing.T) {
	if _, err := Score([]Edge{{A: "a", B: "b"}}, nil); err == nil {
		t.Error("empty required set must be rejected")
	}
}

func TestScore_NoMatches(t *testing.T) {
	got, err := Score([]Edge{{A: "x", B: "y"}}, []Edge{{A: "a", B: "b"}})
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("Score() = %v, want 0", got)
	}
}

func TestScore_Bounded(t *testing.T) {
	// More submitted than required edges cannot push the score above 1.
	submitted := []Edge{{A: "a", B: "b"}, {A: "c", B: "d"}, {A: "e", B: "f"}}
	required := []Edge{{A: "a", B: "b"}}
	got, err := Score(submitted, required)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1.0 {
		t.Errorf("Score() = %v, want 1.0", got)
	}
}
