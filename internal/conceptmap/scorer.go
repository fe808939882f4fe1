// Package conceptmap scores learner-submitted concept-relationship graphs
// against a required edge set.
package conceptmap

import "fmt"

// Edge is an unordered pair of concept identifiers.
type Edge struct {
	A, B string
}

// NewEdge returns the canonical form of an edge: endpoints are ordered
// lexicographically so {x,y} and {y,x} compare equal.
func NewEdge(a, b string) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Score returns |submitted ∩ required| / |required| in [0,1].
// Duplicate submitted edges are deduplicated before scoring. An empty
// required set leaves the denominator undefined and is rejected.
func Score(submitted, required []Edge) (float64, error) {
	if len(required) == 0 {
		return 0, fmt.Errorf("required edge set is empty")
	}

	req := make(map[Edge]bool, len(required))
	for _, e := range required {
		req[NewEdge(e.A, e.B)] = true
	}

	seen := make(map[Edge]bool, len(submitted))
	matched := 0
	for _, e := range submitted {
		c := NewEdge(e.A, e.B)
		if seen[c] {
			continue
		}
		seen[c] = true
		if req[c] {
			matched++
		}
	}

	return float64(matched) / float64(len(req)), nil
}
