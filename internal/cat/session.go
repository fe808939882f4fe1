package cat

// Session holds the mutable state of one adaptive assessment attempt.
// It is mutated only by the Engine and is not safe for concurrent use;
// each learner attempt gets its own Session.
type Session struct {
	// Skills are the target skills for this assessment.
	Skills []string

	// Asked lists item codes in the order they were administered.
	Asked []string

	// Responses maps item code to the observed score (0 or 1).
	Responses map[string]int

	// Theta is the current ability estimate.
	Theta float64

	// StandardError of the current ability estimate.
	StandardError float64

	// Complete is true once a stopping criterion has been reached.
	Complete bool

	// EarlyTermination is true when the session completed because the
	// bank ran out of eligible items before the stopping criteria were
	// met. Downstream consumers treat this as a degradation flag, not
	// an error.
	EarlyTermination bool

	asked     map[string]bool
	responses []response
}

// ItemsAsked returns the number of items administered so far.
func (s *Session) ItemsAsked() int {
	return len(s.Asked)
}

// WasAsked reports whether the item has already been administered.
func (s *Session) WasAsked(code string) bool {
	return s.asked[code]
}
