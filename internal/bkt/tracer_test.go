package bkt

import (
	"math"
	"testing"
)

func newTestTracer(t *testing.T) *Tracer {
	t.Helper()
	tr, err := NewTracer(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

// Concrete scenario: p_init=0.3, p_transit=0.25, p_slip=0.1, p_guess=0.2.
// One correct response raises mastery above 0.3; a subsequent incorrect
// response lowers it but keeps it positive.
func TestUpdate_CorrectThenIncorrect(t *testing.T) {
	tr := newTestTracer(t)

	if m := tr.Mastery("algebra"); m != 0.30 {
		t.Fatalf("initial mastery = %f, want 0.30", m)
	}

	afterCorrect := tr.Update("algebra", true)
	if afterCorrect <= 0.30 {
		t.Errorf("mastery after correct = %f, want > 0.30", afterCorrect)
	}

	afterIncorrect := tr.Update("algebra", false)
	if afterIncorrect >= afterCorrect {
		t.Errorf("mastery after incorrect = %f, want < %f", afterIncorrect, afterCorrect)
	}
	if afterIncorrect <= 0 {
		t.Errorf("mastery after incorrect = %f, want > 0", afterIncorrect)
	}
}

func TestUpdate_ExactPosterior(t *testing.T) {
	tr := newTestTracer(t)

	// posterior = 0.3*0.9 / (0.3*0.9 + 0.7*0.2) = 0.27/0.41
	// next = posterior + (1-posterior)*0.25
	posterior := 0.27 / 0.41
	want := posterior + (1-posterior)*0.25
	got := tr.Update("algebra", true)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Update(correct) = %f, want %f", got, want)
	}
}

// BKT bounds: mastery stays in [0,1] under any update sequence, including
// long runs of incorrect responses.
func TestUpdate_BoundsHold(t *testing.T) {
	tr := newTestTracer(t)

	for i := 0; i < 50; i++ {
		m := tr.Update("fractions", false)
		if m < 0 || m > 1 {
			t.Fatalf("iteration %d: mastery %f escaped [0,1]", i, m)
		}
	}
	for i := 0; i < 50; i++ {
		m := tr.Update("fractions", true)
		if m < 0 || m > 1 {
			t.Fatalf("iteration %d: mastery %f escaped [0,1]", i, m)
		}
	}
}

func TestUpdate_ConvergesTowardOne(t *testing.T) {
	tr := newTestTracer(t)
	var m float64
	for i := 0; i < 30; i++ {
		m = tr.Update("algebra", true)
	}
	if m < 0.99 {
		t.Errorf("mastery after 30 correct = %f, want near 1", m)
	}
}

func TestSetSkillParams_Override(t *testing.T) {
	tr := newTestTracer(t)
	if err := tr.SetSkillParams("geometry", Params{PInit: 0.5, PTransit: 0.2, PSlip: 0.1, PGuess: 0.25}); err != nil {
		t.Fatal(err)
	}
	if m := tr.Mastery("geometry"); m != 0.5 {
		t.Errorf("overridden prior = %f, want 0.5", m)
	}
	// Other skills keep the defaults.
	if m := tr.Mastery("algebra"); m != 0.3 {
		t.Errorf("default prior = %f, want 0.3", m)
	}
}

func TestParams_Validate(t *testing.T) {
	cases := []struct {
		name string
		p    Params
	}{
		{"slip too high", Params{PInit: 0.3, PTransit: 0.25, PSlip: 0.6, PGuess: 0.2}},
		{"guess too high", Params{PInit: 0.3, PTransit: 0.25, PSlip: 0.1, PGuess: 0.5}},
		{"negative init", Params{PInit: -0.1, PTransit: 0.25, PSlip: 0.1, PGuess: 0.2}},
		{"transit above one", Params{PInit: 0.3, PTransit: 1.5, PSlip: 0.1, PGuess: 0.2}},
	}
	for _, tc := range cases {
		if err := tc.p.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
	if err := DefaultParams().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestRestore_RoundTrip(t *testing.T) {
	tr := newTestTracer(t)
	tr.Update("algebra", true)
	tr.Update("geometry", false)
	snap := tr.MasteryMap()

	tr2 := newTestTracer(t)
	tr2.Restore(snap)
	for skill, want := range snap {
		if got := tr2.Mastery(skill); got != want {
			t.Errorf("restored mastery for %s = %f, want %f", skill, got, want)
		}
	}
}

func TestRestore_ClampsOutOfRange(t *testing.T) {
	tr := newTestTracer(t)
	tr.Restore(map[string]float64{"a": 1.7, "b": -0.2})
	if m := tr.Mastery("a"); m != 1 {
		t.Errorf("mastery a = %f, want clamped 1", m)
	}
	if m := tr.Mastery("b"); m != 0 {
		t.Errorf("mastery b = %f, want clamped 0", m)
	}
}
