package itembank

import (
	"strings"
	"testing"
)

func testItems() []Item {
	return []Item{
		{Code: "alg-2", Skill: "algebra", Discrimination: 1.2, Difficulty: 0},
		{Code: "alg-1", Skill: "algebra", Discrimination: 1.0, Difficulty: -1},
		{Code: "geo-1", Skill: "geometry", Discrimination: 0.9, Difficulty: 0.5},
	}
}

func TestNew_Valid(t *testing.T) {
	b, err := New(testItems())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if b.Len() != 3 {
		t.Errorf("Len() = %d, want 3", b.Len())
	}
}

func TestNew_Empty(t *testing.T) {
	_, err := New(nil)
	if err == nil {
		t.Fatal("New(nil) expected error, got nil")
	}
}

func TestNew_DuplicateCode(t *testing.T) {
	items := []Item{
		{Code: "x", Skill: "algebra", Discrimination: 1.0},
		{Code: "x", Skill: "algebra", Discrimination: 1.0},
	}
	_, err := New(items)
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("expected duplicate code error, got %v", err)
	}
}

func TestNew_NonPositiveDiscrimination(t *testing.T) {
	items := []Item{{Code: "x", Skill: "algebra", Discrimination: 0}}
	if _, err := New(items); err == nil {
		t.Error("expected error for discrimination = 0")
	}
	items[0].Discrimination = -0.5
	if _, err := New(items); err == nil {
		t.Error("expected error for negative discrimination")
	}
}

func TestBySkill_OrderedByCode(t *testing.T) {
	b, err := New(testItems())
	if err != nil {
		t.Fatal(err)
	}
	got := b.BySkill("algebra")
	if len(got) != 2 {
		t.Fatalf("BySkill(algebra) returned %d items, want 2", len(got))
	}
	if got[0].Code != "alg-1" || got[1].Code != "alg-2" {
		t.Errorf("items not ordered by code: %q, %q", got[0].Code, got[1].Code)
	}
}

func TestRequireSkills(t *testing.T) {
	b, err := New(testItems())
	if err != nil {
		t.Fatal(err)
	}
	if err := b.RequireSkills([]string{"algebra", "geometry"}); err != nil {
		t.Errorf("RequireSkills() unexpected error: %v", err)
	}
	if err := b.RequireSkills([]string{"calculus"}); err == nil {
		t.Error("RequireSkills(calculus) expected error, got nil")
	}
}

func TestItem_NotFound(t *testing.T) {
	b, err := New(testItems())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Item("missing"); err == nil {
		t.Error("Item(missing) expected error")
	}
}
