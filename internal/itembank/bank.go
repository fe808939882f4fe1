package itembank

import (
	"fmt"
	"sort"
)

// Bank is a read-only collection of items with precomputed indices.
// It is created once at startup (or per test fixture) and safe for
// concurrent reads.
type Bank struct {
	items   []Item
	byCode  map[string]*Item
	bySkill map[string][]Item
}

// New builds a Bank from a slice of items, validating each one.
func New(items []Item) (*Bank, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("item bank is empty")
	}

	b := &Bank{
		items:   make([]Item, len(items)),
		byCode:  make(map[string]*Item, len(items)),
		bySkill: make(map[string][]Item),
	}
	copy(b.items, items)

	for i := range b.items {
		it := &b.items[i]
		if it.Code == "" {
			return nil, fmt.Errorf("item %d: missing item code", i)
		}
		if it.Skill == "" {
			return nil, fmt.Errorf("item %q: missing skill", it.Code)
		}
		if it.Discrimination <= 0 {
			return nil, fmt.Errorf("item %q: discrimination must be > 0, got %v", it.Code, it.Discrimination)
		}
		if _, dup := b.byCode[it.Code]; dup {
			return nil, fmt.Errorf("duplicate item code: %q", it.Code)
		}
		b.byCode[it.Code] = it
		b.bySkill[it.Skill] = append(b.bySkill[it.Skill], *it)
	}

	// Deterministic per-skill order: lowest item code first.
	for skill := range b.bySkill {
		sort.Slice(b.bySkill[skill], func(i, j int) bool {
			return b.bySkill[skill][i].Code < b.bySkill[skill][j].Code
		})
	}

	return b, nil
}

// Item returns the item with the given code, or an error if not found.
func (b *Bank) Item(code string) (Item, error) {
	it, ok := b.byCode[code]
	if !ok {
		return Item{}, fmt.Errorf("item not found: %q", code)
	}
	return *it, nil
}

// BySkill returns all items for a skill, ordered by item code.
func (b *Bank) BySkill(skill string) []Item {
	items := b.bySkill[skill]
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Skills returns all skills covered by the bank, sorted.
func (b *Bank) Skills() []string {
	out := make([]string, 0, len(b.bySkill))
	for s := range b.bySkill {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Len returns the total number of items.
func (b *Bank) Len() int {
	return len(b.items)
}

// RequireSkills verifies that the bank has at least one item for every
// listed skill. A skill without items is structural misconfiguration.
func (b *Bank) RequireSkills(skills []string) error {
	for _, s := range skills {
		if len(b.bySkill[s]) == 0 {
			return fmt.Errorf("item bank has no items for skill %q", s)
		}
	}
	return nil
}
