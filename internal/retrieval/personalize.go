package retrieval

import (
	"sort"

	"github.com/imranulf/learnora/internal/content"
)

// Personalization boost factors. Each factor is applied at most once per
// result; the boosts compose multiplicatively.
const (
	formatBoost = 1.10
	timeBoost   = 1.05
)

// Personalize applies profile-based multiplicative boosts to ranked
// results and re-sorts them descending by adjusted score. Ties keep
// their original relative order. Missing profile fields simply skip the
// corresponding boost; a nil profile returns the input unchanged.
func Personalize(results []Result, profile *content.UserProfile) []Result {
	if profile == nil {
		return results
	}

	boosted := make([]Result, len(results))
	copy(boosted, results)

	for i := range boosted {
		c := boosted[i].Content
		if profile.PrefersFormat(c.ContentType) {
			boosted[i].Score *= formatBoost
		}
		if profile.AvailableTimeDaily > 0 && c.DurationMinutes > 0 &&
			c.DurationMinutes <= profile.AvailableTimeDaily {
			boosted[i].Score *= timeBoost
		}
	}

	sort.SliceStable(boosted, func(i, j int) bool {
		return boosted[i].Score > boosted[j].Score
	})
	return boosted
}
