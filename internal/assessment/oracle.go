package assessment

import (
	"math/rand"

	"github.com/imranulf/learnora/internal/cat"
	"github.com/imranulf/learnora/internal/itembank"
)

// Oracle answers one administered item. True means the learner answered
// correctly. Real learner input and simulation both fit this contract;
// the assessment core never interprets raw answer text for the adaptive
// loop.
type Oracle func(item itembank.Item) bool

// SimulatedOracle answers according to the 2PL model at a fixed true
// ability: an item is answered correctly with probability P(trueTheta).
// The seed makes runs reproducible.
func SimulatedOracle(trueTheta float64, seed int64) Oracle {
	rng := rand.New(rand.NewSource(seed))
	return func(item itembank.Item) bool {
		p := cat.Probability(trueTheta, item.Discrimination, item.Difficulty)
		return rng.Float64() < p
	}
}

// PerfectOracle answers every item correctly. Useful for demos and for
// exercising the convergence behavior of the adaptive loop.
func PerfectOracle() Oracle {
	return func(itembank.Item) bool { return true }
}
