package retrieval

import (
	"fmt"
	"sort"

	"github.com/imranulf/learnora/internal/content"
)

// Strategy selects the scoring function for a search. The zero value is
// invalid so an unset strategy is caught at the call site instead of
// silently defaulting.
type Strategy int

const (
	StrategyBM25 Strategy = iota + 1
	StrategyDense
	StrategyHybrid
)

// ParseStrategy maps a strategy name to its Strategy value. Unknown
// names are a caller error.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "bm25":
		return StrategyBM25, nil
	case "dense":
		return StrategyDense, nil
	case "hybrid":
		return StrategyHybrid, nil
	default:
		return 0, fmt.Errorf("unknown search strategy: %q", s)
	}
}

func (s Strategy) String() string {
	switch s {
	case StrategyBM25:
		return "bm25"
	case StrategyDense:
		return "dense"
	case StrategyHybrid:
		return "hybrid"
	default:
		return "invalid"
	}
}

func (s Strategy) valid() bool {
	return s >= StrategyBM25 && s <= StrategyHybrid
}

// Options configures a single search.
type Options struct {
	// TopK bounds the number of results. Defaults to 10.
	TopK int

	// DenseWeight is the hybrid dense weight w. Zero means
	// DefaultDenseWeight; pick the dense strategy for pure cosine
	// scoring.
	DenseWeight float64

	// Profile, when set, applies personalization boosts to the ranked
	// results before truncation.
	Profile *content.UserProfile
}

// Result is one ranked search hit.
type Result struct {
	Content content.LearningContent
	Score   float64
}

// Search scores the indexed corpus against the query using the selected
// strategy and returns ranked results, personalized when a profile is
// supplied. Identical (query, strategy, profile, topK) combinations may
// be served from the cache; AddContents invalidates it.
func (ix *Index) Search(query string, strategy Strategy, opts Options) ([]Result, error) {
	if !strategy.valid() {
		return nil, fmt.Errorf("unknown search strategy: %d", int(strategy))
	}
	if opts.TopK <= 0 {
		opts.TopK = 10
	}
	if opts.DenseWeight == 0 {
		opts.DenseWeight = DefaultDenseWeight
	}
	if opts.DenseWeight < 0 || opts.DenseWeight > 1 {
		return nil, fmt.Errorf("dense weight must be in [0,1], got %v", opts.DenseWeight)
	}

	key := cacheKey(query, strategy, opts)
	ix.cacheMu.Lock()
	if cached, ok := ix.cache[key]; ok {
		ix.cacheMu.Unlock()
		out := make([]Result, len(cached))
		copy(out, cached)
		return out, nil
	}
	gen := ix.gen
	ix.cacheMu.Unlock()

	ix.mu.RLock()
	queryTokens := tokenize(query)
	var scores map[int]float64
	switch strategy {
	case StrategyBM25:
		scores = bm25Scores(queryTokens, ix.docs, ix.df, ix.avgLen)
	case StrategyDense:
		scores = denseScores(queryTokens, ix.docs, ix.df)
	case StrategyHybrid:
		bm := bm25Scores(queryTokens, ix.docs, ix.df, ix.avgLen)
		dn := denseScores(queryTokens, ix.docs, ix.df)
		scores = hybridScores(bm, dn, opts.DenseWeight)
	}

	results := make([]Result, 0, len(scores))
	for i, s := range scores {
		if s <= 0 {
			continue
		}
		results = append(results, Result{Content: ix.docs[i].content, Score: s})
	}
	ix.mu.RUnlock()

	// Rank descending by score; ties break on content ID for
	// deterministic ordering across calls.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Content.ID < results[j].Content.ID
	})

	if opts.Profile != nil {
		results = Personalize(results, opts.Profile)
	}

	if len(results) > opts.TopK {
		results = results[:opts.TopK]
	}

	ix.storeCached(key, results, gen)

	return results, nil
}

// storeCached inserts results into the query cache unless the index was
// rebuilt after gen was captured, in which case the results describe the
// old corpus and are dropped rather than cached.
func (ix *Index) storeCached(key string, results []Result, gen uint64) {
	ix.cacheMu.Lock()
	defer ix.cacheMu.Unlock()
	if gen != ix.gen {
		return
	}
	stored := make([]Result, len(results))
	copy(stored, results)
	ix.cache[key] = stored
}

func cacheKey(query string, strategy Strategy, opts Options) string {
	userID := ""
	if opts.Profile != nil {
		userID = opts.Profile.UserID
	}
	return fmt.Sprintf("%s|%s|%s|%d|%g", query, strategy, userID, opts.TopK, opts.DenseWeight)
}
