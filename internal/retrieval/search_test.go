package retrieval

import (
	"math"
	"reflect"
	"testing"

	"github.com/imranulf/learnora/internal/content"
)

func twoDocIndex(t *testing.T) *Index {
	t.Helper()
	ix := NewIndex()
	ix.AddContents([]content.LearningContent{
		{ID: "doc-1", Title: "python basics tutorial", ContentType: "tutorial", DurationMinutes: 30},
		{ID: "doc-2", Title: "advanced java guide", ContentType: "article", DurationMinutes: 60},
	})
	return ix
}

// Concrete scenario: query "python tutorial" under bm25 ranks the python
// document first with a positive score gap.
func TestSearch_BM25RanksRelevantFirst(t *testing.T) {
	ix := twoDocIndex(t)

	results, err := ix.Search("python tutorial", StrategyBM25, Options{TopK: 10})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) == 0 {
		t.Fatal("no results")
	}
	if results[0].Content.ID != "doc-1" {
		t.Fatalf("top result = %q, want doc-1", results[0].Content.ID)
	}
	if len(results) > 1 && results[0].Score-results[1].Score <= 0 {
		t.Errorf("expected positive score gap, got %f vs %f", results[0].Score, results[1].Score)
	}
}

// BM25 determinism: identical corpus and query return identical ranked
// order and scores on repeated calls.
func TestSearch_BM25Deterministic(t *testing.T) {
	ix := twoDocIndex(t)

	first, err := ix.Search("python tutorial guide", StrategyBM25, Options{TopK: 10})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := ix.Search("python tutorial guide", StrategyBM25, Options{TopK: 10})
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("call %d: results differ from first call", i)
		}
	}
}

// Hybrid composition law: hybrid == (1-w)*bm25 + w*dense per document.
func TestSearch_HybridComposition(t *testing.T) {
	ix := NewIndex()
	ix.AddContents(append(content.StarterCatalog(), content.LearningContent{
		ID: "extra", Title: "algebra practice workbook", Description: "algebra drills",
	}))

	const w = 0.4
	query := "algebra practice tutorial"

	scoreByID := func(strategy Strategy) map[string]float64 {
		res, err := ix.Search(query, strategy, Options{TopK: 100, DenseWeight: w})
		if err != nil {
			t.Fatal(err)
		}
		m := make(map[string]float64, len(res))
		for _, r := range res {
			m[r.Content.ID] = r.Score
		}
		return m
	}

	bm := scoreByID(StrategyBM25)
	dn := scoreByID(StrategyDense)
	hy := scoreByID(StrategyHybrid)

	for id, h := range hy {
		want := (1-w)*bm[id] + w*dn[id]
		if math.Abs(h-want) > 1e-9 {
			t.Errorf("doc %s: hybrid = %f, want (1-w)*bm25 + w*dense = %f", id, h, want)
		}
	}
}

// Idempotent indexing: AddContents twice with the same set yields
// identical derived statistics.
func TestAddContents_Idempotent(t *testing.T) {
	catalog := content.StarterCatalog()

	once := NewIndex()
	once.AddContents(catalog)

	twice := NewIndex()
	twice.AddContents(catalog)
	twice.AddContents(catalog)

	if !reflect.DeepEqual(once.df, twice.df) {
		t.Error("document frequencies differ after re-indexing")
	}
	if once.avgLen != twice.avgLen {
		t.Errorf("average length differs: %f vs %f", once.avgLen, twice.avgLen)
	}
	if len(once.docs) != len(twice.docs) {
		t.Fatalf("doc counts differ: %d vs %d", len(once.docs), len(twice.docs))
	}
	for i := range once.docs {
		if once.docs[i].norm != twice.docs[i].norm {
			t.Errorf("doc %d: vector norm differs: %f vs %f", i, once.docs[i].norm, twice.docs[i].norm)
		}
	}
}

func TestSearch_UnknownStrategy(t *testing.T) {
	ix := twoDocIndex(t)
	if _, err := ix.Search("python", Strategy(0), Options{}); err == nil {
		t.Error("invalid strategy must be rejected")
	}
	if _, err := ParseStrategy("semantic"); err == nil {
		t.Error("ParseStrategy must reject unknown names")
	}
	for _, name := range []string{"bm25", "dense", "hybrid"} {
		s, err := ParseStrategy(name)
		if err != nil {
			t.Errorf("ParseStrategy(%q) error: %v", name, err)
		}
		if s.String() != name {
			t.Errorf("round trip %q -> %q", name, s.String())
		}
	}
}

func TestSearch_UnseenTokensContributeZero(t *testing.T) {
	ix := twoDocIndex(t)
	results, err := ix.Search("quantum chromodynamics", StrategyBM25, Options{TopK: 10})
	if err != nil {
		t.Fatalf("unseen tokens must not error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results for out-of-corpus query, got %d", len(results))
	}
}

func TestSearch_CacheInvalidatedOnAddContents(t *testing.T) {
	ix := twoDocIndex(t)

	before, err := ix.Search("tutorial", StrategyBM25, Options{TopK: 10})
	if err != nil {
		t.Fatal(err)
	}

	ix.AddContents([]content.LearningContent{
		{ID: "doc-3", Title: "yet another python tutorial", ContentType: "tutorial"},
	})

	after, err := ix.Search("tutorial", StrategyBM25, Options{TopK: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(after) == len(before) {
		t.Error("results unchanged after index rebuild; cache was not invalidated")
	}
}

// A search that overlaps an index rebuild must not insert results scored
// against the old corpus into the freshly cleared cache.
func TestStoreCached_DropsResultsFromBeforeRebuild(t *testing.T) {
	ix := twoDocIndex(t)

	ix.cacheMu.Lock()
	gen := ix.gen
	ix.cacheMu.Unlock()

	stale := []Result{{Content: content.LearningContent{ID: "doc-1"}, Score: 1.0}}

	// Rebuild after the searcher captured its generation.
	ix.AddContents([]content.LearningContent{
		{ID: "doc-3", Title: "yet another python tutorial", ContentType: "tutorial"},
	})

	ix.storeCached("tutorial|bm25||10|0.65", stale, gen)

	ix.cacheMu.Lock()
	defer ix.cacheMu.Unlock()
	if len(ix.cache) != 0 {
		t.Fatalf("stale results were cached across a rebuild: %d entries", len(ix.cache))
	}
}

func TestStoreCached_CurrentGenerationIsKept(t *testing.T) {
	ix := twoDocIndex(t)

	results, err := ix.Search("tutorial", StrategyBM25, Options{TopK: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) == 0 {
		t.Fatal("no results")
	}

	ix.cacheMu.Lock()
	defer ix.cacheMu.Unlock()
	if len(ix.cache) == 0 {
		t.Fatal("search with no intervening rebuild must populate the cache")
	}
}

func TestSearch_TopKTruncates(t *testing.T) {
	ix := NewIndex()
	ix.AddContents(content.StarterCatalog())
	results, err := ix.Search("mathematics", StrategyBM25, Options{TopK: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) > 2 {
		t.Errorf("TopK=2 returned %d results", len(results))
	}
}

func TestSearch_EmptyIndex(t *testing.T) {
	ix := NewIndex()
	results, err := ix.Search("anything", StrategyHybrid, Options{})
	if err != nil {
		t.Fatalf("empty index must not error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestSearch_InvalidDenseWeight(t *testing.T) {
	ix := twoDocIndex(t)
	if _, err := ix.Search("python", StrategyHybrid, Options{DenseWeight: 1.5}); err == nil {
		t.Error("dense weight above 1 must be rejected")
	}
}
