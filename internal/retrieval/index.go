// Package retrieval implements the in-memory hybrid retrieval engine:
// a BM25 inverted-statistics index, precomputed TF-IDF document vectors,
// and a weighted hybrid scorer, with personalization boosting on top.
package retrieval

import (
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/imranulf/learnora/internal/content"
)

// document holds one content record plus its derived index statistics.
// Derived fields are rebuilt wholesale on every AddContents call.
type document struct {
	content  content.LearningContent
	termFreq map[string]int
	length   int
	vector   map[string]float64
	norm     float64
}

// Index is the shared retrieval index. Concurrent Search calls read it
// safely; AddContents takes the write lock, rebuilds every derived
// statistic, and drops the query cache so results never go stale.
type Index struct {
	mu      sync.RWMutex
	byID    map[string]content.LearningContent
	docs    []document
	df      map[string]int
	avgLen  float64
	// cacheMu guards cache and gen. gen counts rebuilds; a search that
	// started before a rebuild carries a stale gen and must not populate
	// the fresh cache with results scored against the old index.
	cacheMu sync.Mutex
	cache   map[string][]Result
	gen     uint64
}

// NewIndex creates an empty retrieval index.
func NewIndex() *Index {
	return &Index{
		byID:  make(map[string]content.LearningContent),
		df:    make(map[string]int),
		cache: make(map[string][]Result),
	}
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.docs)
}

// AddContents adds or replaces content records (keyed by ID) and fully
// rebuilds the derived index: token lists, document frequencies, average
// document length, TF-IDF vectors, and vector norms. The rebuild is
// idempotent and deterministic, and invalidates the query cache.
func (ix *Index) AddContents(items []content.LearningContent) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	for _, it := range items {
		ix.byID[it.ID] = it
	}
	ix.rebuild()

	ix.cacheMu.Lock()
	ix.cache = make(map[string][]Result)
	ix.gen++
	ix.cacheMu.Unlock()
}

// rebuild recomputes every derived statistic from the current content
// set. Callers must hold the write lock.
func (ix *Index) rebuild() {
	ids := make([]string, 0, len(ix.byID))
	for id := range ix.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	ix.docs = make([]document, 0, len(ids))
	ix.df = make(map[string]int)
	totalLen := 0

	for _, id := range ids {
		c := ix.byID[id]
		tokens := tokenize(searchableText(c))
		tf := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			tf[tok]++
		}
		for tok := range tf {
			ix.df[tok]++
		}
		totalLen += len(tokens)
		ix.docs = append(ix.docs, document{
			content:  c,
			termFreq: tf,
			length:   len(tokens),
		})
	}

	ix.avgLen = 0
	if len(ix.docs) > 0 {
		ix.avgLen = float64(totalLen) / float64(len(ix.docs))
	}

	// Document frequencies are final; now the vectors can be computed.
	n := len(ix.docs)
	for i := range ix.docs {
		d := &ix.docs[i]
		d.vector = make(map[string]float64, len(d.termFreq))
		sum := 0.0
		for tok, freq := range d.termFreq {
			w := tfidfWeight(freq, ix.df[tok], n)
			d.vector[tok] = w
			sum += w * w
		}
		d.norm = math.Sqrt(sum)
	}
}

// tfidfWeight is the shared term weight for document and query vectors:
// log-scaled term frequency times smoothed inverse document frequency.
func tfidfWeight(freq, df, n int) float64 {
	tf := 1.0 + math.Log(float64(freq))
	idf := math.Log(float64(n+1)/float64(df+1)) + 1.0
	return tf * idf
}

// searchableText concatenates every searchable field of a content
// record: title, description, tags, prerequisites, and flattened
// metadata.
func searchableText(c content.LearningContent) string {
	var b strings.Builder
	b.WriteString(c.Title)
	b.WriteByte(' ')
	b.WriteString(c.Description)
	for _, t := range c.Tags {
		b.WriteByte(' ')
		b.WriteString(t)
	}
	for _, p := range c.Prerequisites {
		b.WriteByte(' ')
		b.WriteString(p)
	}
	// Flatten metadata in sorted key order for determinism.
	if len(c.Metadata) > 0 {
		keys := make([]string, 0, len(c.Metadata))
		for k := range c.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteByte(' ')
			b.WriteString(k)
			b.WriteByte(' ')
			b.WriteString(c.Metadata[k])
		}
	}
	return b.String()
}

// tokenize lowercases the text and splits it into alphanumeric word
// tokens.
func tokenize(text string) []string {
	text = strings.ToLower(text)
	return strings.FieldsFunc(text, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
}
