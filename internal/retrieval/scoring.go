package retrieval

import "math"

// BM25 constants. These must match exactly for score compatibility
// across deployments.
const (
	bm25K1 = 1.6
	bm25B  = 0.75
)

// DefaultDenseWeight is the hybrid dense-score weight w in
// combined = (1-w)*bm25 + w*dense.
const DefaultDenseWeight = 0.65

// Scoring functions are pure: they take the index's derived statistics
// and return fresh score maps keyed by document position, leaving the
// index untouched.

// bm25Scores computes Okapi BM25 scores for the query tokens. Tokens
// unseen in the corpus contribute nothing.
func bm25Scores(queryTokens []string, docs []document, df map[string]int, avgLen float64) map[int]float64 {
	scores := make(map[int]float64)
	n := len(docs)
	if n == 0 || avgLen == 0 {
		return scores
	}

	for _, tok := range queryTokens {
		d := df[tok]
		if d == 0 {
			continue
		}
		idf := math.Log(1.0 + (float64(n)-float64(d)+0.5)/(float64(d)+0.5))
		for i := range docs {
			freq := float64(docs[i].termFreq[tok])
			if freq == 0 {
				continue
			}
			norm := freq + bm25K1*(1.0-bm25B+bm25B*float64(docs[i].length)/avgLen)
			scores[i] += idf * (freq * (bm25K1 + 1.0)) / norm
		}
	}
	return scores
}

// denseScores computes TF-IDF cosine similarities between the query and
// every document vector. The query vector uses the same log-scaled
// weighting as the precomputed document vectors.
func denseScores(queryTokens []string, docs []document, df map[string]int) map[int]float64 {
	scores := make(map[int]float64)
	n := len(docs)
	if n == 0 {
		return scores
	}

	counts := make(map[string]int, len(queryTokens))
	for _, tok := range queryTokens {
		counts[tok]++
	}

	qvec := make(map[string]float64, len(counts))
	qnorm := 0.0
	for tok, c := range counts {
		w := tfidfWeight(c, df[tok], n)
		qvec[tok] = w
		qnorm += w * w
	}
	qnorm = math.Sqrt(qnorm)
	if qnorm == 0 {
		return scores
	}

	for i := range docs {
		if docs[i].norm == 0 {
			continue
		}
		dot := 0.0
		for tok, qw := range qvec {
			if dw, ok := docs[i].vector[tok]; ok {
				dot += qw * dw
			}
		}
		if dot > 0 {
			scores[i] = dot / (qnorm * docs[i].norm)
		}
	}
	return scores
}

// hybridScores composes BM25 and dense scores with the given dense
// weight. A document missing from either map contributes zero for that
// term rather than being an error.
func hybridScores(bm25, dense map[int]float64, denseWeight float64) map[int]float64 {
	scores := make(map[int]float64, len(bm25)+len(dense))
	for i, s := range bm25 {
		scores[i] += (1.0 - denseWeight) * s
	}
	for i, s := range dense {
		scores[i] += denseWeight * s
	}
	return scores
}
