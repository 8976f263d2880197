package search

import "github.com/knowhub/seekdex/internal/domain/search/hit"

// Normalize rescales one provider's raw scores onto [0,1] with linear min-max
// scaling. The two providers score on incomparable scales (cosine similarity
// vs BM25), so each batch is normalized independently before blending.
//
// A uniform batch (max == min) normalizes to 1.0 for every hit: the batch is
// treated as uniformly relevant rather than dividing by zero. Empty input
// yields empty output.
func Normalize(hits []hit.Hit) []hit.Hit {
	if len(hits) == 0 {
		return nil
	}

	minScore, maxScore := hits[0].Score, hits[0].Score
	for _, h := range hits[1:] {
		if h.Score < minScore {
			minScore = h.Score
		}
		if h.Score > maxScore {
			maxScore = h.Score
		}
	}

	span := maxScore - minScore
	out := make([]hit.Hit, len(hits))
	for i, h := range hits {
		normalized := 1.0
		if span > 0 {
			normalized = (h.Score - minScore) / span
		}
		out[i] = hit.Hit{ID: h.ID, Score: normalized}
	}
	return out
}
