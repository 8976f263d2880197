package search

import (
	"sort"

	"github.com/knowhub/seekdex/internal/domain/search/hit"
	"github.com/knowhub/seekdex/internal/domain/search/result"
	"github.com/knowhub/seekdex/internal/domain/search/weights"
)

// merged accumulates per-source normalized scores for one document before blending.
type merged struct {
	semantic *float64
	keyword  *float64
}

// Merge joins normalized hits from both providers by document identity and
// computes the weighted blend. A document seen by only one provider
// contributes zero for the missing source: it stays in the candidate set but
// is structurally disadvantaged against documents confirmed by both signals.
// Every distinct document id from either input appears in the output.
func Merge(semantic, keyword []hit.Hit, w weights.Profile) []result.BlendedResult {
	acc := make(map[string]*merged, len(semantic)+len(keyword))

	for _, h := range semantic {
		score := h.Score
		acc[h.ID] = &merged{semantic: &score}
	}
	for _, h := range keyword {
		score := h.Score
		if m, ok := acc[h.ID]; ok {
			m.keyword = &score
		} else {
			acc[h.ID] = &merged{keyword: &score}
		}
	}

	out := make([]result.BlendedResult, 0, len(acc))
	for id, m := range acc {
		var sem, kw float64
		if m.semantic != nil {
			sem = *m.semantic
		}
		if m.keyword != nil {
			kw = *m.keyword
		}
		blended := w.Semantic()*sem + w.Keyword()*kw
		out = append(out, result.New(id, blended, m.semantic, m.keyword))
	}
	return out
}

// Rank orders blended results by score descending and truncates to limit.
// Equal scores fall back to document id ascending so repeated runs over the
// same index generation produce identical orderings. The input slice is left
// untouched.
func Rank(results []result.BlendedResult, limit int) []result.BlendedResult {
	ranked := make([]result.BlendedResult, len(results))
	copy(ranked, results)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score() != ranked[j].Score() {
			return ranked[i].Score() > ranked[j].Score()
		}
		return ranked[i].ID() < ranked[j].ID()
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
