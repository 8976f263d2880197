package search

import (
	"fmt"

	"github.com/knowhub/seekdex/internal/domain/search/result"
)

// Match strength thresholds on normalized per-source scores.
const (
	strongThreshold   = 0.7
	moderateThreshold = 0.4
)

func strength(score float64) string {
	switch {
	case score >= strongThreshold:
		return "strong"
	case score >= moderateThreshold:
		return "moderate"
	default:
		return "weak"
	}
}

// Reason derives the human-readable explanation of why a document ranked.
// The merger guarantees at least one contributing source per result, so an
// empty source set is a programming error and panics.
func Reason(r *result.BlendedResult) string {
	sem, hasSem := r.SemanticScore()
	kw, hasKw := r.KeywordScore()

	switch {
	case hasSem && hasKw:
		return fmt.Sprintf("%s semantic match + %s keyword match", strength(sem), strength(kw))
	case hasSem:
		return fmt.Sprintf("%s semantic match only", strength(sem))
	case hasKw:
		return fmt.Sprintf("%s keyword match only", strength(kw))
	default:
		panic("blended result without contributing sources")
	}
}
