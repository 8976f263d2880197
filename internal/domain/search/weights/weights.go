// Package weights maps query shapes to semantic/keyword blend profiles.
package weights

import (
	"fmt"

	"github.com/knowhub/seekdex/internal/domain/search/shape"
)

// Profile is a semantic/keyword weight pair. The two weights always sum to 1.0.
type Profile struct {
	semantic float64
	keyword  float64
}

// Semantic returns the weight applied to the vector similarity score.
func (p Profile) Semantic() float64 { return p.semantic }

// Keyword returns the weight applied to the lexical relevance score.
func (p Profile) Keyword() float64 { return p.keyword }

// ForShape resolves the fixed blend profile for a query shape. Acronyms lean
// heavily on exact keyword matching; longer natural language queries lean on
// semantic similarity. The shape enumeration is closed, so an unhandled value
// is a programming error and panics.
func ForShape(s shape.Shape) Profile {
	switch s {
	case shape.Acronym:
		return Profile{semantic: 0.2, keyword: 0.8}
	case shape.Short:
		return Profile{semantic: 0.4, keyword: 0.6}
	case shape.NaturalLanguage:
		return Profile{semantic: 0.7, keyword: 0.3}
	default:
		panic(fmt.Sprintf("no weight profile for query shape %q", s))
	}
}
