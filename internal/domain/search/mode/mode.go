// Package mode defines the response-level indicator of which sources contributed.
package mode

// Mode reports which source(s) actually contributed candidates to a response.
type Mode string

// Search mode constants.
const (
	// Hybrid means both providers contributed candidates.
	Hybrid   Mode = "hybrid"
	Semantic Mode = "semantic"
	Keyword  Mode = "keyword"
)

// FromSources derives the mode from whether each provider returned candidates.
// When neither returned anything the mode stays hybrid: both providers were
// consulted, the query simply matched nothing.
func FromSources(hasSemantic, hasKeyword bool) Mode {
	switch {
	case hasSemantic && !hasKeyword:
		return Semantic
	case hasKeyword && !hasSemantic:
		return Keyword
	default:
		return Hybrid
	}
}
