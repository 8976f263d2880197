// Package result holds the blended per-document outcome of a hybrid search.
package result

import "github.com/knowhub/seekdex/internal/domain/search/hit"

// BlendedResult is one document's merged standing across both providers.
// Each source has its own optional normalized score slot; a nil slot means
// that provider did not return the document. At least one slot is always set.
type BlendedResult struct {
	id       string
	blended  float64
	semantic *float64
	keyword  *float64
}

// New creates a blended result. semantic and keyword are nil for sources that
// did not return the document.
func New(id string, blended float64, semantic, keyword *float64) BlendedResult {
	return BlendedResult{id: id, blended: blended, semantic: semantic, keyword: keyword}
}

// ID returns the document identifier.
func (r *BlendedResult) ID() string { return r.id }

// Score returns the blended score in [0,1].
func (r *BlendedResult) Score() float64 { return r.blended }

// SemanticScore returns the normalized semantic score and whether the
// semantic provider contributed.
func (r *BlendedResult) SemanticScore() (float64, bool) {
	if r.semantic == nil {
		return 0, false
	}
	return *r.semantic, true
}

// KeywordScore returns the normalized keyword score and whether the keyword
// provider contributed.
func (r *BlendedResult) KeywordScore() (float64, bool) {
	if r.keyword == nil {
		return 0, false
	}
	return *r.keyword, true
}

// Sources lists the providers that returned the document.
func (r *BlendedResult) Sources() []hit.Source {
	sources := make([]hit.Source, 0, 2)
	if r.semantic != nil {
		sources = append(sources, hit.Semantic)
	}
	if r.keyword != nil {
		sources = append(sources, hit.Keyword)
	}
	return sources
}
