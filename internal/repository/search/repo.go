// Package search adapts FT.SEARCH results into provider hits for the ranking engine.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/knowhub/seekdex/internal/db"
	"github.com/knowhub/seekdex/internal/domain"
	"github.com/knowhub/seekdex/internal/domain/search/hit"
)

// store is the consumer interface for search operations (ISP).
type store interface {
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
	SearchBM25(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
}

// IndexName is the FT index covering every indexed document.
const IndexName = domain.KeyPrefix + "docs:idx"

// docKeyPrefix prefixes every document hash key.
const docKeyPrefix = domain.KeyPrefix + "doc:"

// Repo implements the engine's VectorSearcher and KeywordSearcher contracts
// on top of a Redis FT index.
type Repo struct {
	store store
}

// New creates a search repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// SearchVector performs a KNN search and returns raw cosine-similarity hits.
func (r *Repo) SearchVector(
	ctx context.Context, vector []float32, filters map[string]string, topN int,
) ([]hit.Hit, error) {
	q := &db.KNNQuery{
		IndexName:    IndexName,
		Filters:      filters,
		Vector:       vector,
		K:            topN,
		ReturnFields: []string{"__vector_score"},
	}

	sr, err := r.store.SearchKNN(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search knn: %w", err)
	}

	return toHits(sr), nil
}

// SearchKeyword performs a BM25 search and returns raw lexical relevance hits.
func (r *Repo) SearchKeyword(
	ctx context.Context, query string, filters map[string]string, topN int,
) ([]hit.Hit, error) {
	q := &db.TextQuery{
		IndexName:    IndexName,
		Query:        query,
		Filters:      filters,
		TopK:         topN,
		ReturnFields: []string{"type"},
	}

	sr, err := r.store.SearchBM25(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search bm25: %w", err)
	}

	return toHits(sr), nil
}

// toHits converts db entries into provider hits, stripping the key prefix
// back to the document id. Raw scores pass through untouched: the normalizer
// owns rescaling.
func toHits(sr *db.SearchResult) []hit.Hit {
	if sr == nil || len(sr.Entries) == 0 {
		return nil
	}

	hits := make([]hit.Hit, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		hits = append(hits, hit.Hit{
			ID:    strings.TrimPrefix(entry.Key, docKeyPrefix),
			Score: entry.Score,
		})
	}
	return hits
}
