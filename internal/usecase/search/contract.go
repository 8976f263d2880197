package search

import (
	"context"

	"github.com/knowhub/seekdex/internal/domain"
	"github.com/knowhub/seekdex/internal/domain/search/hit"
)

// VectorSearcher retrieves candidates by embedding similarity.
type VectorSearcher interface {
	SearchVector(
		ctx context.Context, vector []float32, filters map[string]string, topN int,
	) ([]hit.Hit, error)
}

// KeywordSearcher retrieves candidates by lexical relevance.
type KeywordSearcher interface {
	SearchKeyword(
		ctx context.Context, query string, filters map[string]string, topN int,
	) ([]hit.Hit, error)
}

// DocumentReader fetches metadata for ranked documents.
type DocumentReader interface {
	Get(ctx context.Context, id string) (domain.Metadata, error)
}

// Embedder vectorizes query text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
