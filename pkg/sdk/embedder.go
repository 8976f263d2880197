package seekdex

import "context"

// Embedder converts text to vector embeddings. Without one, only the
// keyword branch of hybrid search is available.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// EmbeddingResult carries the embedding vector and token counts.
type EmbeddingResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}
