// Package hit holds the per-provider candidate types flowing into the blend.
package hit

// Source identifies which provider produced a hit.
type Source string

const (
	// Semantic marks hits from the vector similarity provider.
	Semantic Source = "semantic"
	// Keyword marks hits from the lexical relevance provider.
	Keyword Source = "keyword"
)

// Hit is a single candidate returned by one provider. Score is on the
// provider's own scale (cosine similarity, BM25, ...) until normalized.
type Hit struct {
	ID    string
	Score float64
}
