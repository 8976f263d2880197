package seekdex

import "github.com/knowhub/seekdex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidQuery           = domain.ErrInvalidQuery
	ErrSearchUnavailable      = domain.ErrSearchUnavailable
	ErrDocumentNotFound       = domain.ErrDocumentNotFound
	ErrEmbeddingProviderError = domain.ErrEmbeddingProviderError
)
