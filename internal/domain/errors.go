package domain

import "errors"

var (
	// ErrInvalidQuery signals a malformed search request (empty text, limit out of range).
	ErrInvalidQuery = errors.New("invalid query")
	// ErrSearchUnavailable signals that both search providers failed.
	ErrSearchUnavailable = errors.New("search unavailable")
	// ErrDocumentNotFound signals a missing document in the document store.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
)
