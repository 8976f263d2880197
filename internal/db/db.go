// Package db defines the storage facade contracts consumed by the repositories.
package db

import (
	"context"
	"time"
)

// Store is the database facade combining all sub-interfaces. Consumers depend
// on the narrow sub-interfaces, never on Store directly.
type Store interface {
	Pinger
	KVStore
	HashReader
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVStore provides simple key-value operations (embedding cache).
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// HashReader reads flat hash documents.
type HashReader interface {
	HGetAll(ctx context.Context, key string) (map[string]string, error)
}

// Searcher provides search operations over FT indexes.
type Searcher interface {
	SearchKNN(ctx context.Context, q *KNNQuery) (*SearchResult, error)
	SearchBM25(ctx context.Context, q *TextQuery) (*SearchResult, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}
