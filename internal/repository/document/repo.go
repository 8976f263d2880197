// Package document reads document metadata from the document store.
package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/knowhub/seekdex/internal/domain"
)

// store is the consumer interface for document reads (ISP).
type store interface {
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}

// docKeyPrefix prefixes every document hash key.
const docKeyPrefix = domain.KeyPrefix + "doc:"

// indexName matches repository/search.IndexName; duplicated here so the
// package stays free of cross-repository imports.
const indexName = domain.KeyPrefix + "docs:idx"

// Repo reads document metadata by id.
type Repo struct {
	store store
}

// New creates a document repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Get fetches document metadata. A missing hash maps to ErrDocumentNotFound.
func (r *Repo) Get(ctx context.Context, id string) (domain.Metadata, error) {
	fields, err := r.store.HGetAll(ctx, docKeyPrefix+id)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("get document %s: %w", id, err)
	}
	if len(fields) == 0 {
		return domain.Metadata{}, fmt.Errorf("document %s: %w", id, domain.ErrDocumentNotFound)
	}

	return metadataFromFields(id, fields), nil
}

// Count returns the number of indexed documents.
func (r *Repo) Count(ctx context.Context) (int, error) {
	count, err := r.store.SearchCount(ctx, indexName, "*")
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return count, nil
}

// metadataFromFields maps flat hash fields onto the typed metadata struct.
// Unknown fields are ignored so index schema additions stay backward compatible.
func metadataFromFields(id string, fields map[string]string) domain.Metadata {
	meta := domain.Metadata{
		ID:          id,
		Type:        domain.DocType(fields["type"]),
		Title:       fields["title"],
		Description: fields["description"],
		URL:         fields["url"],
		Category:    fields["category"],
		Platform:    fields["platform"],
		Term:        fields["term"],
		Definition:  fields["definition"],
		Question:    fields["question"],
		Answer:      fields["answer"],
	}

	if tags := fields["tags"]; tags != "" {
		meta.Tags = strings.Split(tags, ",")
	}

	return meta
}
