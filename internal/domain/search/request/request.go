// Package request holds the validated search query.
package request

import (
	"fmt"
	"strings"

	"github.com/knowhub/seekdex/internal/domain"
)

// Search parameter limits.
const (
	DefaultLimit = 10
	MinLimit     = 1
	MaxLimit     = 100
)

// Request is a validated search query.
type Request struct {
	query    string
	docType  string
	category string
	limit    int
}

// New validates and normalizes search parameters. The query text must be
// non-empty after trimming. A zero limit means DefaultLimit; anything outside
// [MinLimit, MaxLimit] is rejected. Validation failures wrap ErrInvalidQuery.
func New(query, docType, category string, limit int) (Request, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Request{}, fmt.Errorf("%w: query text is required", domain.ErrInvalidQuery)
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < MinLimit || limit > MaxLimit {
		return Request{}, fmt.Errorf(
			"%w: limit must be between %d and %d, got %d",
			domain.ErrInvalidQuery, MinLimit, MaxLimit, limit,
		)
	}

	return Request{
		query:    query,
		docType:  docType,
		category: category,
		limit:    limit,
	}, nil
}

// Query returns the trimmed search query text.
func (r *Request) Query() string { return r.query }

// DocType returns the document type filter ("" = no filter).
func (r *Request) DocType() string { return r.docType }

// Category returns the category filter ("" = no filter).
func (r *Request) Category() string { return r.category }

// Limit returns the requested result count.
func (r *Request) Limit() int { return r.limit }

// Filters returns the pushdown filters as tag field equalities. Both providers
// receive the same filters; the engine never post-filters.
func (r *Request) Filters() map[string]string {
	f := make(map[string]string, 2)
	if r.docType != "" {
		f["type"] = r.docType
	}
	if r.category != "" {
		f["category"] = r.category
	}
	if len(f) == 0 {
		return nil
	}
	return f
}
