package seekdex

import (
	"context"

	"github.com/knowhub/seekdex/internal/domain"
	"github.com/knowhub/seekdex/internal/domain/search/request"
)

// SearchOption narrows or sizes a search.
type SearchOption func(*searchParams)

type searchParams struct {
	docType  string
	category string
	limit    int
}

// WithDocType restricts results to one document type
// (report, training_video, glossary, faq).
func WithDocType(t string) SearchOption {
	return func(p *searchParams) { p.docType = t }
}

// WithCategory restricts results to one category tag.
func WithCategory(cat string) SearchOption {
	return func(p *searchParams) { p.category = cat }
}

// WithLimit caps the number of returned results (1..100, default 10).
func WithLimit(n int) SearchOption {
	return func(p *searchParams) { p.limit = n }
}

// Result is one ranked search hit with its document metadata.
type Result struct {
	DocID       string
	Type        string
	Score       float64
	MatchReason string
	Metadata    Metadata
}

// Metadata carries the stored document fields. Which fields are populated
// depends on the document type.
type Metadata struct {
	Title       string
	Description string
	URL         string
	Category    string
	Platform    string
	Tags        []string
	Term        string
	Definition  string
	Question    string
	Answer      string
}

// SearchResponse is the ranked outcome of one hybrid search.
type SearchResponse struct {
	Query      string
	Total      int
	SearchMode string
	Results    []Result
}

// Search runs a hybrid query and returns the blended, ranked results.
func (c *Client) Search(ctx context.Context, query string, opts ...SearchOption) (SearchResponse, error) {
	var p searchParams
	for _, o := range opts {
		o(&p)
	}

	req, err := request.New(query, p.docType, p.category, p.limit)
	if err != nil {
		return SearchResponse{}, err
	}

	resp, err := c.searchSvc.Search(c.opCtx(ctx), &req)
	if err != nil {
		return SearchResponse{}, err
	}

	results := make([]Result, len(resp.Results))
	for i, e := range resp.Results {
		results[i] = Result{
			DocID:       e.Metadata.ID,
			Type:        string(e.Metadata.Type),
			Score:       e.Score,
			MatchReason: e.MatchReason,
			Metadata:    metadataFromDomain(e.Metadata),
		}
	}

	return SearchResponse{
		Query:      resp.Query,
		Total:      resp.Total,
		SearchMode: string(resp.Mode),
		Results:    results,
	}, nil
}

func metadataFromDomain(m domain.Metadata) Metadata {
	return Metadata{
		Title:       m.Title,
		Description: m.Description,
		URL:         m.URL,
		Category:    m.Category,
		Platform:    m.Platform,
		Tags:        m.Tags,
		Term:        m.Term,
		Definition:  m.Definition,
		Question:    m.Question,
		Answer:      m.Answer,
	}
}
