package chi

// ErrorCode classifies API errors for clients.
type ErrorCode string

const (
	CodeInvalidQuery           ErrorCode = "invalid_query"
	CodeSearchUnavailable      ErrorCode = "search_unavailable"
	CodeEmbeddingProviderError ErrorCode = "embedding_provider_error"
	CodeUnauthorized           ErrorCode = "unauthorized"
	CodeInternalError          ErrorCode = "internal_error"
)

// ErrorResponse is the JSON body returned for every API error.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// SearchResponse is the JSON body for GET /search.
type SearchResponse struct {
	Query      string             `json:"query"`
	Total      int                `json:"total"`
	SearchMode string             `json:"search_mode"`
	Results    []SearchResultItem `json:"results"`
}

// SearchResultItem is one ranked row. Type-specific metadata fields are
// omitted when empty, so a glossary row carries only term and definition.
type SearchResultItem struct {
	DocID       string  `json:"doc_id"`
	Type        string  `json:"type"`
	Score       float64 `json:"score"`
	MatchReason string  `json:"match_reason"`

	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	Category    string   `json:"category,omitempty"`
	Platform    string   `json:"platform,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Term        string   `json:"term,omitempty"`
	Definition  string   `json:"definition,omitempty"`
	Question    string   `json:"question,omitempty"`
	Answer      string   `json:"answer,omitempty"`
}

// HealthResponse is the JSON body for GET /health.
type HealthResponse struct {
	Status        string            `json:"status"`
	IndexLoaded   bool              `json:"index_loaded"`
	DocumentCount int               `json:"document_count"`
	Checks        map[string]string `json:"checks"`
}
