// Package chi exposes the search API over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/knowhub/seekdex/internal/domain"
	"github.com/knowhub/seekdex/internal/domain/search/request"
	healthuc "github.com/knowhub/seekdex/internal/usecase/health"
	searchuc "github.com/knowhub/seekdex/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the HTTP handlers for the search API.
type Server struct {
	search        *searchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		search: search,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, CodeInvalidQuery),
		sentinelHandler(domain.ErrSearchUnavailable, http.StatusServiceUnavailable, CodeSearchUnavailable),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, CodeEmbeddingProviderError),
	}
	return s
}

// Routes registers the API endpoints on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/search", s.SearchDocuments)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// SearchDocuments handles GET /search.
func (s *Server) SearchDocuments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if raw := q.Get("top_k"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, CodeInvalidQuery, "top_k must be an integer")
			return
		}
		limit = n
	}

	req, err := request.New(q.Get("q"), q.Get("type"), q.Get("category"), limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp, err := s.search.Search(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponseToDTO(resp))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:        string(report.Status),
		IndexLoaded:   report.IndexLoaded,
		DocumentCount: report.DocumentCount,
		Checks:        checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidQuery,
		domain.ErrSearchUnavailable,
		domain.ErrEmbeddingProviderError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			s.logger.Warn("request rejected", zap.Error(err))
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}

func searchResponseToDTO(resp searchuc.Response) SearchResponse {
	results := make([]SearchResultItem, len(resp.Results))
	for i, e := range resp.Results {
		results[i] = resultEntryToDTO(e)
	}

	return SearchResponse{
		Query:      resp.Query,
		Total:      resp.Total,
		SearchMode: string(resp.Mode),
		Results:    results,
	}
}

// resultEntryToDTO flattens an enriched result row, keeping only the metadata
// fields relevant for the document's type.
func resultEntryToDTO(e searchuc.Entry) SearchResultItem {
	item := SearchResultItem{
		DocID:       e.Metadata.ID,
		Type:        string(e.Metadata.Type),
		Score:       roundScore(e.Score),
		MatchReason: e.MatchReason,
	}

	switch e.Metadata.Type {
	case domain.TypeReport:
		item.Title = e.Metadata.Title
		item.Description = e.Metadata.Description
		item.URL = e.Metadata.URL
		item.Category = e.Metadata.Category
		item.Platform = e.Metadata.Platform
		item.Tags = e.Metadata.Tags
	case domain.TypeTrainingVideo:
		item.Title = e.Metadata.Title
		item.Description = e.Metadata.Description
		item.URL = e.Metadata.URL
	case domain.TypeGlossary:
		item.Term = e.Metadata.Term
		item.Definition = e.Metadata.Definition
	case domain.TypeFAQ:
		item.Question = e.Metadata.Question
		item.Answer = e.Metadata.Answer
	}

	return item
}

func roundScore(s float64) float64 {
	return math.Round(s*10000) / 10000
}
