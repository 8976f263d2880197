// Package search implements the hybrid ranking engine: query classification,
// weighted blending of vector and keyword candidates, deterministic ranking,
// and match explanations.
package search

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/knowhub/seekdex/internal/domain"
	"github.com/knowhub/seekdex/internal/domain/search/hit"
	"github.com/knowhub/seekdex/internal/domain/search/mode"
	"github.com/knowhub/seekdex/internal/domain/search/request"
	"github.com/knowhub/seekdex/internal/domain/search/shape"
	"github.com/knowhub/seekdex/internal/domain/search/weights"
	"github.com/knowhub/seekdex/internal/logger"
	"github.com/knowhub/seekdex/internal/metrics"
)

// CandidatePool is the per-provider candidate fetch size. Both providers are
// asked for this many hits regardless of the requested limit, so a document
// ranking well on one axis is not pushed out before blending.
const CandidatePool = 30

// Entry is one enriched row of a search response.
type Entry struct {
	Metadata    domain.Metadata
	Score       float64
	MatchReason string
}

// Response is the ranked outcome of one hybrid search.
type Response struct {
	Query   string
	Total   int
	Mode    mode.Mode
	Results []Entry
}

// Service is the hybrid ranking engine.
type Service struct {
	vectors  VectorSearcher
	keywords KeywordSearcher
	docs     DocumentReader
	embed    Embedder
	pool     int
}

// New creates a search service.
func New(vectors VectorSearcher, keywords KeywordSearcher, docs DocumentReader, embed Embedder) *Service {
	return &Service{
		vectors:  vectors,
		keywords: keywords,
		docs:     docs,
		embed:    embed,
		pool:     CandidatePool,
	}
}

// WithCandidatePool overrides the per-provider candidate fetch size.
func (s *Service) WithCandidatePool(n int) *Service {
	if n > 0 {
		s.pool = n
	}
	return s
}

// Search runs one hybrid query end to end: classify the query shape, resolve
// blend weights, fan out to both providers, then normalize, merge, rank,
// explain, and enrich. A single provider failure degrades the response mode;
// both failing yields ErrSearchUnavailable.
func (s *Service) Search(ctx context.Context, req *request.Request) (Response, error) {
	start := time.Now()
	log := logger.FromContext(ctx)

	shp := shape.Classify(req.Query())
	w := weights.ForShape(shp)

	semHits, kwHits, semErr, kwErr := s.fetchCandidates(ctx, req)

	if semErr != nil && kwErr != nil {
		return Response{}, fmt.Errorf("%w: semantic: %w; keyword: %w",
			domain.ErrSearchUnavailable, semErr, kwErr)
	}
	if semErr != nil {
		log.Warn("semantic branch failed, serving keyword-only", zap.Error(semErr))
		metrics.SearchProviderFailures.WithLabelValues(string(hit.Semantic)).Inc()
	}
	if kwErr != nil {
		log.Warn("keyword branch failed, serving semantic-only", zap.Error(kwErr))
		metrics.SearchProviderFailures.WithLabelValues(string(hit.Keyword)).Inc()
	}

	ranked := Rank(Merge(Normalize(semHits), Normalize(kwHits), w), req.Limit())

	entries := make([]Entry, 0, len(ranked))
	for i := range ranked {
		r := &ranked[i]
		meta, err := s.docs.Get(ctx, r.ID())
		if err != nil {
			if errors.Is(err, domain.ErrDocumentNotFound) {
				// Provider indexes can briefly reference documents absent from the
				// store around an index swap; drop the row rather than failing.
				log.Warn("ranked document missing from store", zap.String("doc_id", r.ID()))
				continue
			}
			return Response{}, fmt.Errorf("fetch metadata for %s: %w", r.ID(), err)
		}
		entries = append(entries, Entry{
			Metadata:    meta,
			Score:       r.Score(),
			MatchReason: Reason(r),
		})
	}

	var m mode.Mode
	switch {
	case semErr != nil:
		m = mode.Keyword
	case kwErr != nil:
		m = mode.Semantic
	default:
		m = mode.FromSources(len(semHits) > 0, len(kwHits) > 0)
	}

	metrics.SearchesTotal.WithLabelValues(string(m), string(shp)).Inc()
	metrics.SearchDuration.WithLabelValues(string(shp)).Observe(time.Since(start).Seconds())

	return Response{
		Query:   req.Query(),
		Total:   len(entries),
		Mode:    m,
		Results: entries,
	}, nil
}

// fetchCandidates runs both provider branches as a fork-join: two
// independently cancellable tasks joined before blending. Errors are returned
// per branch so the caller can degrade instead of aborting.
func (s *Service) fetchCandidates(
	ctx context.Context, req *request.Request,
) (semHits, kwHits []hit.Hit, semErr, kwErr error) {
	semCtx, cancelSem := context.WithCancel(ctx)
	defer cancelSem()
	kwCtx, cancelKw := context.WithCancel(ctx)
	defer cancelKw()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		semHits, semErr = s.searchSemantic(semCtx, req)
	}()

	go func() {
		defer wg.Done()
		kwHits, kwErr = s.searchKeyword(kwCtx, req)
	}()

	wg.Wait()
	return semHits, kwHits, semErr, kwErr
}

// searchSemantic embeds the query and runs the vector lookup. An embedding
// failure counts as a semantic branch failure.
func (s *Service) searchSemantic(ctx context.Context, req *request.Request) ([]hit.Hit, error) {
	embResult, err := s.embed.Embed(ctx, req.Query())
	if err != nil {
		return nil, fmt.Errorf("vectorize query: %w", err)
	}

	hits, err := s.vectors.SearchVector(ctx, embResult.Embedding, req.Filters(), s.pool)
	if err != nil {
		return nil, fmt.Errorf("search vector: %w", err)
	}
	return hits, nil
}

func (s *Service) searchKeyword(ctx context.Context, req *request.Request) ([]hit.Hit, error) {
	hits, err := s.keywords.SearchKeyword(ctx, req.Query(), req.Filters(), s.pool)
	if err != nil {
		return nil, fmt.Errorf("search keyword: %w", err)
	}
	return hits, nil
}
