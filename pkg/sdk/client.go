package seekdex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	dbRedis "github.com/knowhub/seekdex/internal/db/redis"
	"github.com/knowhub/seekdex/internal/domain"
	logpkg "github.com/knowhub/seekdex/internal/logger"
	documentrepo "github.com/knowhub/seekdex/internal/repository/document"
	searchrepo "github.com/knowhub/seekdex/internal/repository/search"
	healthuc "github.com/knowhub/seekdex/internal/usecase/health"
	searchuc "github.com/knowhub/seekdex/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the seekdex SDK entry point.
type Client struct {
	store     *dbRedis.Store
	searchSvc *searchuc.Service
	healthSvc *healthuc.Service
	logger    *zap.Logger
}

// New creates a seekdex Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("seekdex: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})
	if err != nil {
		return nil, fmt.Errorf("seekdex: create store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("seekdex: database not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

func wireClient(store *dbRedis.Store, cfg *clientConfig) *Client {
	searchRepo := searchrepo.New(store)
	docRepo := documentrepo.New(store)

	var embedder domain.Embedder = &noopEmbedder{}
	if cfg.embedder != nil {
		embedder = &embedderAdapter{inner: cfg.embedder}
	}

	searchSvc := searchuc.New(searchRepo, searchRepo, docRepo, embedder).
		WithCandidatePool(cfg.candidatePool)

	var embChecker healthuc.EmbeddingChecker
	if ea, ok := embedder.(*embedderAdapter); ok {
		embChecker = ea
	}
	healthSvc := healthuc.New(store, docRepo, embChecker)

	return &Client{
		store:     store,
		searchSvc: searchSvc,
		healthSvc: healthSvc,
		logger:    cfg.logger,
	}
}

// Close releases the database connection.
func (c *Client) Close() {
	c.store.Close()
}

// opCtx attaches the client logger so engine warnings surface to the caller.
func (c *Client) opCtx(ctx context.Context) context.Context {
	if c.logger == nil {
		return ctx
	}
	return logpkg.ContextWithLogger(ctx, c.logger)
}

// embedderAdapter bridges the public Embedder to the domain interface.
type embedderAdapter struct {
	inner Embedder
}

func (a *embedderAdapter) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	res, err := a.inner.Embed(ctx, text)
	if err != nil {
		return domain.EmbeddingResult{}, err
	}
	return domain.EmbeddingResult{
		Embedding:    res.Embedding,
		PromptTokens: res.PromptTokens,
		TotalTokens:  res.TotalTokens,
	}, nil
}

// HealthCheck probes the wrapped embedder when it supports probing.
func (a *embedderAdapter) HealthCheck(ctx context.Context) error {
	if hc, ok := a.inner.(interface{ HealthCheck(context.Context) error }); ok {
		return hc.HealthCheck(ctx)
	}
	return nil
}

// noopEmbedder fails every call, degrading searches to keyword-only mode.
type noopEmbedder struct{}

func (*noopEmbedder) Embed(context.Context, string) (domain.EmbeddingResult, error) {
	return domain.EmbeddingResult{}, fmt.Errorf("%w: no embedder configured", domain.ErrEmbeddingProviderError)
}
