package search

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/knowhub/seekdex/internal/domain"
	"github.com/knowhub/seekdex/internal/domain/search/hit"
	"github.com/knowhub/seekdex/internal/domain/search/mode"
	"github.com/knowhub/seekdex/internal/domain/search/request"
)

// --- Mocks ---

type mockVectors struct {
	hits        []hit.Hit
	err         error
	called      bool
	lastFilters map[string]string
	lastTopN    int
}

func (m *mockVectors) SearchVector(
	_ context.Context, _ []float32, filters map[string]string, topN int,
) ([]hit.Hit, error) {
	m.called = true
	m.lastFilters = filters
	m.lastTopN = topN
	return m.hits, m.err
}

type mockKeywords struct {
	hits        []hit.Hit
	err         error
	called      bool
	lastQuery   string
	lastFilters map[string]string
}

func (m *mockKeywords) SearchKeyword(
	_ context.Context, query string, filters map[string]string, _ int,
) ([]hit.Hit, error) {
	m.called = true
	m.lastQuery = query
	m.lastFilters = filters
	return m.hits, m.err
}

type mockDocs struct {
	docs map[string]domain.Metadata
	err  error
}

func (m *mockDocs) Get(_ context.Context, id string) (domain.Metadata, error) {
	if m.err != nil {
		return domain.Metadata{}, m.err
	}
	meta, ok := m.docs[id]
	if !ok {
		return domain.Metadata{}, domain.ErrDocumentNotFound
	}
	return meta, nil
}

type mockEmbedder struct {
	vec    []float32
	err    error
	called bool
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	m.called = true
	return domain.EmbeddingResult{Embedding: m.vec}, m.err
}

// --- Helpers ---

func docsFor(ids ...string) *mockDocs {
	docs := make(map[string]domain.Metadata, len(ids))
	for _, id := range ids {
		docs[id] = domain.Metadata{ID: id, Type: domain.TypeReport, Title: "Report " + id}
	}
	return &mockDocs{docs: docs}
}

func mustRequest(t *testing.T, query string, limit int) request.Request {
	t.Helper()
	req, err := request.New(query, "", "", limit)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return req
}

func newService(v *mockVectors, k *mockKeywords, d *mockDocs, e *mockEmbedder) *Service {
	return New(v, k, d, e)
}

// --- Tests ---

func TestSearch_HybridBlend(t *testing.T) {
	// Natural language query: semantic 0.7, keyword 0.3. Doc "a" tops both
	// batches, doc "b" only semantic, doc "c" only keyword.
	vectors := &mockVectors{hits: []hit.Hit{
		{ID: "a", Score: 1.0},
		{ID: "b", Score: 0.0},
	}}
	keywords := &mockKeywords{hits: []hit.Hit{
		{ID: "a", Score: 10.0},
		{ID: "c", Score: 0.0},
	}}
	svc := newService(vectors, keywords, docsFor("a", "b", "c"), &mockEmbedder{vec: []float32{1, 2}})

	req := mustRequest(t, "how do I rate prospects", 0)
	resp, err := svc.Search(context.Background(), &req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if resp.Mode != mode.Hybrid {
		t.Errorf("Mode = %q, want hybrid", resp.Mode)
	}
	if resp.Total != 3 {
		t.Fatalf("Total = %d, want 3", resp.Total)
	}
	// a: 0.7*1.0 + 0.3*1.0 = 1.0, confirmed by both signals.
	if resp.Results[0].Metadata.ID != "a" {
		t.Errorf("top result = %q, want a", resp.Results[0].Metadata.ID)
	}
	if math.Abs(resp.Results[0].Score-1.0) > 1e-9 {
		t.Errorf("top score = %v, want 1.0", resp.Results[0].Score)
	}
	if resp.Results[0].MatchReason != "strong semantic match + strong keyword match" {
		t.Errorf("MatchReason = %q", resp.Results[0].MatchReason)
	}
}

func TestSearch_KeywordOnlyDocStructurallyDisadvantaged(t *testing.T) {
	// A keyword-only doc normalized to 0.9 under natural language weights
	// blends to 0.3*0.9 = 0.27 because the semantic side contributes zero.
	keywords := &mockKeywords{hits: []hit.Hit{
		{ID: "top", Score: 10.0},
		{ID: "solo", Score: 9.0},
		{ID: "floor", Score: 0.0},
	}}
	svc := newService(&mockVectors{}, keywords, docsFor("top", "solo", "floor"), &mockEmbedder{})

	req := mustRequest(t, "quarterly donor engagement summary", 0)
	resp, err := svc.Search(context.Background(), &req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	var solo *Entry
	for i := range resp.Results {
		if resp.Results[i].Metadata.ID == "solo" {
			solo = &resp.Results[i]
		}
	}
	if solo == nil {
		t.Fatalf("solo not in results: %+v", resp.Results)
	}
	if math.Abs(solo.Score-0.27) > 1e-9 {
		t.Errorf("solo score = %v, want 0.27", solo.Score)
	}
	if solo.MatchReason != "strong keyword match only" {
		t.Errorf("MatchReason = %q", solo.MatchReason)
	}
}

func TestSearch_AcronymWeighting(t *testing.T) {
	// Acronym queries weight keyword 0.8. Doc "kw" ranked only by keyword
	// must beat doc "sem" ranked only by semantic at equal normalized score.
	vectors := &mockVectors{hits: []hit.Hit{
		{ID: "sem", Score: 1.0},
		{ID: "semfloor", Score: 0.0},
	}}
	keywords := &mockKeywords{hits: []hit.Hit{
		{ID: "kw", Score: 5.0},
		{ID: "kwfloor", Score: 0.0},
	}}
	svc := newService(vectors, keywords, docsFor("sem", "semfloor", "kw", "kwfloor"), &mockEmbedder{})

	req := mustRequest(t, "WPU", 0)
	resp, err := svc.Search(context.Background(), &req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if resp.Results[0].Metadata.ID != "kw" {
		t.Errorf("top result = %q, want kw", resp.Results[0].Metadata.ID)
	}
	// kw: 0.8*1.0 = 0.8; sem: 0.2*1.0 = 0.2
	if math.Abs(resp.Results[0].Score-0.8) > 1e-9 {
		t.Errorf("kw score = %v, want 0.8", resp.Results[0].Score)
	}
}

func TestSearch_SemanticBranchFailureDegrades(t *testing.T) {
	vectors := &mockVectors{err: errors.New("index offline")}
	keywords := &mockKeywords{hits: []hit.Hit{{ID: "a", Score: 1.0}}}
	svc := newService(vectors, keywords, docsFor("a"), &mockEmbedder{})

	req := mustRequest(t, "lapsed donors", 0)
	resp, err := svc.Search(context.Background(), &req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if resp.Mode != mode.Keyword {
		t.Errorf("Mode = %q, want keyword", resp.Mode)
	}
	if resp.Total != 1 {
		t.Errorf("Total = %d, want 1", resp.Total)
	}
}

func TestSearch_EmbedFailureIsSemanticFailure(t *testing.T) {
	keywords := &mockKeywords{hits: []hit.Hit{{ID: "a", Score: 1.0}}}
	vectors := &mockVectors{}
	embed := &mockEmbedder{err: domain.ErrEmbeddingProviderError}
	svc := newService(vectors, keywords, docsFor("a"), embed)

	req := mustRequest(t, "lapsed donors", 0)
	resp, err := svc.Search(context.Background(), &req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if resp.Mode != mode.Keyword {
		t.Errorf("Mode = %q, want keyword", resp.Mode)
	}
	if vectors.called {
		t.Error("vector search ran without an embedding")
	}
}

func TestSearch_KeywordBranchFailureDegrades(t *testing.T) {
	vectors := &mockVectors{hits: []hit.Hit{{ID: "a", Score: 1.0}}}
	keywords := &mockKeywords{err: errors.New("ft module missing")}
	svc := newService(vectors, keywords, docsFor("a"), &mockEmbedder{})

	req := mustRequest(t, "lapsed donors", 0)
	resp, err := svc.Search(context.Background(), &req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if resp.Mode != mode.Semantic {
		t.Errorf("Mode = %q, want semantic", resp.Mode)
	}
}

func TestSearch_BothBranchesFailing(t *testing.T) {
	vectors := &mockVectors{err: errors.New("index offline")}
	keywords := &mockKeywords{err: errors.New("ft module missing")}
	svc := newService(vectors, keywords, docsFor(), &mockEmbedder{})

	req := mustRequest(t, "lapsed donors", 0)
	_, err := svc.Search(context.Background(), &req)
	if !errors.Is(err, domain.ErrSearchUnavailable) {
		t.Errorf("error = %v, want ErrSearchUnavailable", err)
	}
}

func TestSearch_EmptyMatchesStayHybrid(t *testing.T) {
	svc := newService(&mockVectors{}, &mockKeywords{}, docsFor(), &mockEmbedder{})

	req := mustRequest(t, "nothing matches this", 0)
	resp, err := svc.Search(context.Background(), &req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if resp.Mode != mode.Hybrid {
		t.Errorf("Mode = %q, want hybrid (both providers consulted)", resp.Mode)
	}
	if resp.Total != 0 || len(resp.Results) != 0 {
		t.Errorf("Total = %d, Results = %v, want empty", resp.Total, resp.Results)
	}
}

func TestSearch_MissingDocumentDropped(t *testing.T) {
	vectors := &mockVectors{hits: []hit.Hit{
		{ID: "kept", Score: 1.0},
		{ID: "ghost", Score: 0.5},
	}}
	svc := newService(vectors, &mockKeywords{}, docsFor("kept"), &mockEmbedder{})

	req := mustRequest(t, "stale index entry", 0)
	resp, err := svc.Search(context.Background(), &req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if resp.Total != 1 || resp.Results[0].Metadata.ID != "kept" {
		t.Errorf("results = %+v, want only kept", resp.Results)
	}
}

func TestSearch_MetadataFetchErrorPropagates(t *testing.T) {
	vectors := &mockVectors{hits: []hit.Hit{{ID: "a", Score: 1.0}}}
	docs := &mockDocs{err: errors.New("connection reset")}
	svc := newService(vectors, &mockKeywords{}, docs, &mockEmbedder{})

	req := mustRequest(t, "broken store", 0)
	if _, err := svc.Search(context.Background(), &req); err == nil {
		t.Fatal("expected error from metadata fetch")
	}
}

func TestSearch_LimitTruncates(t *testing.T) {
	vectors := &mockVectors{hits: []hit.Hit{
		{ID: "a", Score: 3.0},
		{ID: "b", Score: 2.0},
		{ID: "c", Score: 1.0},
	}}
	svc := newService(vectors, &mockKeywords{}, docsFor("a", "b", "c"), &mockEmbedder{})

	req := mustRequest(t, "top two only", 2)
	resp, err := svc.Search(context.Background(), &req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if resp.Total != 2 {
		t.Errorf("Total = %d, want 2", resp.Total)
	}
}

func TestSearch_FiltersReachBothProviders(t *testing.T) {
	vectors := &mockVectors{}
	keywords := &mockKeywords{}
	svc := newService(vectors, keywords, docsFor(), &mockEmbedder{})

	req, err := request.New("annual fund", "report", "fundraising", 0)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	if _, err := svc.Search(context.Background(), &req); err != nil {
		t.Fatalf("Search: %v", err)
	}

	want := map[string]string{"type": "report", "category": "fundraising"}
	if !reflect.DeepEqual(vectors.lastFilters, want) {
		t.Errorf("vector filters = %v, want %v", vectors.lastFilters, want)
	}
	if !reflect.DeepEqual(keywords.lastFilters, want) {
		t.Errorf("keyword filters = %v, want %v", keywords.lastFilters, want)
	}
}

func TestSearch_CandidatePoolOverride(t *testing.T) {
	vectors := &mockVectors{}
	svc := newService(vectors, &mockKeywords{}, docsFor(), &mockEmbedder{}).WithCandidatePool(7)

	req := mustRequest(t, "pool size", 0)
	if _, err := svc.Search(context.Background(), &req); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if vectors.lastTopN != 7 {
		t.Errorf("topN = %d, want 7", vectors.lastTopN)
	}
}

func TestSearch_Deterministic(t *testing.T) {
	vectors := &mockVectors{hits: []hit.Hit{
		{ID: "b", Score: 1.0},
		{ID: "a", Score: 1.0},
		{ID: "c", Score: 1.0},
	}}
	svc := newService(vectors, &mockKeywords{}, docsFor("a", "b", "c"), &mockEmbedder{})

	var orders [][]string
	for i := 0; i < 3; i++ {
		req := mustRequest(t, "tie break run", 0)
		resp, err := svc.Search(context.Background(), &req)
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		ids := make([]string, len(resp.Results))
		for j, e := range resp.Results {
			ids[j] = e.Metadata.ID
		}
		orders = append(orders, ids)
	}

	want := []string{"a", "b", "c"}
	for i, got := range orders {
		if !reflect.DeepEqual(got, want) {
			t.Errorf("run %d: order = %v, want %v", i, got, want)
		}
	}
}
