// Package health aggregates component health checks into one report.
package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results. IndexLoaded is true when the
// serving index answered the document count probe; DocumentCount is only
// meaningful when it did.
type Report struct {
	Status        Status
	Checks        map[string]CheckResult
	IndexLoaded   bool
	DocumentCount int
}

// Service coordinates health checks.
type Service struct {
	db        DBPinger
	docs      DocumentCounter
	embedding EmbeddingChecker
}

// New creates a Service. embedding can be nil.
func New(db DBPinger, docs DocumentCounter, embedding EmbeddingChecker) *Service {
	return &Service{db: db, docs: docs, embedding: embedding}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if err := s.db.Ping(ctx); err != nil {
		checks["database"] = CheckError
	} else {
		checks["database"] = CheckOK
	}

	var indexLoaded bool
	var count int
	if n, err := s.docs.Count(ctx); err != nil {
		checks["index"] = CheckError
	} else {
		checks["index"] = CheckOK
		indexLoaded = true
		count = n
	}

	if s.embedding != nil {
		if err := s.embedding.HealthCheck(ctx); err != nil {
			checks["embedding"] = CheckError
		} else {
			checks["embedding"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{
		Status:        status,
		Checks:        checks,
		IndexLoaded:   indexLoaded,
		DocumentCount: count,
	}
}
