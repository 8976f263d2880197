package seekdex

import "context"

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status        string            // "healthy", "degraded"
	IndexLoaded   bool              // search index reachable
	DocumentCount int               // indexed documents
	Checks        map[string]string // component -> "ok"/"error"
}

// Health checks the health of all system components.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(c.opCtx(ctx))
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status:        string(report.Status),
		IndexLoaded:   report.IndexLoaded,
		DocumentCount: report.DocumentCount,
		Checks:        checks,
	}
}
