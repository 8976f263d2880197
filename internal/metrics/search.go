package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seekdex",
			Name:      "searches_total",
			Help:      "Total number of searches by response mode and query shape",
		},
		[]string{"mode", "shape"},
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "seekdex",
			Name:      "search_duration_seconds",
			Help:      "End-to-end search duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"shape"},
	)

	SearchProviderFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seekdex",
			Name:      "search_provider_failures_total",
			Help:      "Provider branch failures tolerated as degraded responses",
		},
		[]string{"source"}, // "semantic" / "keyword"
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchProviderFailures)
	searchMetricsRegistered = true
}
