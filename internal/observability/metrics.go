// Package observability provides metrics and tracing.
package observability

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mindease_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// EnrichmentLookups records the number of distinct author lookups per
	// enrichment fan-out.
	EnrichmentLookups = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mindease_enrichment_lookups_per_call",
		Help:    "Distinct user lookups performed per enrichment fan-out",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
	})

	// EnrichmentFailures counts enrichment fan-outs that failed atomically.
	EnrichmentFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mindease_enrichment_failures_total",
		Help: "Total number of enrichment fan-outs that failed",
	})
)

var (
	httpMetricsOnce sync.Once
	httpMetrics     *fiberprometheus.FiberPrometheus
)

// NewHTTPMetrics creates the Prometheus middleware for HTTP request metrics.
// The underlying collectors register in the default registry exactly once,
// so repeated server construction (tests) shares a single instance.
func NewHTTPMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	httpMetricsOnce.Do(func() {
		httpMetrics = fiberprometheus.New(serviceName)
	})
	return httpMetrics
}
