package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "learnrec"

// Recommendation Prometheus metrics.
var (
	RecommendRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommend_requests_total",
			Help:      "Total number of recommendation requests",
		},
		[]string{"mode", "outcome"},
	)

	RecommendDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommend_duration_seconds",
			Help:      "Recommendation duration in seconds, lookups included",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"mode"},
	)

	RecommendResultSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommend_result_size",
			Help:      "Number of courses returned per recommendation",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		},
		[]string{"mode"},
	)

	RecommendFallbackTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommend_fallback_total",
			Help:      "Learner recommendations served from the popularity fallback",
		},
	)
)

var recommendOnce sync.Once

// RegisterRecommendMetrics registers the recommendation collectors. Repeated calls are no-ops.
func RegisterRecommendMetrics() {
	recommendOnce.Do(func() {
		prometheus.MustRegister(RecommendRequestsTotal, RecommendDuration, RecommendResultSize, RecommendFallbackTotal)
	})
}
