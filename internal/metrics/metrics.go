package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for the embedding provider and match pipeline.
var (
	EmbeddingRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "unimatch",
			Name:      "embedding_requests_total",
			Help:      "Total number of embedding provider requests",
		},
		[]string{"provider", "model", "status"},
	)

	EmbeddingRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "unimatch",
			Name:      "embedding_request_duration_seconds",
			Help:      "Embedding provider request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider", "model"},
	)

	EmbeddingTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "unimatch",
			Name:      "embedding_tokens_total",
			Help:      "Total embedding tokens consumed",
		},
		[]string{"provider", "model", "type"},
	)

	EmbeddingErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "unimatch",
			Name:      "embedding_errors_total",
			Help:      "Total embedding provider errors",
		},
		[]string{"provider", "model", "error_type"},
	)

	MatchChunksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "unimatch",
			Name:      "match_chunks_total",
			Help:      "Embedding sub-batch outcomes within match requests",
		},
		[]string{"status"}, // "success" / "error"
	)

	MatchQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "unimatch",
			Name:      "match_queries_total",
			Help:      "Per-query match outcomes",
		},
		[]string{"outcome"}, // "matched" / "no_match" / "embedding_failed"
	)
)

var registered bool

// Register registers the pipeline metrics. Must be called once from main.
func Register() {
	if registered {
		return
	}
	prometheus.MustRegister(EmbeddingRequestsTotal)
	prometheus.MustRegister(EmbeddingRequestDuration)
	prometheus.MustRegister(EmbeddingTokensTotal)
	prometheus.MustRegister(EmbeddingErrorsTotal)
	prometheus.MustRegister(MatchChunksTotal)
	prometheus.MustRegister(MatchQueriesTotal)
	registered = true
}
