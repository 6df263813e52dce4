package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Matching latency (milliseconds) per strategy
	MatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scope_match_duration_ms",
			Help:    "Service matching duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10), // 1ms to ~1s
		},
		[]string{"strategy"},
	)

	// Catalog fetch latency (milliseconds)
	CatalogFetchLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_fetch_latency_ms",
			Help:    "Catalog provider fetch latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10), // 10ms to ~10s
		},
		[]string{"source", "status"},
	)

	// LLM call latency (milliseconds)
	LLMCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_call_latency_ms",
			Help:    "LLM chat completion latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10), // 100ms to ~100s
		},
		[]string{"status"},
	)

	// WBS generation counter
	WBSGeneratedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wbs_generated_count",
			Help: "Total number of work breakdown structures generated",
		},
		[]string{"status"}, // status: success, empty
	)

	// Clarifying-question round counter
	QuestionRoundCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scope_question_round_count",
			Help: "Total number of clarifying-question rounds issued",
		},
		[]string{"outcome"}, // outcome: asked, capped, proceeded
	)

	// Outbox dispatch counter
	OutboxDispatchCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outbox_dispatch_count",
			Help: "Total number of outbox events dispatched",
		},
		[]string{"event_type", "status"}, // status: success, retry, dead
	)

	// DB query latency (seconds)
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"operation", "table"},
	)
)

// RecordHTTPRequestDuration records HTTP request latency.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordMatchDuration records one matching pass for the given strategy.
func RecordMatchDuration(strategy string, duration time.Duration) {
	MatchDuration.WithLabelValues(strategy).Observe(float64(duration.Milliseconds()))
}

// RecordCatalogFetchLatency records one catalog fetch attempt.
func RecordCatalogFetchLatency(source, status string, duration time.Duration) {
	CatalogFetchLatency.WithLabelValues(source, status).Observe(float64(duration.Milliseconds()))
}

// RecordLLMCallLatency records one chat completion call.
func RecordLLMCallLatency(status string, duration time.Duration) {
	LLMCallLatency.WithLabelValues(status).Observe(float64(duration.Milliseconds()))
}

// RecordWBSGenerated counts one WBS generation.
func RecordWBSGenerated(status string) {
	WBSGeneratedCount.WithLabelValues(status).Inc()
}

// RecordQuestionRound counts one clarifying-question decision.
func RecordQuestionRound(outcome string) {
	QuestionRoundCount.WithLabelValues(outcome).Inc()
}

// RecordOutboxDispatch counts one outbox dispatch attempt.
func RecordOutboxDispatch(eventType, status string) {
	OutboxDispatchCount.WithLabelValues(eventType, status).Inc()
}

// RecordDBQueryDuration records one database query.
func RecordDBQueryDuration(operation, table string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}
