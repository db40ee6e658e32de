// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestsInFlight tracks requests currently being served
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	// HTTPRequestSize measures HTTP request body size in bytes
	HTTPRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// HTTPResponseSize measures HTTP response body size in bytes
	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)
)

// Blog metrics track writes against the domain collections.
var (
	// DocumentsWrittenTotal counts successful writes by collection and operation
	DocumentsWrittenTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_documents_written_total",
			Help: "Total number of documents created, updated or deleted",
		},
		[]string{"collection", "operation"},
	)

	// ReferenceCheckFailuresTotal counts article writes rejected because the
	// category or author did not exist
	ReferenceCheckFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_reference_check_failures_total",
			Help: "Total number of article writes rejected by the category/author check",
		},
		[]string{"operation"},
	)

	// UpdatesWithoutMatchTotal counts article updates that matched no document
	UpdatesWithoutMatchTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "blog_article_updates_unmatched_total",
			Help: "Total number of article updates that matched no stored article",
		},
	)
)

// Store metrics track document store sessions and operations.
var (
	// StoreOperationDuration measures document store operations in seconds
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Document store operation duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"backend", "collection", "operation", "result"},
	)

	// StoreSessionsOpen tracks sessions currently held by requests
	StoreSessionsOpen = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "store_sessions_open",
			Help: "Number of document store sessions currently open",
		},
		[]string{"backend"},
	)

	// StoreSessionErrorsTotal counts failures to open or close a session
	StoreSessionErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_session_errors_total",
			Help: "Total number of failures opening or closing a store session",
		},
		[]string{"backend", "phase"},
	)

	// CircuitBreakerState is 0 closed, 1 half-open, 2 open
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"circuit"},
	)
)
