// Package metrics holds the prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, path and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	InvoicesFinalizedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "invoices_finalized_total",
			Help: "Invoices successfully finalized and persisted",
		},
	)

	RecognitionRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recognition_requests_total",
			Help: "Slip photo recognition calls by outcome",
		},
		[]string{"outcome"},
	)
)
