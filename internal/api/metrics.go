package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess   = "success"
	outcomeAppError  = "app_error"
	outcomeTransport = "transport_failure"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homearc_api_requests_total",
			Help: "Backend API calls by method and classified outcome.",
		},
		[]string{"method", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "homearc_api_request_duration_seconds",
			Help:    "Backend API call duration.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

func observeRequest(method, outcome string, elapsed time.Duration) {
	requestsTotal.WithLabelValues(method, outcome).Inc()
	requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
