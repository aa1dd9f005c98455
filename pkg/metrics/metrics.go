package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	SubmissionsReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_submissions_received_total",
			Help: "Total form submissions accepted into the store",
		},
		[]string{"kind"}, // kind: contact, quote, consultation
	)

	DeliveryAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "submission_delivery_attempts_total",
			Help: "Outbound submission delivery attempts by result",
		},
		[]string{"kind", "result"},
	)
)

func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func RecordSubmission(kind string) {
	SubmissionsReceived.WithLabelValues(kind).Inc()
}

func RecordDeliveryAttempt(kind string, ok bool) {
	result := "failed"
	if ok {
		result = "success"
	}
	DeliveryAttempts.WithLabelValues(kind, result).Inc()
}
