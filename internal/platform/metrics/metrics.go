package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	SubmissionsCreated *prometheus.CounterVec
	ChatReplies        prometheus.Counter
	RequestDuration    *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		SubmissionsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "buildstone_submissions_created_total",
			Help: "Total number of persisted submissions by record kind",
		}, []string{"kind"}),
		ChatReplies: promauto.NewCounter(prometheus.CounterOpts{
			Name: "buildstone_chat_replies_total",
			Help: "Total number of chat messages answered",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "buildstone_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}

// RecordSubmission increments the per-kind submission counter.
func (m *Metrics) RecordSubmission(kind string) {
	m.SubmissionsCreated.WithLabelValues(kind).Inc()
}

// RecordChatReply increments the chat reply counter.
func (m *Metrics) RecordChatReply() {
	m.ChatReplies.Inc()
}
