package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionWrites  *prometheus.CounterVec
	analyticsRequests  *prometheus.CounterVec
	analyticsDuration  *prometheus.HistogramVec
	authEvents         *prometheus.CounterVec
	storeErrors        prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionWrites: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_writes_total",
				Help: "Total number of transaction create/update/delete operations",
			},
			[]string{"operation", "type"},
		),
		analyticsRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_requests_total",
				Help: "Total number of analytics view computations",
			},
			[]string{"view"},
		),
		analyticsDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "analytics_duration_milliseconds",
				Help:    "Analytics computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
			},
			[]string{"view"},
		),
		authEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_events_total",
				Help: "Total number of authentication events by outcome",
			},
			[]string{"event", "outcome"},
		),
		storeErrors: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "record_store_errors_total",
				Help: "Total number of record store failures",
			},
		),
	}
}

func (m *PrometheusMetrics) RecordTransactionWrite(operation, transactionType string) {
	m.transactionWrites.WithLabelValues(operation, transactionType).Inc()
}

func (m *PrometheusMetrics) RecordAnalyticsRequest(view string) {
	m.analyticsRequests.WithLabelValues(view).Inc()
}

func (m *PrometheusMetrics) ObserveAnalyticsDuration(view string, duration time.Duration) {
	m.analyticsDuration.WithLabelValues(view).Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordAuthEvent(event, outcome string) {
	m.authEvents.WithLabelValues(event, outcome).Inc()
}

func (m *PrometheusMetrics) RecordStoreError() {
	m.storeErrors.Inc()
}

// NoopMetrics is a MetricsRecorderInterface that records nothing, for tests
type NoopMetrics struct{}

func (NoopMetrics) RecordTransactionWrite(operation, transactionType string)       {}
func (NoopMetrics) RecordAnalyticsRequest(view string)                             {}
func (NoopMetrics) ObserveAnalyticsDuration(view string, duration time.Duration)   {}
func (NoopMetrics) RecordAuthEvent(event, outcome string)                          {}
func (NoopMetrics) RecordStoreError()                                              {}
