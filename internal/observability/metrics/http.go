// Package metrics exposes prometheus instrumentation on a private registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServerMetrics struct {
	service  string
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	pipelineTotal     *prometheus.CounterVec
	pipelineDuration  *prometheus.HistogramVec
	missingFieldTotal *prometheus.CounterVec
	zoneTotal         *prometheus.CounterVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "zscore",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "zscore",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "zscore",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	pipelineTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "zscore",
			Subsystem: "pipeline",
			Name:      "requests_total",
			Help:      "Total scoring pipeline runs by outcome.",
		},
		[]string{"service", "outcome"},
	)
	pipelineDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "zscore",
			Subsystem: "pipeline",
			Name:      "duration_seconds",
			Help:      "Scoring pipeline duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service"},
	)
	missingFieldTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "zscore",
			Subsystem: "extract",
			Name:      "missing_field_total",
			Help:      "Required financial fields that could not be located, by field.",
		},
		[]string{"service", "field"},
	)
	zoneTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "zscore",
			Subsystem: "score",
			Name:      "zone_total",
			Help:      "Computed scores by risk zone.",
		},
		[]string{"service", "zone"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		pipelineTotal,
		pipelineDuration,
		missingFieldTotal,
		zoneTotal,
	)

	return &HTTPServerMetrics{
		service:  service,
		registry: registry,

		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		requestInFlight: requestInFlight,

		pipelineTotal:     pipelineTotal,
		pipelineDuration:  pipelineDuration,
		missingFieldTotal: missingFieldTotal,
		zoneTotal:         zoneTotal,
	}
}

// Handler serves the private registry.
func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) ObserveRequest(method, path string, status int, duration time.Duration) {
	m.requestTotal.WithLabelValues(m.service, method, path, statusText(status)).Inc()
	m.requestDuration.WithLabelValues(m.service, method, path).Observe(duration.Seconds())
}

func (m *HTTPServerMetrics) RequestStarted()  { m.requestInFlight.Inc() }
func (m *HTTPServerMetrics) RequestFinished() { m.requestInFlight.Dec() }

// ObservePipeline records one scoring run. Outcomes mirror the error
// taxonomy: ok, not_found, extraction_incomplete, invalid_input, temporary,
// internal.
func (m *HTTPServerMetrics) ObservePipeline(outcome string, duration time.Duration) {
	m.pipelineTotal.WithLabelValues(m.service, outcome).Inc()
	m.pipelineDuration.WithLabelValues(m.service).Observe(duration.Seconds())
}

func (m *HTTPServerMetrics) RecordMissingField(field string) {
	m.missingFieldTotal.WithLabelValues(m.service, field).Inc()
}

func (m *HTTPServerMetrics) RecordZone(zone string) {
	m.zoneTotal.WithLabelValues(m.service, zone).Inc()
}

func statusText(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
