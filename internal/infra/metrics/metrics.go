// Package metrics exposes Prometheus collectors for the HTTP layer and the use cases.
package metrics

import (
	"net/http"
	"time"

	"dispatch/config"
	"dispatch/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "dispatch"

// Metrics holds Prometheus metrics collectors
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge

	indexRebuilds        prometheus.Counter
	indexSubscribers     prometheus.Gauge
	indexRebuildDuration prometheus.Histogram
	beaconCoordinates    *prometheus.CounterVec
	taskEvents           *prometheus.CounterVec
}

var _ service.MetricsRecorder = (*Metrics)(nil)

// New creates metrics registered on a dedicated registry.
func New(cfg *config.Config) *Metrics {
	namespace := defaultNamespace
	if cfg != nil && cfg.Metrics != nil && cfg.Metrics.Namespace != "" {
		namespace = cfg.Metrics.Namespace
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path", "status"},
		),
		requestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests currently being processed",
			},
		),
		indexRebuilds: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "search_index",
				Name:      "rebuilds_total",
				Help:      "Number of address index rebuilds",
			},
		),
		indexSubscribers: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "search_index",
				Name:      "subscribers",
				Help:      "Subscribers in the current address index snapshot",
			},
		),
		indexRebuildDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "search_index",
				Name:      "rebuild_duration_seconds",
				Help:      "Time spent building the address index",
				Buckets:   prometheus.ExponentialBuckets(.001, 4, 8),
			},
		),
		beaconCoordinates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "beacon_coordinates_total",
				Help:      "Stored beacon coordinates by source",
			},
			[]string{"source"},
		),
		taskEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "task_events_total",
				Help:      "Task event publish attempts by type and result",
			},
			[]string{"type", "result"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestsTotal,
		m.requestDuration,
		m.requestsInFlight,
		m.indexRebuilds,
		m.indexSubscribers,
		m.indexRebuildDuration,
		m.beaconCoordinates,
		m.taskEvents,
	)

	return m
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the Prometheus metrics HTTP handler
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RequestStarted marks an in-flight request and returns the function that records its outcome.
func (m *Metrics) RequestStarted() func(method, path string, status int, took time.Duration) {
	m.requestsInFlight.Inc()

	return func(method, path string, status int, took time.Duration) {
		m.requestsInFlight.Dec()
		code := statusLabel(status)
		m.requestsTotal.WithLabelValues(method, path, code).Inc()
		m.requestDuration.WithLabelValues(method, path, code).Observe(took.Seconds())
	}
}

// IndexRebuilt implements service.MetricsRecorder.
func (m *Metrics) IndexRebuilt(subscribers int, took time.Duration) {
	m.indexRebuilds.Inc()
	m.indexSubscribers.Set(float64(subscribers))
	m.indexRebuildDuration.Observe(took.Seconds())
}

// BeaconRecorded implements service.MetricsRecorder.
func (m *Metrics) BeaconRecorded(source string) {
	m.beaconCoordinates.WithLabelValues(source).Inc()
}

// EventPublished implements service.MetricsRecorder.
func (m *Metrics) EventPublished(eventType service.TaskEventType, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.taskEvents.WithLabelValues(string(eventType), result).Inc()
}

func statusLabel(status int) string {
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
