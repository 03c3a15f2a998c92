// Package metrics provides Prometheus metrics for the skill-gap advisor.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "skillgap"

// Analysis outcomes
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// UnknownPosition is the position label of analyses against positions missing
// from the catalog
const UnknownPosition = "unknown"

// Manager owns the advisor metrics and the registry they live on.
// A nil *Manager is valid and records nothing.
type Manager struct {
	registry *prometheus.Registry

	analysesTotal    *prometheus.CounterVec
	analysisDuration prometheus.Histogram
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	httpRequests     *prometheus.CounterVec
	queueMessages    *prometheus.CounterVec
}

// New creates a manager on a fresh registry
func New() *Manager {
	return NewWithRegistry(prometheus.NewRegistry())
}

// NewWithRegistry creates a manager registering its metrics on registry
func NewWithRegistry(registry *prometheus.Registry) *Manager {
	auto := promauto.With(registry)
	return &Manager{
		registry: registry,
		analysesTotal: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Total number of skill-gap analyses by position and outcome",
		}, []string{"position", "outcome"}),
		analysisDuration: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Time spent producing a skill-gap report",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		cacheHits: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Reports served from the cache",
		}),
		cacheMisses: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Report lookups that missed the cache",
		}),
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code",
		}, []string{"method", "path", "status"}),
		queueMessages: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queue_messages_total",
			Help:      "Queue messages handled by outcome",
		}, []string{"outcome"}),
	}
}

// Registry returns the underlying registry
func (m *Manager) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordAnalysis counts one analysis and observes its duration. position
// must be a catalog key or UnknownPosition, never raw request input.
func (m *Manager) RecordAnalysis(position string, failed bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if failed {
		outcome = OutcomeError
	}
	m.analysesTotal.WithLabelValues(position, outcome).Inc()
	m.analysisDuration.Observe(elapsed.Seconds())
}

// RecordCacheLookup counts a cache hit or miss
func (m *Manager) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.cacheHits.Inc()
		return
	}
	m.cacheMisses.Inc()
}

// RecordHTTPRequest counts one served request. path should be the route
// pattern, not the raw URL, to keep label cardinality bounded.
func (m *Manager) RecordHTTPRequest(method, path string, status int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// RecordQueueMessage counts one consumed queue message
func (m *Manager) RecordQueueMessage(outcome string) {
	if m == nil {
		return
	}
	m.queueMessages.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Manager) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
