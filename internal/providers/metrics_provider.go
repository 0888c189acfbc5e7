package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"wsd/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncBackendFallback(backend string)
	IncMockServed()
	ObserveUpstreamDuration(backend string, duration time.Duration)
}

type MetricsProvider struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	backendFallbacks *prometheus.CounterVec
	mockServed       prometheus.Counter
	upstreamDuration *prometheus.HistogramVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncBackendFallback(backend string) {
	m.backendFallbacks.WithLabelValues(backend).Inc()
}

func (m *MetricsProvider) IncMockServed() {
	m.mockServed.Inc()
}

func (m *MetricsProvider) ObserveUpstreamDuration(backend string, duration time.Duration) {
	m.upstreamDuration.WithLabelValues(backend).Observe(duration.Seconds())
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "wsd_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wsd_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wsd_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wsd_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		backendFallbacks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "wsd_backend_fallbacks_total",
			Help: "Times a metrics backend failed and the next one was tried",
		}, []string{"backend"}),

		mockServed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wsd_mock_substitutions_total",
			Help: "Times mock records were substituted for real content",
		}),

		upstreamDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wsd_upstream_request_duration_seconds",
			Help:    "Metrics backend request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"backend"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                  {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)  {}
func (n *noopMetrics) IncCacheHits()                                     {}
func (n *noopMetrics) IncCacheMisses()                                   {}
func (n *noopMetrics) IncBackendFallback(_ string)                       {}
func (n *noopMetrics) IncMockServed()                                    {}
func (n *noopMetrics) ObserveUpstreamDuration(_ string, _ time.Duration) {}
