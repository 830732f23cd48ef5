// Package service hosts thin orchestration layers above the scheduling
// core: wiring the orchestrator and catalog into HTTP-shaped request/
// response handling, plus cross-cutting collectors like MetricsService.
package service

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates the Prometheus collectors this service
// exposes: HTTP request instrumentation plus schedule-generation
// histograms (Generate duration, number of schedules returned) and
// result-cache counters that ScheduleGeneratorService feeds on every
// Generate call.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	generateLatency prometheus.Histogram
	schedulesFound  prometheus.Histogram
	cacheOps        *prometheus.CounterVec
	cacheWriteDur   prometheus.Histogram
}

// NewMetricsService registers the scheduler's Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	generateLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "schedule_generate_duration_seconds",
		Help:    "Duration of a full Generate call (encode+solve+decode+condense)",
		Buckets: prometheus.DefBuckets,
	})

	schedulesFound := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "schedule_generate_results",
		Help:    "Number of ranked schedules returned by a Generate call",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
	})

	cacheOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_cache_operations_total",
		Help: "Result cache lookups for /schedules/generate, labeled by outcome",
	}, []string{"result"})

	cacheWriteDur := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "schedule_cache_write_duration_seconds",
		Help:    "Duration of result cache writes",
		Buckets: prometheus.DefBuckets,
	})

	registry.MustRegister(requestDuration, requestTotal, generateLatency, schedulesFound, cacheOps, cacheWriteDur)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		generateLatency: generateLatency,
		schedulesFound:  schedulesFound,
		cacheOps:        cacheOps,
		cacheWriteDur:   cacheWriteDur,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request latency and count by method/path/status.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := http.StatusText(status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveGenerate records one Generate call's latency and result count.
func (m *MetricsService) ObserveGenerate(duration time.Duration, numSchedules int) {
	if m == nil {
		return
	}
	m.generateLatency.Observe(duration.Seconds())
	m.schedulesFound.Observe(float64(numSchedules))
}

// RecordCacheOperation tallies a result cache lookup as a hit or miss.
func (m *MetricsService) RecordCacheOperation(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheOps.WithLabelValues(result).Inc()
}

// ObserveCacheWrite records how long a result cache write took.
func (m *MetricsService) ObserveCacheWrite(duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheWriteDur.Observe(duration.Seconds())
}
