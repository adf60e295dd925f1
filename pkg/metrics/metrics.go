// Package metrics records Prometheus metrics for page rendering and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JaimeStill/lunch-web/pkg/middleware"
)

// Recorder is the subset of metrics the frontend module reports through.
type Recorder interface {
	PageView(page string)
	RouteMiss()
}

// Manager owns a private registry and the collectors registered on it.
type Manager struct {
	registry *prometheus.Registry

	pageViews       *prometheus.CounterVec
	routeMisses     prometheus.Counter
	httpRequests    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// Option configures a Manager.
type Option func(*options)

type options struct {
	namespace string
	buckets   []float64
	runtime   bool
}

// WithNamespace sets the metric namespace.
func WithNamespace(namespace string) Option {
	return func(o *options) {
		if namespace != "" {
			o.namespace = namespace
		}
	}
}

// WithHistogramBuckets overrides the request duration buckets.
func WithHistogramBuckets(buckets []float64) Option {
	return func(o *options) {
		if len(buckets) > 0 {
			o.buckets = buckets
		}
	}
}

// WithRuntimeCollectors registers the Go runtime and process collectors.
func WithRuntimeCollectors() Option {
	return func(o *options) {
		o.runtime = true
	}
}

// NewManager creates a Manager with its own registry.
func NewManager(opts ...Option) *Manager {
	o := &options{
		namespace: "lunch_web",
		buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(o)
	}

	reg := prometheus.NewRegistry()
	if o.runtime {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	auto := promauto.With(reg)
	return &Manager{
		registry: reg,
		pageViews: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "page_views_total",
			Help:      "Pages rendered, by logical page.",
		}, []string{"page"}),
		routeMisses: auto.NewCounter(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "route_misses_total",
			Help:      "Requests that matched no route.",
		}),
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "code"}),
		requestDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   o.buckets,
		}, []string{"method"}),
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// PageView counts a rendered page.
func (m *Manager) PageView(page string) {
	m.pageViews.WithLabelValues(page).Inc()
}

// RouteMiss counts a request that matched no route.
func (m *Manager) RouteMiss() {
	m.routeMisses.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Instrument returns middleware that records request counts and latency.
func (m *Manager) Instrument() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := middleware.NewStatusRecorder(w)

			next.ServeHTTP(rec, r)

			m.httpRequests.WithLabelValues(r.Method, strconv.Itoa(rec.Status)).Inc()
			m.requestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
		})
	}
}

// Nop discards every observation.
type Nop struct{}

func (Nop) PageView(string) {}
func (Nop) RouteMiss()      {}
