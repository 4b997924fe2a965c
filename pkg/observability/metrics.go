package observability

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/devfolio/pkg/domain"
)

const namespace = "devfolio"

// Metrics holds the collectors fed by lifecycle hooks and the HTTP middleware.
type Metrics struct {
	registry prometheus.Gatherer

	validations *prometheus.CounterVec
	violations  *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	stores      *prometheus.CounterVec
	requests    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validations_total",
				Help:      "Total number of portfolio validations",
			},
			[]string{"source", "result"},
		),
		violations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "violations_total",
				Help:      "Total number of reported violations",
			},
			[]string{"kind"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "validation_duration_seconds",
				Help:      "Duration of portfolio validations",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
			},
			[]string{"source"},
		),
		stores: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_events_total",
				Help:      "Total number of store writes and deletes",
			},
			[]string{"event"},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
	}
	reg.MustRegister(m.validations, m.violations, m.duration, m.stores, m.requests)
	return m
}

// Hooks returns lifecycle hooks that record metrics.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnValidate: func(_ context.Context, e *domain.ValidationEvent) {
			result := "invalid"
			if e.Success {
				result = "valid"
			}
			m.validations.WithLabelValues(e.Source, result).Inc()
			m.duration.WithLabelValues(e.Source).Observe(e.Duration.Seconds())
			for _, v := range e.Violations {
				m.violations.WithLabelValues(v.Kind.String()).Inc()
			}
		},
		OnStore: func(_ context.Context, e *domain.StoreEvent) {
			m.stores.WithLabelValues(string(e.Type)).Inc()
		},
	}
}

// Middleware counts requests by chi route pattern, so path parameters do not
// blow up label cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
	})
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
