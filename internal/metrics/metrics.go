// Package metrics exposes Prometheus collectors for the widget runtime.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/vango-ant/pkg/runtime"
)

const namespace = "vango"

// Metrics groups the collectors registered for one server.
type Metrics struct {
	registry *prometheus.Registry

	RenderPasses prometheus.Histogram
	RenderErrors prometheus.Counter
	Events       *prometheus.CounterVec
	Sessions     prometheus.Gauge
}

// New creates collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RenderPasses: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_passes",
			Help:      "Render passes needed for a flush to settle.",
			Buckets:   []float64{1, 2, 3, 4, 6, 8},
		}),
		RenderErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_errors_total",
			Help:      "Flushes that failed to settle.",
		}),
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Dispatched events by type and outcome.",
		}, []string{"event", "outcome"}),
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_sessions",
			Help:      "Mounted WebSocket sessions.",
		}),
	}

	m.registry.MustRegister(m.RenderPasses, m.RenderErrors, m.Events, m.Sessions)
	return m
}

// Hooks returns runtime hooks that feed these collectors.
func (m *Metrics) Hooks() runtime.Hooks {
	return runtime.Hooks{
		OnFlush: func(passes int, err error) {
			m.RenderPasses.Observe(float64(passes))
			if err != nil {
				m.RenderErrors.Inc()
			}
		},
		OnEvent: func(event string, prevented bool) {
			outcome := "handled"
			if prevented {
				outcome = "prevented"
			}
			m.Events.WithLabelValues(event, outcome).Inc()
		},
	}
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the collectors in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
