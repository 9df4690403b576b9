// Package observability bridges the search engine's lifecycle hooks to
// Prometheus collectors.
package observability

import (
	"time"

	"github.com/aretw0/decant/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the solver.
type Metrics struct {
	Searches      *prometheus.CounterVec
	StatesVisited prometheus.Counter
	LayerDepth    prometheus.Histogram
	SolveDuration prometheus.Histogram
}

// NewMetrics creates and registers the solver collectors on reg.
// Pass prometheus.DefaultRegisterer for the process-wide registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "decant_searches_total",
				Help: "Total number of searches, by outcome.",
			},
			[]string{"outcome"},
		),
		StatesVisited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "decant_states_discovered_total",
				Help: "Total number of vessel states discovered across searches.",
			},
		),
		LayerDepth: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "decant_solution_steps",
				Help:    "Step count of found solutions (BFS depth at the hit).",
				Buckets: prometheus.LinearBuckets(1, 2, 10),
			},
		),
		SolveDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "decant_solve_duration_seconds",
				Help:    "Wall time of one solve call.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	reg.MustRegister(m.Searches, m.StatesVisited, m.LayerDepth, m.SolveDuration)
	return m
}

// Hooks returns search hooks that feed the collectors.
func (m *Metrics) Hooks() domain.SearchHooks {
	return domain.SearchHooks{
		OnSolved: func(steps, discovered int) {
			m.Searches.WithLabelValues("solved").Inc()
			m.StatesVisited.Add(float64(discovered))
			m.LayerDepth.Observe(float64(steps))
		},
		OnExhausted: func(discovered int) {
			m.Searches.WithLabelValues("exhausted").Inc()
			m.StatesVisited.Add(float64(discovered))
		},
	}
}

// ObserveDuration records the wall time of one solve call.
func (m *Metrics) ObserveDuration(d time.Duration) {
	m.SolveDuration.Observe(d.Seconds())
}
