package observability

import (
	"context"

	"github.com/aretw0/nfasim/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors describing simulator activity.
type Metrics struct {
	Runs        *prometheus.CounterVec
	Symbols     prometheus.Counter
	ActiveSets  prometheus.Histogram
	EmptySets   prometheus.Counter
	RunDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nfasim_runs_total",
				Help: "Total number of finished runs by verdict",
			},
			[]string{"verdict"},
		),
		Symbols: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nfasim_symbols_consumed_total",
			Help: "Total number of input symbols consumed",
		}),
		ActiveSets: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "nfasim_active_states",
			Help:    "Size of the active state set after each consumed symbol",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),
		EmptySets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nfasim_empty_sets_total",
			Help: "Steps that left the active state set empty",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "nfasim_run_duration_seconds",
			Help:    "Duration of runs",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Runs, m.Symbols, m.ActiveSets, m.EmptySets, m.RunDuration)
	}
	return m
}

// Hooks returns lifecycle hooks recording into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			m.Symbols.Inc()
			m.ActiveSets.Observe(float64(len(e.Active)))
			if len(e.Active) == 0 {
				m.EmptySets.Inc()
			}
		},
		OnVerdict: func(ctx context.Context, e *domain.VerdictEvent) {
			verdict := domain.VerdictReject
			if e.Accepted {
				verdict = domain.VerdictAccept
			}
			m.Runs.WithLabelValues(verdict).Inc()
			m.RunDuration.Observe(e.Duration.Seconds())
		},
	}
}
