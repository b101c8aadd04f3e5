package history

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors a Recorder reports to. One Metrics
// value may be shared by many Recorders; series are labelled by algorithm.
type Metrics struct {
	StepsExecuted *prometheus.CounterVec
	Replays       *prometheus.CounterVec
	HistoryLength *prometheus.GaugeVec
	StepDuration  *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// It panics if any of them is already registered, as promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		StepsExecuted: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvstep_steps_executed_total",
				Help: "Total number of engine steps executed",
			},
			[]string{"algorithm"},
		),
		Replays: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvstep_replays_total",
				Help: "Total number of navigations served from recorded snapshots",
			},
			[]string{"algorithm"},
		),
		HistoryLength: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "lvstep_history_length",
				Help: "Number of recorded snapshots",
			},
			[]string{"algorithm"},
		),
		StepDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lvstep_step_duration_seconds",
				Help:    "Engine step execution duration in seconds",
				Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
			},
			[]string{"algorithm"},
		),
	}
}
