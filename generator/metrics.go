package generator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// collapsesTotal counts cells fixed to one pattern
	collapsesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tilewave_collapses_total",
		Help: "Total cells collapsed to a single pattern",
	})

	// contradictionsTotal counts attempts aborted by an empty cell
	contradictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tilewave_contradictions_total",
		Help: "Total contradictions (cells left with no admissible pattern)",
	})

	// restartsTotal counts grid resets after a failed attempt
	restartsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tilewave_restarts_total",
		Help: "Total restarts after a contradiction",
	})

	// removalsTotal counts patterns ruled out by propagation
	removalsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tilewave_removals_total",
		Help: "Total pattern entries removed by propagation",
	})

	// runDuration tracks Run latency by outcome
	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tilewave_run_duration_seconds",
		Help:    "Generator run duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~1.6s
	}, []string{"result"})
)
