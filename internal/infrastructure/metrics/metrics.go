// Package metrics registers the Prometheus instruments for the derived-data
// pipeline. Exposed at /metrics by the API server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecalcRuns counts completed recomputation runs by outcome
	RecalcRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "giinwatch",
		Name:      "recalc_runs_total",
		Help:      "Completed aggregation/scoring runs by outcome.",
	}, []string{"outcome"})

	// ScoresComputed counts activity score rows written
	ScoresComputed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "giinwatch",
		Name:      "scores_computed_total",
		Help:      "Activity score rows upserted.",
	})

	// IntegrityFaults counts invariant violations surfaced by kind
	IntegrityFaults = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "giinwatch",
		Name:      "integrity_faults_total",
		Help:      "Data-integrity faults surfaced for manual correction.",
	}, []string{"kind"})

	// LastRecalcTimestamp is the unix time of the last successful run
	LastRecalcTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "giinwatch",
		Name:      "last_recalc_timestamp_seconds",
		Help:      "Unix timestamp of the last successful recomputation.",
	})
)
