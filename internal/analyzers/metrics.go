package analyzers

import (
	"experiment-analytics/internal/shared/metrics"
)

var (
	metricAnalysesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "analyses_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricFlowsAnalyzedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "flows_analyzed_total",
		},
		[]string{"flow"},
	)
)
