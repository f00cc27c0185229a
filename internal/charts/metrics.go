package charts

import (
	"experiment-analytics/internal/shared/metrics"
)

var (
	metricChartsRenderedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRender,
			Name:      "charts_rendered_total",
		},
		[]string{"chart", metrics.FieldErrorCode},
	)
)
