package aggregators

import (
	"experiment-analytics/internal/shared/metrics"
)

var (
	// metricRecordsOutOfHorizonTotal counts matched rate records whose relative
	// second falls outside 0..120 and are therefore left out of a series.
	metricRecordsOutOfHorizonTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "records_out_of_horizon_total",
		},
		[]string{"series"},
	)

	metricSeriesBuiltTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "series_built_total",
		},
		[]string{"series"},
	)

	// metricRepliesDiscardedTotal counts ping replies whose sequence number
	// lies outside 0..120.
	metricRepliesDiscardedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "replies_discarded_total",
		},
		[]string{"reason"},
	)
)
