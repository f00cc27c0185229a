package readers

import (
	"experiment-analytics/internal/shared/metrics"
)

const (
	logKindRate = "rate"
	logKindPing = "ping"
)

var (
	metricLinesReadTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReader,
			Name:      "lines_read_total",
		},
		[]string{metrics.FieldLogKind},
	)

	// metricLinesSkippedTotal counts lines read but not turned into records.
	// reason is one of: blank, trailing_second, not_reply.
	metricLinesSkippedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReader,
			Name:      "lines_skipped_total",
		},
		[]string{metrics.FieldLogKind, "reason"},
	)
)
