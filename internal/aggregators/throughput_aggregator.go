package aggregators

import (
	"context"

	"experiment-analytics/internal/matchers"
	"experiment-analytics/internal/models"
	"experiment-analytics/internal/shared/loggers"
)

const (
	seriesRealtimeSpeed   = "realtime_speed"
	seriesTotalThroughput = "total_throughput"
)

// ThroughputAggregator builds per-second series from a rate log.
type ThroughputAggregator interface {
	// RealtimeSpeed sums the bytes-out rate of matched interfaces per second, in Mbit/s.
	RealtimeSpeed(ctx context.Context, rateLog *models.RateLog, matcher matchers.InterfaceMatcher) models.TimeSeries
	// TotalThroughput is the running total of bytes sent by matched interfaces, in Mbit.
	TotalThroughput(ctx context.Context, rateLog *models.RateLog, matcher matchers.InterfaceMatcher) models.TimeSeries
}

type throughputAggregator struct{}

func NewThroughputAggregator() ThroughputAggregator {
	return &throughputAggregator{}
}

func (a *throughputAggregator) RealtimeSpeed(ctx context.Context, rateLog *models.RateLog, matcher matchers.InterfaceMatcher) models.TimeSeries {
	speed := a.bucketize(ctx, seriesRealtimeSpeed, rateLog, matcher, func(record models.RawRateRecord) float64 {
		return record.BytesOutRate
	})
	metricSeriesBuiltTotal.WithLabelValues(seriesRealtimeSpeed).Inc()
	return speed
}

func (a *throughputAggregator) TotalThroughput(ctx context.Context, rateLog *models.RateLog, matcher matchers.InterfaceMatcher) models.TimeSeries {
	delta := a.bucketize(ctx, seriesTotalThroughput, rateLog, matcher, func(record models.RawRateRecord) float64 {
		return record.CumulativeBytesOut
	})
	metricSeriesBuiltTotal.WithLabelValues(seriesTotalThroughput).Inc()
	return delta.CumulativeSum()
}

// bucketize adds value(record) * 8/10^6 of every matched record into the
// bucket of its relative second.
func (a *throughputAggregator) bucketize(ctx context.Context, series string, rateLog *models.RateLog, matcher matchers.InterfaceMatcher, value func(models.RawRateRecord) float64) models.TimeSeries {
	var buckets models.TimeSeries
	timeBase := NewTimeBase(rateLog)
	outOfHorizon := 0

	for _, record := range rateLog.Records {
		if !matcher.Match(record.InterfaceName) {
			continue
		}
		second, ok := timeBase.RelativeSecond(record.AbsoluteSecond)
		if !ok {
			outOfHorizon++
			continue
		}
		buckets[second] += value(record) * models.MbitPerByte
	}

	if outOfHorizon > 0 {
		metricRecordsOutOfHorizonTotal.WithLabelValues(series).Add(float64(outOfHorizon))
		loggers.Ctx(ctx).Debug().
			Str(loggers.FieldSeries, series).
			Str("matcher", matcher.String()).
			Int(loggers.FieldSkipped, outOfHorizon).
			Msg("records outside observation horizon discarded")
	}
	return buckets
}
