package aggregators

import (
	"experiment-analytics/internal/models"

	"github.com/montanaflynn/stats"
)

// SeriesSummarizer condenses the series of a report into headline numbers.
type SeriesSummarizer interface {
	Summarize(aggregateSpeed, totalThroughput models.TimeSeries, delay *models.TimeSeries) *models.SeriesSummary
}

type seriesSummarizer struct{}

func NewSeriesSummarizer() SeriesSummarizer {
	return &seriesSummarizer{}
}

// Summarize computes mean, peak and nearest-rank p95 of the aggregate speed
// over the whole horizon, and the same for the delay over sequences that got
// a reply. delay may be nil when no ping log was analysed.
func (s *seriesSummarizer) Summarize(aggregateSpeed, totalThroughput models.TimeSeries, delay *models.TimeSeries) *models.SeriesSummary {
	speed := stats.Float64Data(aggregateSpeed.Values())
	summary := &models.SeriesSummary{
		TotalDeliveredMbit: totalThroughput[models.LastSecond],
	}
	// speed always holds ObservationHorizon values; these cannot fail.
	summary.AggregateMeanMbps, _ = speed.Mean()
	summary.AggregatePeakMbps, _ = speed.Max()
	summary.AggregateP95Mbps, _ = speed.PercentileNearestRank(95)

	if delay == nil {
		return summary
	}
	_, replies := delay.NonZero()
	if len(replies) == 0 {
		return summary
	}
	rtt := stats.Float64Data(replies)
	summary.Replies = len(replies)
	summary.DelayMeanMs, _ = rtt.Mean()
	summary.DelayP95Ms, _ = rtt.PercentileNearestRank(95)
	summary.DelayMaxMs, _ = rtt.Max()
	return summary
}
