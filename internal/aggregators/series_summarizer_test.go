package aggregators

import (
	"testing"

	"experiment-analytics/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSeriesSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	var speed models.TimeSeries
	for i := 0; i < 60; i++ {
		speed[i] = 20
	}
	speed[10] = 30
	total := speed.CumulativeSum()

	var delay models.TimeSeries
	delay[0] = 1
	delay[1] = 3
	delay[2] = 2

	summary := NewSeriesSummarizer().Summarize(speed, total, &delay)

	assert.InDelta(t, (59*20.0+30)/121.0, summary.AggregateMeanMbps, 1e-9)
	assert.Equal(t, 30.0, summary.AggregatePeakMbps)
	assert.Equal(t, 20.0, summary.AggregateP95Mbps)
	assert.InDelta(t, 1210.0, summary.TotalDeliveredMbit, 1e-9)
	assert.Equal(t, 3, summary.Replies)
	assert.InDelta(t, 2.0, summary.DelayMeanMs, 1e-9)
	assert.Equal(t, 3.0, summary.DelayMaxMs)
	assert.Equal(t, 3.0, summary.DelayP95Ms)
}

func TestSeriesSummarizer_NoDelay(t *testing.T) {
	t.Parallel()

	summarizer := NewSeriesSummarizer()

	summary := summarizer.Summarize(models.TimeSeries{}, models.TimeSeries{}, nil)
	assert.Equal(t, &models.SeriesSummary{}, summary)

	summary = summarizer.Summarize(models.TimeSeries{}, models.TimeSeries{}, &models.TimeSeries{})
	assert.Zero(t, summary.Replies)
	assert.Zero(t, summary.DelayMaxMs)
}
