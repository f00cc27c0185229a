package aggregators

import (
	"context"
	"fmt"
	"strings"

	"experiment-analytics/internal/models"
	"experiment-analytics/internal/shared/loggers"

	"github.com/spf13/cast"
)

const (
	lastSequence = models.LastSecond

	seqMarker  = "seq"
	timeMarker = "time"

	// minRoundTripMs is the resolution ping prints delays at. A reply printed
	// as time=0.000 is raised to it so zero keeps meaning "no reply".
	minRoundTripMs = 0.001

	seriesRoundTrip = "round_trip"
	seriesLossRate  = "loss_rate"
)

type LossWindowCalculator interface {
	// DelaySeries maps each ping sequence in 0..120 to its round trip in ms.
	// Sequences without a reply hold 0.
	DelaySeries(ctx context.Context, replyLines []string) (models.TimeSeries, error)
	// LossRate is the fraction of sequences start..start+size-1 without a reply.
	LossRate(delay models.TimeSeries, start int) (float64, error)
	// LossRates holds LossRate for every start in 0..120.
	LossRates(delay models.TimeSeries) models.TimeSeries
	WindowSize() int
}

type lossWindowCalculator struct {
	windowSize int
}

// NewLossWindowCalculator builds a calculator over windows of windowSize
// sequences; models.LossWindowSize is the experiment default.
func NewLossWindowCalculator(windowSize int) (LossWindowCalculator, error) {
	if windowSize <= 0 {
		return nil, errLossWindowSizeInvalid(windowSize)
	}
	return &lossWindowCalculator{windowSize: windowSize}, nil
}

func (c *lossWindowCalculator) WindowSize() int {
	return c.windowSize
}

func (c *lossWindowCalculator) DelaySeries(ctx context.Context, replyLines []string) (models.TimeSeries, error) {
	var delay models.TimeSeries
	discarded := 0

	for i, line := range replyLines {
		record, err := parseReply(line)
		if err != nil {
			return models.TimeSeries{}, errReplyLineMalformed(i+1, err)
		}
		if record.SequenceNumber < 0 || record.SequenceNumber > lastSequence {
			discarded++
			continue
		}
		delay[record.SequenceNumber] = record.RoundTripMs
	}

	if discarded > 0 {
		metricRepliesDiscardedTotal.WithLabelValues("out_of_horizon").Add(float64(discarded))
		loggers.Ctx(ctx).Debug().
			Str(loggers.FieldSeries, seriesRoundTrip).
			Int(loggers.FieldSkipped, discarded).
			Msg("replies outside sequence domain discarded")
	}
	metricSeriesBuiltTotal.WithLabelValues(seriesRoundTrip).Inc()
	return delay, nil
}

// LossRate clamps a window that runs past sequence 120 to the populated
// domain and divides by the number of sequences actually inspected, so the
// result stays in [0, 1].
func (c *lossWindowCalculator) LossRate(delay models.TimeSeries, start int) (float64, error) {
	if start < 0 || start > lastSequence {
		return 0, errLossWindowStartOutOfRange(start)
	}
	end := min(start+c.windowSize, models.ObservationHorizon)

	lost := 0
	for seq := start; seq < end; seq++ {
		if delay[seq] == 0 {
			lost++
		}
	}
	return float64(lost) / float64(end-start), nil
}

func (c *lossWindowCalculator) LossRates(delay models.TimeSeries) models.TimeSeries {
	var rates models.TimeSeries
	for start := 0; start <= lastSequence; start++ {
		// start is always inside the domain here.
		rates[start], _ = c.LossRate(delay, start)
	}
	metricSeriesBuiltTotal.WithLabelValues(seriesLossRate).Inc()
	return rates
}

// parseReply reads the "icmp_seq=<n>" and "time=<ms>" tokens of one reply:
//
//	64 bytes from 10.0.0.4: icmp_seq=12 ttl=64 time=0.061 ms
func parseReply(line string) (models.RawPingRecord, error) {
	var (
		record          models.RawPingRecord
		haveSeq, haveRT bool
	)
	for _, token := range strings.Fields(line) {
		name, value, ok := strings.Cut(token, "=")
		if !ok {
			continue
		}
		switch {
		case strings.HasSuffix(name, seqMarker):
			seq, err := cast.ToIntE(value)
			if err != nil {
				return record, fmt.Errorf("invalid sequence %q: %w", value, err)
			}
			record.SequenceNumber = seq
			haveSeq = true
		case name == timeMarker:
			rtt, err := cast.ToFloat64E(value)
			if err != nil {
				return record, fmt.Errorf("invalid round trip %q: %w", value, err)
			}
			if rtt < 0 {
				return record, fmt.Errorf("negative round trip %q", value)
			}
			record.RoundTripMs = max(rtt, minRoundTripMs)
			haveRT = true
		}
	}
	if !haveSeq {
		return record, fmt.Errorf("missing seq= token in %q", line)
	}
	if !haveRT {
		return record, fmt.Errorf("missing time= token in %q", line)
	}
	return record, nil
}
