package analyzers

import (
	"context"
	"time"

	"experiment-analytics/internal/aggregators"
	"experiment-analytics/internal/matchers"
	"experiment-analytics/internal/models"
	"experiment-analytics/internal/readers"
	"experiment-analytics/internal/shared/loggers"
	"experiment-analytics/internal/shared/metrics"
)

// aggregateFlowName labels the aggregate pattern in errors and logs.
const aggregateFlowName = "aggregate"

// Flow is one tracked flow and the interface pattern selecting its traffic.
type Flow struct {
	Name    string
	Pattern string
}

// AnalysisRequest describes one experiment run to analyse. Log keys are
// relative to the results directory; an empty PingLogKey skips the delay
// and loss series.
type AnalysisRequest struct {
	RunID            string
	RateLogKey       string
	PingLogKey       string
	Switch           string
	HostPortMin      int
	Flows            []Flow
	AggregatePattern string
	LossWindowStart  int
}

// AnalysisService turns the logs of one run into an ExperimentReport.
type AnalysisService interface {
	// Analyze reads both logs of a run and derives every series of its report.
	// Nothing is returned unless both logs were read and parsed completely.
	Analyze(ctx context.Context, req AnalysisRequest) (*models.ExperimentReport, error)
}

type analysisService struct {
	rateLogReader        readers.RateLogReader
	pingLogReader        readers.PingLogReader
	throughputAggregator aggregators.ThroughputAggregator
	lossWindowCalculator aggregators.LossWindowCalculator
	seriesSummarizer     aggregators.SeriesSummarizer
	now                  func() time.Time
}

func NewAnalysisService(
	rateLogReader readers.RateLogReader,
	pingLogReader readers.PingLogReader,
	throughputAggregator aggregators.ThroughputAggregator,
	lossWindowCalculator aggregators.LossWindowCalculator,
	seriesSummarizer aggregators.SeriesSummarizer,
) AnalysisService {
	return &analysisService{
		rateLogReader:        rateLogReader,
		pingLogReader:        pingLogReader,
		throughputAggregator: throughputAggregator,
		lossWindowCalculator: lossWindowCalculator,
		seriesSummarizer:     seriesSummarizer,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

type flowMatcher struct {
	flow    Flow
	matcher matchers.InterfaceMatcher
}

func (s *analysisService) Analyze(ctx context.Context, req AnalysisRequest) (*models.ExperimentReport, error) {
	report, err := s.analyze(ctx, req)
	if err != nil {
		svcErr := asServiceError(err)
		metricAnalysesTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}
	metricAnalysesTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return report, nil
}

func (s *analysisService) analyze(ctx context.Context, req AnalysisRequest) (*models.ExperimentReport, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started analysing run %s: rate log %s, ping log %q", req.RunID, req.RateLogKey, req.PingLogKey)

	// Compile every pattern before touching the logs.
	flows, err := s.compileFlows(req.Flows)
	if err != nil {
		return nil, err
	}
	aggregateMatcher, err := matchers.NewPatternMatcher(req.AggregatePattern)
	if err != nil {
		return nil, errFlowPatternInvalid(aggregateFlowName, req.AggregatePattern, err)
	}
	hostFacing := matchers.NewHostFacingMatcher(req.Switch, req.HostPortMin)

	// Both logs are fully read before any series is built.
	rateLog, err := s.rateLogReader.Read(ctx, req.RateLogKey)
	if err != nil {
		return nil, err
	}
	var replyLines []string
	if req.PingLogKey != "" {
		replyLines, err = s.pingLogReader.ReadReplyLines(ctx, req.PingLogKey)
		if err != nil {
			return nil, err
		}
	}

	report := &models.ExperimentReport{
		RunID:           req.RunID,
		GeneratedAt:     s.now(),
		TotalThroughput: s.throughputAggregator.TotalThroughput(ctx, rateLog, hostFacing),
		Flows:           make([]models.FlowSeries, 0, len(flows)),
		AggregateSpeed:  s.throughputAggregator.RealtimeSpeed(ctx, rateLog, aggregateMatcher),
	}
	for _, f := range flows {
		report.Flows = append(report.Flows, models.FlowSeries{
			Name:    f.flow.Name,
			Pattern: f.flow.Pattern,
			Speed:   s.throughputAggregator.RealtimeSpeed(ctx, rateLog, f.matcher),
		})
		metricFlowsAnalyzedTotal.WithLabelValues(f.flow.Name).Inc()
	}

	var delay *models.TimeSeries
	if req.PingLogKey != "" {
		report.Delay, err = s.delayReport(ctx, replyLines, req.LossWindowStart)
		if err != nil {
			return nil, err
		}
		delay = &report.Delay.RoundTripMs
	}
	report.Summary = s.seriesSummarizer.Summarize(report.AggregateSpeed, report.TotalThroughput, delay)

	logger.Info().
		Int("flows", len(report.Flows)).
		Bool("delay", report.Delay != nil).
		Float64("total_delivered_mbit", report.Summary.TotalDeliveredMbit).
		Msg("analysis completed")
	return report, nil
}

func (s *analysisService) compileFlows(flows []Flow) ([]flowMatcher, error) {
	compiled := make([]flowMatcher, 0, len(flows))
	for _, flow := range flows {
		matcher, err := matchers.NewPatternMatcher(flow.Pattern)
		if err != nil {
			return nil, errFlowPatternInvalid(flow.Name, flow.Pattern, err)
		}
		compiled = append(compiled, flowMatcher{flow: flow, matcher: matcher})
	}
	return compiled, nil
}

func (s *analysisService) delayReport(ctx context.Context, replyLines []string, lossWindowStart int) (*models.DelayReport, error) {
	delay, err := s.lossWindowCalculator.DelaySeries(ctx, replyLines)
	if err != nil {
		return nil, err
	}
	lossRate, err := s.lossWindowCalculator.LossRate(delay, lossWindowStart)
	if err != nil {
		return nil, err
	}
	return &models.DelayReport{
		RoundTripMs:     delay,
		LossWindowStart: lossWindowStart,
		LossRate:        lossRate,
		LossRates:       s.lossWindowCalculator.LossRates(delay),
	}, nil
}
