package app

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"experiment-analytics/internal/aggregators"
	"experiment-analytics/internal/analyzers"
	"experiment-analytics/internal/charts"
	"experiment-analytics/internal/models"
	"experiment-analytics/internal/readers"
	"experiment-analytics/internal/shared/configs"
	"experiment-analytics/internal/shared/filestorages"
	"experiment-analytics/internal/shared/loggers"
	"experiment-analytics/internal/shared/metrics"
	"experiment-analytics/internal/shared/svcerrors"
	"experiment-analytics/internal/shared/ulid"
	"experiment-analytics/internal/stores"
)

// RunResult lists what a run produced, as keys under the results directory.
type RunResult struct {
	RunID     string
	ReportKey string
	ChartKeys []string
}

// App holds all application dependencies for one-shot runs.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger

	analysisService analyzers.AnalysisService
	reportStore     stores.ReportStore
	chartRenderer   charts.ChartRenderer // nil when rendering is disabled
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return NewWithLogger(config, appLogger)
}

// NewWithLogger is New with a caller-supplied logger.
func NewWithLogger(config *configs.Config, appLogger loggers.Logger) (*App, error) {
	appLogger = appLogger.With().
		Str(loggers.FieldApp, "experiment-analytics").
		Logger()

	// Initialize results directory
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize analysis service
	lossWindowCalculator, err := aggregators.NewLossWindowCalculator(models.LossWindowSize)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loss window calculator: %w", err)
	}
	analysisService := analyzers.NewAnalysisService(
		readers.NewRateLogReader(fileStorage, config.Inputs.Delimiter),
		readers.NewPingLogReader(fileStorage),
		aggregators.NewThroughputAggregator(),
		lossWindowCalculator,
		aggregators.NewSeriesSummarizer(),
	)

	var chartRenderer charts.ChartRenderer
	if config.Render.Enabled {
		chartRenderer = charts.NewChartRenderer(fileStorage, charts.Options{
			BandwidthMbps: config.Render.BandwidthMbps,
			Width:         config.Render.Width,
			Height:        config.Render.Height,
		})
	}

	return &App{
		config:          config,
		appLogger:       appLogger,
		analysisService: analysisService,
		reportStore:     stores.NewReportStore(fileStorage),
		chartRenderer:   chartRenderer,
	}, nil
}

// Run analyses the configured logs once, persists the report and renders
// the charts. A failed run leaves neither a report nor charts behind.
func (app *App) Run(ctx context.Context) (result *RunResult, err error) {
	runID := ulid.NewULID()
	ctx = app.runContext(ctx, runID, "run")
	defer app.observe(ctx, time.Now(), &err)

	loggers.Ctx(ctx).Info().
		Msgf("Starting experiment analysis (results_dir=%s, rate_log=%s, ping_log=%q, render=%t)",
			app.config.FileStorage.RootDir,
			app.config.Inputs.RateLog,
			app.config.Inputs.PingLog,
			app.config.Render.Enabled)

	report, err := app.analysisService.Analyze(ctx, app.analysisRequest(runID))
	if err != nil {
		return nil, err
	}

	result = &RunResult{RunID: runID}
	result.ReportKey, err = app.reportStore.Put(ctx, report)
	if err != nil {
		return nil, err
	}
	result.ChartKeys, err = app.render(ctx, report)
	if err != nil {
		// A run either leaves its report and all its charts or nothing.
		if deleteErr := app.reportStore.Delete(ctx, runID); deleteErr != nil {
			loggers.Ctx(ctx).Warn().Err(deleteErr).Str(loggers.FieldFileKey, result.ReportKey).Msg("failed to remove report of failed run")
		}
		return nil, err
	}
	return result, nil
}

// Rerender draws the charts of a stored report again, e.g. after changing
// the render settings.
func (app *App) Rerender(ctx context.Context, runID string) (result *RunResult, err error) {
	ctx = app.runContext(ctx, runID, "rerender")
	defer app.observe(ctx, time.Now(), &err)

	report, err := app.reportStore.Get(ctx, runID)
	if err != nil {
		return nil, err
	}
	result = &RunResult{RunID: runID}
	result.ChartKeys, err = app.render(ctx, report)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (app *App) render(ctx context.Context, report *models.ExperimentReport) ([]string, error) {
	if app.chartRenderer == nil {
		loggers.Ctx(ctx).Debug().Msg("chart rendering disabled")
		return nil, nil
	}
	return app.chartRenderer.Render(ctx, report)
}

func (app *App) analysisRequest(runID string) analyzers.AnalysisRequest {
	flows := make([]analyzers.Flow, 0, len(app.config.Analysis.Flows))
	for _, flow := range app.config.Analysis.Flows {
		flows = append(flows, analyzers.Flow{Name: flow.Name, Pattern: flow.Pattern})
	}
	return analyzers.AnalysisRequest{
		RunID:            runID,
		RateLogKey:       app.config.Inputs.RateLog,
		PingLogKey:       app.config.Inputs.PingLog,
		Switch:           app.config.Analysis.Switch,
		HostPortMin:      app.config.Analysis.HostPortMin,
		Flows:            flows,
		AggregatePattern: app.config.Analysis.AggregatePattern,
		LossWindowStart:  app.config.Analysis.LossWindowStart,
	}
}

func (app *App) runContext(ctx context.Context, runID, component string) context.Context {
	runLogger := app.appLogger.With().
		Str(loggers.FieldComponent, component).
		Str(loggers.FieldRunID, runID).
		Logger()
	return runLogger.WithContext(ctx)
}

// observe turns a panic into an internal error, records the run metrics and
// writes the metrics textfile when one is configured.
func (app *App) observe(ctx context.Context, start time.Time, err *error) {
	logger := loggers.Ctx(ctx)
	if p := recover(); p != nil {
		logger.Error().
			Bytes(loggers.FieldErrorStack, debug.Stack()).
			Msgf("run panic recovered: %v", p)

		panicErr, ok := p.(error)
		if !ok {
			panicErr = fmt.Errorf("%v", p)
		}
		*err = svcerrors.NewInternalErrorPanic(panicErr)
	}

	code := metrics.ValueNoError
	if *err != nil {
		svcErr, ok := svcerrors.AsServiceError(*err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(*err)
			*err = svcErr
		}
		code = svcErr.Code
		logger.Error().
			Err(svcErr.Cause).
			Str(loggers.FieldErrorCode, code).
			Msg(svcErr.Message)
	}

	elapsed := time.Since(start)
	metricRunsTotal.WithLabelValues(code).Inc()
	metricRunDurationSeconds.WithLabelValues(code).Observe(elapsed.Seconds())
	logger.Info().
		Int64(loggers.FieldDuration, elapsed.Milliseconds()).
		Str(loggers.FieldErrorCode, code).
		Msg("run completed")

	if path := app.config.Metrics.Textfile; path != "" {
		if writeErr := metrics.WriteTextfile(path); writeErr != nil {
			logger.Warn().Err(writeErr).Str("path", path).Msg("failed to write metrics textfile")
		}
	}
}
