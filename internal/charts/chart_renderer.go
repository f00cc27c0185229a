package charts

import (
	"bytes"
	"context"
	"fmt"

	"experiment-analytics/internal/models"
	"experiment-analytics/internal/shared/filestorages"
	"experiment-analytics/internal/shared/loggers"
	"experiment-analytics/internal/shared/metrics"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	ChartTotalThroughput = "1.total_throughput.png"
	ChartFlowSpeed       = "2.realtime_speed_of_individual_flow.png"
	ChartThroughput      = "3.realtime_throughput.png"
	ChartRoundTripDelay  = "4.round_trip_delay.png"
)

// flowColors cycle over the flows of the individual speed chart.
var flowColors = []drawing.Color{chart.ColorRed, chart.ColorGreen, chart.ColorBlue, chart.ColorOrange, chart.ColorCyan}

// Options sizes the charts. BandwidthMbps is the link capacity the speed
// axes are scaled to.
type Options struct {
	BandwidthMbps float64
	Width         int
	Height        int
}

// ChartRenderer draws the PNG charts of a report into file storage.
type ChartRenderer interface {
	// Render draws the charts of report under charts/<run id>/ and returns
	// the keys written, in chart order. On error no chart of the run is left
	// written.
	Render(ctx context.Context, report *models.ExperimentReport) ([]string, error)
}

type graph struct {
	name  string
	chart *chart.Chart
}

type chartRenderer struct {
	fileStorage filestorages.FileStorage
	options     Options
	dir         string
}

func NewChartRenderer(fileStorage filestorages.FileStorage, options Options) ChartRenderer {
	return &chartRenderer{fileStorage: fileStorage, options: options, dir: "charts"}
}

func (r *chartRenderer) Render(ctx context.Context, report *models.ExperimentReport) ([]string, error) {
	logger := loggers.Ctx(ctx)

	graphs := []graph{
		{name: ChartTotalThroughput, chart: r.totalThroughputChart(report)},
		{name: ChartFlowSpeed, chart: r.flowSpeedChart(report)},
		{name: ChartThroughput, chart: r.throughputChart(report)},
	}
	if report.Delay != nil {
		if delayChart := r.roundTripChart(report.Delay); delayChart != nil {
			graphs = append(graphs, graph{name: ChartRoundTripDelay, chart: delayChart})
		} else {
			logger.Warn().Msg("no ping replies, round trip chart skipped")
		}
	}

	// Every chart is rendered before the first one is written.
	images := make([]*bytes.Buffer, len(graphs))
	for i, g := range graphs {
		var buf bytes.Buffer
		if err := g.chart.Render(chart.PNG, &buf); err != nil {
			svcErr := errChartRenderFailed(g.name, err)
			metricChartsRenderedTotal.WithLabelValues(g.name, svcErr.Code).Inc()
			return nil, svcErr
		}
		images[i] = &buf
	}

	keys := make([]string, 0, len(graphs))
	for i, g := range graphs {
		key := fmt.Sprintf("%s/%s/%s", r.dir, report.RunID, g.name)
		if _, err := r.fileStorage.Put(ctx, key, images[i], filestorages.PutOptions{AllowOverwrite: true}); err != nil {
			svcErr := errChartWriteFailed(key, err)
			metricChartsRenderedTotal.WithLabelValues(g.name, svcErr.Code).Inc()
			r.remove(ctx, keys)
			return nil, svcErr
		}
		metricChartsRenderedTotal.WithLabelValues(g.name, metrics.ValueNoError).Inc()
		keys = append(keys, key)
	}

	logger.Debug().Strs("charts", keys).Msg("charts rendered")
	return keys, nil
}

// remove deletes the charts of a run that failed part way through writing.
func (r *chartRenderer) remove(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := r.fileStorage.Delete(ctx, key); err != nil {
			loggers.Ctx(ctx).Warn().Err(err).Str(loggers.FieldFileKey, key).Msg("failed to remove partial chart")
		}
	}
}

func (r *chartRenderer) totalThroughputChart(report *models.ExperimentReport) *chart.Chart {
	return r.newChart("Total throughput", "Mbit", r.options.BandwidthMbps*models.LastSecond, []chart.Series{
		lineSeries("Total", report.TotalThroughput, chart.ColorBlue),
	})
}

func (r *chartRenderer) flowSpeedChart(report *models.ExperimentReport) *chart.Chart {
	series := make([]chart.Series, 0, len(report.Flows))
	for i, flow := range report.Flows {
		series = append(series, lineSeries(flow.Name, flow.Speed, flowColors[i%len(flowColors)]))
	}
	if len(series) == 0 {
		series = append(series, lineSeries("No flows", models.TimeSeries{}, chart.ColorAlternateGray))
	}
	return r.newChart("Realtime speed of individual flow", "Mbit/s", r.options.BandwidthMbps, series)
}

func (r *chartRenderer) throughputChart(report *models.ExperimentReport) *chart.Chart {
	return r.newChart("Realtime throughput", "Mbit/s", r.options.BandwidthMbps, []chart.Series{
		lineSeries("Throughput", report.AggregateSpeed, chart.ColorRed),
	})
}

// roundTripChart plots only the sequences that got a reply. It returns nil
// when there is nothing to plot.
func (r *chartRenderer) roundTripChart(delay *models.DelayReport) *chart.Chart {
	seqs, rtts := delay.RoundTripMs.NonZero()
	if len(seqs) == 0 {
		return nil
	}
	xs := make([]float64, len(seqs))
	peak := 0.0
	for i, seq := range seqs {
		xs[i] = float64(seq)
		peak = max(peak, rtts[i])
	}
	return r.newChart("Round trip delay", "ms", peak*1.1, []chart.Series{
		chart.ContinuousSeries{
			Name:    "RTT",
			XValues: xs,
			YValues: rtts,
			Style: chart.Style{
				StrokeColor: drawing.ColorTransparent,
				DotWidth:    3,
				DotColor:    chart.ColorGreen,
			},
		},
	})
}

func (r *chartRenderer) newChart(title, unit string, yMax float64, series []chart.Series) *chart.Chart {
	if yMax <= 0 {
		yMax = 1
	}
	ch := &chart.Chart{
		Title:      title,
		Width:      r.options.Width,
		Height:     r.options.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  "Time (s)",
			Range: &chart.ContinuousRange{Min: 0, Max: models.LastSecond},
		},
		YAxis: chart.YAxis{
			Name:  unit,
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(ch)}
	return ch
}

func lineSeries(name string, values models.TimeSeries, color drawing.Color) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    name,
		XValues: models.Indices(),
		YValues: values.Values(),
		Style: chart.Style{
			StrokeColor: color,
			StrokeWidth: 2,
		},
	}
}
