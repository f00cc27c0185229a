package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"experiment-analytics/internal/app"
	"experiment-analytics/internal/models"
	"experiment-analytics/internal/shared/configs"
	"experiment-analytics/internal/shared/loggers"
	"experiment-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeResults writes a rate log with two 10 Mbit/s flows over seconds
// 0..10 (second 10 being the trailing one) and a ping log answering
// sequences 0..9.
func writeResults(t *testing.T, root string) {
	t.Helper()

	var rate strings.Builder
	for s := 0; s <= 10; s++ {
		for _, iface := range []string{"s1-eth1", "s1-eth4", "s1-eth5"} {
			fmt.Fprintf(&rate, "%d,%s,1250000.00,0.00,1250000.00,0,1250000,850.00,0.00,850.00,850,0\n", 1480067388+s, iface)
		}
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "bwmng.txt"), []byte(rate.String()), 0644))

	var ping strings.Builder
	ping.WriteString("PING 10.0.0.4 (10.0.0.4) 56(84) bytes of data.\n")
	for seq := 0; seq < 10; seq++ {
		fmt.Fprintf(&ping, "64 bytes from 10.0.0.4: icmp_seq=%d ttl=64 time=0.%03d ms\n", seq, 40+seq)
	}
	ping.WriteString("\n--- 10.0.0.4 ping statistics ---\n")
	ping.WriteString("rtt min/avg/max/mdev = 0.040/0.044/0.049/0.003 ms\n")
	require.NoError(t, os.WriteFile(filepath.Join(root, "ping.txt"), []byte(ping.String()), 0644))
}

func newConfig(root string) *configs.Config {
	return &configs.Config{
		Log:         configs.LogConfig{Level: "debug"},
		FileStorage: configs.FileStorageConfig{RootDir: root},
		Inputs: configs.InputsConfig{
			RateLog:   "bwmng.txt",
			PingLog:   "ping.txt",
			Delimiter: ",",
		},
		Analysis: configs.AnalysisConfig{
			Switch:      "s1",
			HostPortMin: 4,
			Flows: []configs.FlowConfig{
				{Name: "Iperf1", Pattern: "s1-eth4"},
				{Name: "Iperf2", Pattern: "s1-eth5"},
				{Name: "Iperf3", Pattern: "s1-eth6"},
			},
			AggregatePattern: "s1-eth[4-6]",
			LossWindowStart:  0,
		},
		Render: configs.RenderConfig{Enabled: true, BandwidthMbps: 10, Width: 600, Height: 300},
	}
}

func newApp(t *testing.T, config *configs.Config) (*app.App, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	logger, err := loggers.NewWithWriter(config.Log.Level, &logs)
	require.NoError(t, err)
	application, err := app.NewWithLogger(config, logger)
	require.NoError(t, err)
	return application, &logs
}

func TestRun_WritesReportAndCharts(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeResults(t, root)
	config := newConfig(root)
	config.Metrics.Textfile = filepath.Join(t.TempDir(), "experiment.prom")
	application, logs := newApp(t, config)

	result, err := application.Run(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, result.RunID)
	assert.Equal(t, "reports/"+result.RunID+".json", result.ReportKey)
	assert.Len(t, result.ChartKeys, 4)
	for _, key := range result.ChartKeys {
		assert.FileExists(t, filepath.Join(root, key))
	}

	data, err := os.ReadFile(filepath.Join(root, result.ReportKey))
	require.NoError(t, err)
	var report models.ExperimentReport
	require.NoError(t, json.Unmarshal(data, &report))

	assert.Equal(t, result.RunID, report.RunID)
	require.Len(t, report.Flows, 3)
	assert.InDelta(t, 10.0, report.Flows[0].Speed[0], 1e-9)
	assert.Equal(t, models.TimeSeries{}, report.Flows[2].Speed)
	assert.InDelta(t, 20.0, report.AggregateSpeed[9], 1e-9)
	assert.Zero(t, report.AggregateSpeed[10])
	assert.InDelta(t, 200.0, report.TotalThroughput[models.LastSecond], 1e-9)
	require.NotNil(t, report.Delay)
	assert.InDelta(t, 20.0/30.0, report.Delay.LossRate, 1e-12)
	assert.Equal(t, 10, report.Summary.Replies)

	assert.Contains(t, logs.String(), `"run_id":"`+result.RunID+`"`)
	textfile, err := os.ReadFile(config.Metrics.Textfile)
	require.NoError(t, err)
	assert.Contains(t, string(textfile), "experiment_analytics_run_runs_total")
}

func TestRun_RenderDisabled(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeResults(t, root)
	config := newConfig(root)
	config.Render.Enabled = false
	config.Inputs.PingLog = ""
	application, _ := newApp(t, config)

	result, err := application.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, result.ChartKeys)
	assert.NoDirExists(t, filepath.Join(root, "charts"))
	assert.FileExists(t, filepath.Join(root, result.ReportKey))
}

func TestRun_MissingLogWritesNothing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		modify   func(config *configs.Config)
		wantCode string
		wantExit int
	}{
		{
			name:     "missing rate log",
			modify:   func(config *configs.Config) { config.Inputs.RateLog = "missing.txt" },
			wantCode: "READ_9000",
			wantExit: svcerrors.ExitCodeIO,
		},
		{
			name:     "missing ping log",
			modify:   func(config *configs.Config) { config.Inputs.PingLog = "missing.txt" },
			wantCode: "READ_9000",
			wantExit: svcerrors.ExitCodeIO,
		},
		{
			name:     "wrong delimiter",
			modify:   func(config *configs.Config) { config.Inputs.Delimiter = ";" },
			wantCode: "READ_1000",
			wantExit: svcerrors.ExitCodeParse,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			writeResults(t, root)
			config := newConfig(root)
			tt.modify(config)
			application, _ := newApp(t, config)

			result, err := application.Run(context.Background())

			assert.Nil(t, result)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok, "expected ServiceError")
			assert.Equal(t, tt.wantCode, svcErr.Code)
			assert.Equal(t, tt.wantExit, svcerrors.ExitCodeOf(err))
			assert.NoDirExists(t, filepath.Join(root, "reports"))
			assert.NoDirExists(t, filepath.Join(root, "charts"))
		})
	}
}

func TestRerender(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeResults(t, root)
	config := newConfig(root)
	config.Render.Enabled = false
	application, _ := newApp(t, config)

	first, err := application.Run(context.Background())
	require.NoError(t, err)

	config.Render.Enabled = true
	application, _ = newApp(t, config)
	result, err := application.Rerender(context.Background(), first.RunID)
	require.NoError(t, err)
	assert.Len(t, result.ChartKeys, 4)
	assert.Empty(t, result.ReportKey)

	_, err = application.Rerender(context.Background(), "01J9Z5X6C3M6R8Y7ZB8TQ2KQ4N")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "STO_1000", svcErr.Code)
}
