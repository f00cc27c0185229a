package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `log:
  level: debug
file_storage:
  root_dir: ./results
inputs:
  rate_log: bwmng.txt
  ping_log: ping.txt
  delimiter: ","
analysis:
  switch: s1
  host_port_min: 4
  aggregate_pattern: "s1-eth[4-6]"
  loss_window_start: 0
  flows:
    - name: Iperf1
      pattern: s1-eth4
    - name: Iperf2
      pattern: s1-eth5
render:
  enabled: true
  bandwidth_mbps: 10
metrics:
  textfile: ./results/experiment.prom
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.yml")
	require.NoError(t, err)
	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "./results", cfg.FileStorage.RootDir)
	assert.Equal(t, "bwmng.txt", cfg.Inputs.RateLog)
	assert.Equal(t, "ping.txt", cfg.Inputs.PingLog)
	assert.Equal(t, ",", cfg.Inputs.Delimiter)
	assert.Equal(t, "s1", cfg.Analysis.Switch)
	assert.Equal(t, 4, cfg.Analysis.HostPortMin)
	assert.Equal(t, "s1-eth[4-6]", cfg.Analysis.AggregatePattern)
	require.Len(t, cfg.Analysis.Flows, 2)
	assert.Equal(t, FlowConfig{Name: "Iperf1", Pattern: "s1-eth4"}, cfg.Analysis.Flows[0])
	assert.True(t, cfg.Render.Enabled)
	assert.Equal(t, 10.0, cfg.Render.BandwidthMbps)
	assert.Equal(t, 1200, cfg.Render.Width)
	assert.Equal(t, "./results/experiment.prom", cfg.Metrics.Textfile)
}

func TestLoadConfig_DefaultsFillMissingSections(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "log:\n  level: warn\n"))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "./results", cfg.FileStorage.RootDir)
	assert.Equal(t, "bwmng.txt", cfg.Inputs.RateLog)
	assert.Empty(t, cfg.Inputs.PingLog)
	assert.Equal(t, ",", cfg.Inputs.Delimiter)
	assert.Equal(t, 4, cfg.Analysis.HostPortMin)
	assert.True(t, cfg.Render.Enabled)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("EXPAN_FILE_STORAGE_ROOT_DIR", "/data/run-7")

	cfg, err := LoadConfig(writeConfig(t, validConfig))
	require.NoError(t, err)
	assert.Equal(t, "/data/run-7", cfg.FileStorage.RootDir)
}

func TestLoadConfig_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantMsg string
	}{
		{
			name: "delimiter longer than one character",
			config: `inputs:
  delimiter: ",;"
`,
			wantMsg: "inputs.delimiter (len=1)",
		},
		{
			name: "invalid aggregate pattern",
			config: `analysis:
  aggregate_pattern: "s1-eth[4-"
`,
			wantMsg: "analysis.aggregatepattern (invalid pattern",
		},
		{
			name: "flow without pattern",
			config: `analysis:
  flows:
    - name: Iperf1
`,
			wantMsg: "analysis.flows[0].pattern (required)",
		},
		{
			name: "loss window start beyond horizon",
			config: `analysis:
  loss_window_start: 121
`,
			wantMsg: "analysis.losswindowstart (max=120)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.config))
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig("./does-not-exist.yml")
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
