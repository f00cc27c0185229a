package configs

// Config holds all configuration for the application.
type Config struct {
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Inputs      InputsConfig      `mapstructure:"inputs" validate:"required"`
	Analysis    AnalysisConfig    `mapstructure:"analysis" validate:"required"`
	Render      RenderConfig      `mapstructure:"render"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds the experiment results directory.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// InputsConfig names the raw logs, relative to the results directory.
type InputsConfig struct {
	RateLog   string `mapstructure:"rate_log" validate:"required"`
	PingLog   string `mapstructure:"ping_log"` // optional; no delay or loss output when empty
	Delimiter string `mapstructure:"delimiter" validate:"required,len=1"`
}

// AnalysisConfig selects the interfaces feeding each series.
type AnalysisConfig struct {
	Switch           string       `mapstructure:"switch" validate:"required"`
	HostPortMin      int          `mapstructure:"host_port_min" validate:"min=0"`
	Flows            []FlowConfig `mapstructure:"flows" validate:"dive"`
	AggregatePattern string       `mapstructure:"aggregate_pattern" validate:"required,regexp"`
	LossWindowStart  int          `mapstructure:"loss_window_start" validate:"min=0,max=120"`
}

// FlowConfig is one tracked flow, identified by the interface it leaves through.
type FlowConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	Pattern string `mapstructure:"pattern" validate:"required,regexp"`
}

// RenderConfig holds chart rendering configuration.
type RenderConfig struct {
	Enabled       bool    `mapstructure:"enabled"`
	BandwidthMbps float64 `mapstructure:"bandwidth_mbps" validate:"required_if=Enabled true,gte=0"` // per-link capacity used for y-axis limits
	Width         int     `mapstructure:"width" validate:"min=0"`
	Height        int     `mapstructure:"height" validate:"min=0"`
}

// MetricsConfig holds run metrics export configuration.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"` // optional; skipped when empty
}
