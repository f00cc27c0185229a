package configs

import (
	"fmt"
	"strings"

	"experiment-analytics/internal/shared/validators"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. EXPAN_FILE_STORAGE_ROOT_DIR.
const EnvPrefix = "EXPAN"

// LoadConfig reads configuration from file, applies defaults and environment
// overrides, and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("file_storage.root_dir", "./results")
	v.SetDefault("inputs.rate_log", "bwmng.txt")
	v.SetDefault("inputs.ping_log", "")
	v.SetDefault("inputs.delimiter", ",")
	v.SetDefault("analysis.switch", "s1")
	v.SetDefault("analysis.host_port_min", 4)
	v.SetDefault("analysis.aggregate_pattern", "s1-eth[4-6]")
	v.SetDefault("render.enabled", true)
	v.SetDefault("render.bandwidth_mbps", 10.0)
	v.SetDefault("render.width", 1200)
	v.SetDefault("render.height", 600)
	v.SetDefault("metrics.textfile", "")
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// "Config.Analysis.Flows[0].Pattern" -> "analysis.flows[0].pattern"
	if ns := e.StructNamespace(); ns != "" {
		parts := strings.Split(ns, ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	switch tag {
	case "required", "required_if":
		return fmt.Sprintf("%s (required)", field)
	case "min", "max", "len", "gte":
		return fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	case validators.TagRegexp:
		return fmt.Sprintf("%s (invalid pattern %q)", field, e.Value())
	default:
		return fmt.Sprintf("%s (%s)", field, tag)
	}
}
