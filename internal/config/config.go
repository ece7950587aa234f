package config

import (
	"errors"
	"strings"
)

// Config holds the settings of one veneer invocation
type Config struct {
	PaletteFile string
	TemplateExt string
	MetricsFile string
	ForceWrite  bool
	LogLevel    LogLevel
}

// Load reads configuration from the environment with sensible defaults.
// Call godotenv.Load first to pick up a .env file.
func Load() *Config {
	return &Config{
		PaletteFile: getEnvOrDefault(EnvPalette, "veneer.toml"),
		TemplateExt: getEnvOrDefault(EnvTemplateExt, ".tmpl"),
		MetricsFile: getEnvOrDefault(EnvMetricsFile, ""),
		ForceWrite:  parseBoolOrDefault(getEnvOrDefault(EnvForceWrite, ""), false),
		LogLevel:    LogLevel(strings.ToLower(getEnvOrDefault(EnvLogLevel, string(LevelInfo)))),
	}
}

// Validate checks the configuration for errors and returns helpful messages.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.PaletteFile) == "" {
		errs = append(errs, "palette file is required")
	}
	if c.TemplateExt != "" && !strings.HasPrefix(c.TemplateExt, ".") {
		errs = append(errs, "template extension must start with '.': "+c.TemplateExt)
	}
	switch c.LogLevel {
	case LevelDebug, LevelInfo, LevelQuiet:
	default:
		errs = append(errs, "log level must be debug, info or quiet: "+c.LogLevel.String())
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}

	return nil
}
