package config

import (
	"os"
	"strings"
)

// LogLevel controls which status lines are printed
type LogLevel string

const (
	// LevelDebug prints everything, including debug lines
	LevelDebug LogLevel = "debug"
	// LevelInfo is the default
	LevelInfo LogLevel = "info"
	// LevelQuiet prints warnings and errors only
	LevelQuiet LogLevel = "quiet"
)

// String returns the level name
func (l LogLevel) String() string {
	return string(l)
}

// Environment variable names
const (
	EnvPalette     = "VENEER_PALETTE"
	EnvTemplateExt = "VENEER_TEMPLATE_EXT"
	EnvMetricsFile = "VENEER_METRICS_FILE"
	EnvForceWrite  = "VENEER_FORCE_WRITE"
	EnvLogLevel    = "LOG_LEVEL"
)

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// parseBoolOrDefault accepts the usual spellings of true and false
func parseBoolOrDefault(s string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return defaultValue
}
