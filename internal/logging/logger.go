package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger writing to stderr with the given configuration
func New(cfg Config) zerolog.Logger {
	return newWithWriter(cfg, os.Stderr)
}

func newWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	return zerolog.New(formatWriter(cfg, w)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// formatWriter wraps w for console output unless cfg asks for JSON.
func formatWriter(cfg Config, w io.Writer) io.Writer {
	if cfg.Format == "json" {
		return w
	}
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: cfg.TimeFormat,
	}
}

// ParseLevel converts a level name to a zerolog level. Unknown names map to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// ConfigFromValues builds a Config from plain level/format strings.
// Unknown formats keep the console default.
func ConfigFromValues(level, format string) Config {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	switch format {
	case "json", "console":
		cfg.Format = format
	}
	return cfg
}

// ConfigFromEnv reads the configuration from the environment:
// FASTBROWSER_LOG_LEVEL: trace, debug, info, warn, error, disabled (default: info)
// FASTBROWSER_LOG_FORMAT: json, console (default: console)
func ConfigFromEnv() Config {
	return ConfigFromValues(os.Getenv(EnvLogLevel), os.Getenv(EnvLogFormat))
}

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel  = "FASTBROWSER_LOG_LEVEL"
	EnvLogFormat = "FASTBROWSER_LOG_FORMAT"
)
