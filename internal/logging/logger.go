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
	Format     string // "json", "console" or "text" (console without colors)
	TimeFormat string
	Output     io.Writer // defaults to os.Stderr
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output io.Writer = out
	switch cfg.Format {
	case "console", "text":
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    cfg.Format == "text",
		}
	case "json":
		// JSON is the default zerolog format
		output = out
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a config/env level name to a zerolog level.
// Unknown values fall back to info.
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

// NewFromConfigValues builds a logger from the raw strings found in config files.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	switch format {
	case "json", "console", "text":
		cfg.Format = format
	}
	return New(cfg)
}

// NewFileLogger builds a logger writing plain text to a rotating file in dir.
// The caller closes the returned rotator.
func NewFileLogger(level string, rc RotatorConfig) (zerolog.Logger, *LogRotator, error) {
	rotator, err := NewLogRotator(rc)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	cfg.Format = "text"
	cfg.Output = rotator
	return New(cfg), rotator, nil
}

// NewFromEnv creates a logger based on environment variables
// DOCKYARD_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// DOCKYARD_LOG_FORMAT: json, console, text (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("DOCKYARD_LOG_LEVEL"), os.Getenv("DOCKYARD_LOG_FORMAT"))
}
