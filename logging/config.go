package logging

import (
	"os"
	"strings"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLevel  = "JUJU_PROMPT_LOG_LEVEL"
	EnvCaller = "JUJU_PROMPT_LOG_CALLER"
	EnvFormat = "JUJU_PROMPT_LOG_FORMAT"
	EnvFile   = "JUJU_PROMPT_LOG_FILE"
	EnvStderr = "JUJU_PROMPT_LOG_STDERR"
	EnvDebug  = "JUJU_PROMPT_DEBUG"
)

// Config defines how a logger is built.
type Config struct {
	// Level is the minimum log level to output (e.g., "debug", "info", "warn", "error").
	Level string

	// ReportCaller, if true, includes the file, line, and function name in the log output.
	ReportCaller bool

	// File configures logging to a file.
	File FileSinkConfig

	// Format configures the appearance of the log output.
	Format FormatConfig
}

// FileSinkConfig configures the file logging sink.
type FileSinkConfig struct {
	Enabled bool
	// Path is the full path to the log file.
	Path string
}

// FormatConfig controls the log output format.
type FormatConfig struct {
	// Preset can be "default" (rich text), "simple" (minimal text), or "json".
	Preset string
	// DisableTimestamp disables the timestamp from the "default" and "simple" formats.
	DisableTimestamp bool
	// DisableComponent disables the component name from the "default" and "simple" formats.
	DisableComponent bool
	// StructuredToStderr controls when structured logs are sent to stderr.
	// Can be "auto" (default), "always", or "never".
	StructuredToStderr string
}

// ConfigFromEnv builds a Config from JUJU_PROMPT_LOG_* variables.
func ConfigFromEnv() Config {
	return configFromLookup(os.Getenv)
}

func configFromLookup(getenv func(string) string) Config {
	cfg := Config{
		Level:        getenv(EnvLevel),
		ReportCaller: getenv(EnvCaller) == "true",
		Format: FormatConfig{
			Preset:             getenv(EnvFormat),
			StructuredToStderr: strings.ToLower(getenv(EnvStderr)),
		},
	}
	if getenv(EnvDebug) == "1" && cfg.Level == "" {
		cfg.Level = "debug"
	}
	if path := getenv(EnvFile); path != "" {
		cfg.File = FileSinkConfig{Enabled: true, Path: path}
	}
	return cfg
}
