package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// NewLogger creates and returns a pre-configured logger for a specific component.
// It uses a singleton pattern per component to avoid re-initializing.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	entry := Build(component, ConfigFromEnv(), os.Stderr)
	loggers[component] = entry
	return entry
}

// NewVerboseLogger replaces the cached logger for component with one at
// debug level. Debug level sends logs to stderr in "auto" mode even when it
// is a terminal; JUJU_PROMPT_LOG_STDERR=never still wins.
func NewVerboseLogger(component string, stderr io.Writer) *logrus.Entry {
	cfg := ConfigFromEnv()
	cfg.Level = "debug"
	entry := Build(component, cfg, stderr)

	loggersMu.Lock()
	defer loggersMu.Unlock()
	loggers[component] = entry
	return entry
}

// Build creates a logger for component from cfg without caching it. stderr
// receives structured logs when cfg allows it.
func Build(component string, cfg Config, stderr io.Writer) *logrus.Entry {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if cfg.Level == "" || err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	switch cfg.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{Config: cfg.Format})
	}

	var writers []io.Writer

	if cfg.File.Enabled && cfg.File.Path != "" {
		logFilePath := expandPath(cfg.File.Path)
		dir := filepath.Dir(logFilePath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Warnf("Failed to create log directory %s: %v", dir, err)
		} else {
			file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err == nil {
				writers = append(writers, file)
			} else {
				logger.Warnf("Failed to open log file %s: %v", logFilePath, err)
			}
		}
	}

	if shouldLogToStderr(cfg.Format.StructuredToStderr, logger.GetLevel(), stderr) {
		writers = append(writers, stderr)
	}

	switch len(writers) {
	case 0:
		// Nothing may leak into the prompt line.
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	return logger.WithField("component", component)
}

// shouldLogToStderr decides whether structured logs reach stderr. In "auto"
// mode they do only when debugging or when stderr is not a terminal, so an
// interactive prompt stays clean.
func shouldLogToStderr(mode string, level logrus.Level, stderr io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if level >= logrus.DebugLevel {
		return true
	}
	return !isTerminal(stderr)
}

// isTerminal reports whether w is an interactive terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// expandPath expands tilde in file paths
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
