// Package logger builds charmbracelet/log loggers shared by the service and CLI.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// New creates a timestamped text logger writing to stderr.
func New(prefix string) *log.Logger {
	return NewWithWriter(os.Stderr, prefix, log.GetLevel())
}

// NewWithWriter creates a text logger on w at the given level.
func NewWithWriter(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           level,
	})
}

// SetLevel applies level to the package-level charm logger, which library
// packages log through, and to each of loggers.
func SetLevel(level log.Level, loggers ...*log.Logger) {
	log.SetLevel(level)
	for _, l := range loggers {
		l.SetLevel(level)
	}
}

// ParseLevel maps a LOG_LEVEL style string to a level, defaulting to info.
func ParseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
