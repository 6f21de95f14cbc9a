// Package logging wraps charmbracelet/log for mdstyle.
//
// Loggers write to stderr so that report output on stdout stays parseable.
// The logger for a run travels in its context; see WithLogger and FromContext.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // process-wide fallback logger
var defaultLogger atomic.Pointer[log.Logger]

// ParseLevel converts a level name to a log.Level.
// Accepted names are debug, info, warn (or warning) and error, in any case.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel, nil
	case "info", "":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// New creates a stderr logger at level. Unknown levels fall back to info.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a logger writing to w at level.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "mdstyle",
		ReportTimestamp: false,
		ReportCaller:    false,
	})

	lvl, _ := ParseLevel(level)
	logger.SetLevel(lvl)

	return logger
}

// Default returns the process-wide logger, creating it at info level.
func Default() *log.Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}
	defaultLogger.CompareAndSwap(nil, New("info"))
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger *log.Logger) {
	defaultLogger.Store(logger)
}

// SetLevel updates the level of the process-wide logger.
// Unknown levels fall back to info.
func SetLevel(level string) {
	lvl, _ := ParseLevel(level)
	Default().SetLevel(lvl)
}
