package internal

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger builds a logger writing to w. Unknown levels fall back to info.
func NewLogger(w io.Writer, level string, json bool) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           lvl,
	})
	if json {
		logger.SetFormatter(log.JSONFormatter)
	}
	return logger
}

// InitLogging installs a stderr logger as the process default and returns it.
func InitLogging(level string, json bool) *log.Logger {
	logger := NewLogger(os.Stderr, level, json)
	log.SetDefault(logger)
	return logger
}
