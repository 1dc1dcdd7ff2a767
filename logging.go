package dynstring

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// NewLogger returns a logger writing to w at the level and in the format
// named by cfg. An unparseable level falls back to info.
func NewLogger(cfg Config, w io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	if cfg.LogFormat == LogFormatText {
		logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	} else {
		logger.SetFormatter(&log.JSONFormatter{})
	}
	return logger
}
