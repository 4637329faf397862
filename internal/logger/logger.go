// Package logger provides a wrapper around logrus for structured logging.
package logger

import (
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// NewLogger creates a new configured logger instance.
func NewLogger(logLevel string) *logrus.Logger {
	logger := logrus.New()

	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s', defaulting to info", logLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// JSON in production, colored text for development
	if os.Getenv("ENVIRONMENT") == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	return logger
}

// WithRun returns an entry tagged with a pipeline run ID so every line from
// one run can be correlated.
func WithRun(logger *logrus.Logger, runID uuid.UUID) *logrus.Entry {
	return logger.WithField("run_id", runID.String())
}
