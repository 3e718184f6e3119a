// logger.go - Structured logging for the proving service
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps the service loggers: a leveled main logger and an optional
// audit logger for security-relevant events.
type Logger struct {
	log      zerolog.Logger
	audit    zerolog.Logger
	hasAudit bool
	files    []*os.File
}

// NewLogger creates a new logger instance
func NewLogger(level string, logFile string, auditFile string) (*Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	l := &Logger{}
	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stdout}}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.files = append(l.files, f)
		writers = append(writers, f)
	}
	l.log = zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(lvl).With().Timestamp().Logger()

	if auditFile != "" {
		f, err := os.OpenFile(auditFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open audit file: %w", err)
		}
		l.files = append(l.files, f)
		l.audit = zerolog.New(f).With().Timestamp().Logger()
		l.hasAudit = true
	}
	return l, nil
}

// Close closes the logger and its files
func (l *Logger) Close() error {
	var first error
	for _, f := range l.files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log.Info().Msgf(format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.log.Fatal().Msgf(format, args...)
}

// Audit logs an audit event with structured details
func (l *Logger) Audit(event string, details map[string]interface{}) {
	if l.hasAudit {
		l.audit.Info().Str("event", event).Fields(details).Msg("audit")
	}
}
