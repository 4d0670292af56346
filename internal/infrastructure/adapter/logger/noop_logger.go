package logger

import (
	coreport "github.com/amirhossein-jamali/fraud-screening/internal/domain/port/core"
)

// NoopLogger discards everything. Used in tests and when logging is disabled.
type NoopLogger struct {
	level coreport.LogLevel
}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() coreport.Logger {
	return &NoopLogger{level: coreport.LogLevelInfo}
}

func (l *NoopLogger) SetLevel(level coreport.LogLevel) { l.level = level }

func (l *NoopLogger) GetLevel() coreport.LogLevel { return l.level }

func (l *NoopLogger) With(map[string]any) coreport.Logger { return l }

func (l *NoopLogger) Debug(string, map[string]any) {}

func (l *NoopLogger) Info(string, map[string]any) {}

func (l *NoopLogger) Warn(string, map[string]any) {}

func (l *NoopLogger) Error(string, map[string]any) {}

func (l *NoopLogger) Flush() error { return nil }
