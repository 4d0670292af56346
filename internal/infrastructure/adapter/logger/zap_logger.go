package logger

import (
	coreport "github.com/amirhossein-jamali/fraud-screening/internal/domain/port/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls how the zap logger is built
type Options struct {
	Production bool
	Level      string
	CallerInfo bool
}

// ZapLogger implements the Logger interface using Zap
type ZapLogger struct {
	logger *zap.Logger
	atom   zap.AtomicLevel
	level  coreport.LogLevel
}

// NewZapLogger creates a new zap-based logger instance
func NewZapLogger(opts Options) coreport.Logger {
	var cfg zap.Config

	if opts.Production {
		// JSON encoder for log shipping
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.DisableCaller = !opts.CallerInfo

	level := coreport.ParseLogLevel(opts.Level)
	cfg.Level = zap.NewAtomicLevelAt(toZapLevel(level))

	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	return &ZapLogger{
		logger: zapLogger,
		atom:   cfg.Level,
		level:  level,
	}
}

// NewDefaultLogger creates a development logger at info level
func NewDefaultLogger() coreport.Logger {
	return NewZapLogger(Options{Level: "info", CallerInfo: true})
}

// SetLevel sets the minimum log level
func (l *ZapLogger) SetLevel(level coreport.LogLevel) {
	l.level = level
	l.atom.SetLevel(toZapLevel(level))
}

// GetLevel gets the current log level
func (l *ZapLogger) GetLevel() coreport.LogLevel {
	return l.level
}

// With returns a child logger carrying fields on every entry
func (l *ZapLogger) With(fields map[string]any) coreport.Logger {
	return &ZapLogger{
		logger: l.logger.With(mapToZapFields(fields)...),
		atom:   l.atom,
		level:  l.level,
	}
}

func toZapLevel(level coreport.LogLevel) zapcore.Level {
	switch level {
	case coreport.LogLevelDebug:
		return zap.DebugLevel
	case coreport.LogLevelWarn:
		return zap.WarnLevel
	case coreport.LogLevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// mapToZapFields converts a map of fields to zap fields
func mapToZapFields(fields map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

// Debug logs debug messages
func (l *ZapLogger) Debug(message string, fields map[string]any) {
	l.logger.Debug(message, mapToZapFields(fields)...)
}

// Info logs informational messages
func (l *ZapLogger) Info(message string, fields map[string]any) {
	l.logger.Info(message, mapToZapFields(fields)...)
}

// Warn logs warning messages
func (l *ZapLogger) Warn(message string, fields map[string]any) {
	l.logger.Warn(message, mapToZapFields(fields)...)
}

// Error logs error messages
func (l *ZapLogger) Error(message string, fields map[string]any) {
	l.logger.Error(message, mapToZapFields(fields)...)
}

// Flush ensures all buffered logs are written
func (l *ZapLogger) Flush() error {
	return l.logger.Sync()
}
