package logger

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = zap.NewNop()

// InitializeLogger sets up the global zap logger.
// isDevelopment switches to the console encoder; level accepts zap level names
// ("debug", "info", ...) or numeric levels ("10", "20", "30", "40", "50").
func InitializeLogger(isDevelopment bool, level string) error {
	var config zap.Config
	if isDevelopment {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.Encoding = "json"
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.EncoderConfig.MessageKey = "message"
		config.EncoderConfig.LevelKey = "level"
		config.EncoderConfig.CallerKey = "caller"
		config.EncoderConfig.StacktraceKey = "stacktrace"
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	config.Level.SetLevel(lvl)

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	log = built
	zap.RedirectStdLog(log)
	return nil
}

// ParseLevel maps a configured level to a zap level. Empty means info.
func ParseLevel(level string) (zapcore.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return zap.InfoLevel, nil
	}

	if n, err := strconv.Atoi(level); err == nil {
		switch {
		case n <= 10:
			return zap.DebugLevel, nil
		case n <= 20:
			return zap.InfoLevel, nil
		case n <= 30:
			return zap.WarnLevel, nil
		case n <= 40:
			return zap.ErrorLevel, nil
		default:
			return zap.FatalLevel, nil
		}
	}

	var lvl zapcore.Level
	if err := lvl.Set(strings.ToLower(level)); err != nil {
		return zap.InfoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// L returns the global logger instance.
func L() *zap.Logger {
	return log
}

// SetLogger replaces the global logger. Tests use it with zaptest observers.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	log = l
}

// Sync flushes any buffered log entries.
func Sync() error {
	return log.Sync()
}
