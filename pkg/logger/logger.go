package logger

import (
	"go.uber.org/zap"
)

var log *zap.Logger

// Init builds the global logger for the given environment.
// "production" gets JSON output, everything else gets the
// human-readable development config.
func Init(env string) error {
	var err error

	if env == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(log)
	return nil
}

// L returns the configured logger, falling back to a no-op
// logger so library code can log before Init runs (tests).
func L() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

func Info(msg string, fields ...zap.Field) {
	L().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	L().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	L().Error(msg, fields...)
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
