package utils

import (
	"go.uber.org/zap"
)

var Logger *zap.Logger = zap.NewNop()

// InitLogger builds the global structured logger. Production encoding by
// default; pass "debug" for development output.
func InitLogger(level string) error {
	var (
		logger *zap.Logger
		err    error
	)
	if level == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Logger = logger
	return nil
}

// SyncLogger flushes buffered log entries; safe to call at shutdown.
func SyncLogger() {
	_ = Logger.Sync()
}

func LogInfo(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

func LogWarn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

func LogError(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}
