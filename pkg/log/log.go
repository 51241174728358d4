package log

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

var logger = zap.NewNop()

// InitLogger replaces the process logger. Debug mode switches to the
// development encoder and enables debug level.
func InitLogger(debug bool) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		return
	}
	logger = l
}

// SetLogger replaces the process logger with l.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Logger returns the underlying zap logger.
func Logger() *zap.Logger {
	return logger
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	logger.Fatal(msg, fields...)
}

func Sync() error {
	return logger.Sync()
}
