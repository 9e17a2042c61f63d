package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logTimestampLayout = "2006-01-02 15:04:05.000"

// NewApplicationLogger constructs a zap logger configured for human-readable
// console output. When logDirectoryPath is not empty the same output is
// additionally appended to the docgen log file inside that directory, which is
// created if missing.
func NewApplicationLogger(logDirectoryPath string) (*zap.Logger, error) {
	encoderConfiguration := zap.NewProductionEncoderConfig()
	encoderConfiguration.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfiguration.EncodeTime = zapcore.TimeEncoderOfLayout(logTimestampLayout)
	encoderConfiguration.CallerKey = ""
	encoderConfiguration.StacktraceKey = ""
	consoleEncoder := zapcore.NewConsoleEncoder(encoderConfiguration)

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), zapcore.InfoLevel),
	}

	if logDirectoryPath != EmptyString {
		if makeDirectoryError := os.MkdirAll(logDirectoryPath, 0o755); makeDirectoryError != nil {
			return nil, fmt.Errorf("create log directory %s: %w", logDirectoryPath, makeDirectoryError)
		}
		logFilePath := filepath.Join(logDirectoryPath, LogFileName)
		logFileHandle, openFileError := os.OpenFile(logFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if openFileError != nil {
			return nil, fmt.Errorf("open log file %s: %w", logFilePath, openFileError)
		}
		cores = append(cores, zapcore.NewCore(consoleEncoder, zapcore.Lock(zapcore.AddSync(logFileHandle)), zapcore.InfoLevel))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}
