package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logFilePermissions restricts the log file to the invoking user.
const logFilePermissions = 0o640

// WithFileSink is an option that tees every record at debug level and above
// into the file at path, regardless of the console level. The file receives
// the plain console format without color codes.
//
//nolint:ireturn,nolintlint // Returning zap.Option is intended for zap integration.
func WithFileSink(path string) (zap.Option, error) {
	file, err := os.OpenFile(filepath.Clean(path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	fileCore := zapcore.NewCore(
		newConsoleEncoder(false),
		zapcore.AddSync(file),
		zapcore.DebugLevel,
	)

	return zap.WrapCore(
		func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, fileCore)
		}), nil
}
