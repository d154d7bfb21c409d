package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a nil-safe wrapper around zap. The zero value discards everything.
type Logger struct {
	zap *zap.Logger
}

// New builds a production logger at level writing to path.
// The terminal belongs to the TUI, so logs never go to stdout.
func New(level, path string) (*Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Nop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}

	config := zap.NewProductionConfig()
	config.Level = lvl
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	z, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &Logger{zap: z}, nil
}

// Nop returns a logger that drops every entry.
func Nop() *Logger { return &Logger{} }

// FromZap wraps an existing zap logger, e.g. an observer in tests.
func FromZap(z *zap.Logger) *Logger { return &Logger{zap: z} }

// Debug logs a message at the debug level with optional fields.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.writer().Debug(msg, fields...)
}

// Info logs a message at the info level with optional fields.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.writer().Info(msg, fields...)
}

// Warn logs a message at the warn level with optional fields.
func (l *Logger) Warn(msg string, fields ...zapcore.Field) {
	l.writer().Warn(msg, fields...)
}

// Error logs a message at the error level with optional fields.
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.writer().Error(msg, fields...)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	if l == nil || l.zap == nil {
		return nil
	}
	return l.zap.Sync()
}

func (l *Logger) writer() *zap.Logger {
	if l == nil || l.zap == nil {
		return zap.NewNop()
	}
	return l.zap
}
