package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/doeshing/tams-go/internal/ports"
)

// ZapLogger implements ports.Logger on a zap SugaredLogger. Output goes to stderr
// so command output on stdout stays clean.
type ZapLogger struct {
	log *zap.SugaredLogger
}

// New builds a logger at level. debug forces the debug level regardless of level.
func New(level string, debug bool) (*ZapLogger, error) {
	if debug {
		level = "debug"
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = !debug

	base, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return &ZapLogger{log: base.Sugar()}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *ZapLogger {
	return &ZapLogger{log: zap.NewNop().Sugar()}
}

// FromZap wraps an existing zap logger (tests use zaptest/observer).
func FromZap(l *zap.Logger) *ZapLogger {
	return &ZapLogger{log: l.Sugar()}
}

func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debugw(msg, keysAndValues(fields)...)
}

func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Infow(msg, keysAndValues(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warnw(msg, keysAndValues(fields)...)
}

func (l *ZapLogger) Error(msg string, err error, fields map[string]interface{}) {
	kv := keysAndValues(fields)
	if err != nil {
		kv = append(kv, "error", err)
	}
	l.log.Errorw(msg, kv...)
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.log.Sync()
}

func keysAndValues(fields map[string]interface{}) []interface{} {
	kv := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		kv = append(kv, k, v)
	}
	return kv
}

var _ ports.Logger = (*ZapLogger)(nil)
