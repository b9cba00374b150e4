// Package logger is a thin context-aware facade over zap.
package logger

import (
	"context"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var global atomic.Pointer[zap.Logger]

func init() { global.Store(zap.NewNop()) }

// Init builds the process logger. level is one of debug, info, warn, error.
func Init(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	Set(l)
	return l, nil
}

// Set replaces the process logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	global.Store(l)
}

// L returns the process logger.
func L() *zap.Logger { return global.Load() }

// Sync flushes buffered entries.
func Sync() { _ = L().Sync() }

// WithFields returns a context whose logger carries the given fields.
func WithFields(ctx context.Context, fields ...zap.Field) context.Context {
	return context.WithValue(ctx, ctxKey{}, from(ctx).With(fields...))
}

func from(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok {
			return l
		}
	}
	return L()
}

// FromContext returns the logger stored in ctx, or the process logger.
func FromContext(ctx context.Context) *zap.Logger { return from(ctx) }

func Debugf(ctx context.Context, format string, args ...any) {
	from(ctx).Sugar().Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	from(ctx).Sugar().Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	from(ctx).Sugar().Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	from(ctx).Sugar().Errorf(format, args...)
}

func Error(ctx context.Context, msg string, fields ...zap.Field) {
	from(ctx).Error(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	from(ctx).Warn(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zap.Field) {
	from(ctx).Info(msg, fields...)
}

func Fatal(ctx context.Context, err error) {
	from(ctx).Fatal("fatal", zap.Error(err))
}
