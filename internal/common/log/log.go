// Package log is a thin context-aware wrapper around zap. Loggers carry the
// correlation id injected by the HTTP middleware or the job runner, so every
// line emitted during a request or a posting run can be tied back to it.
package log

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

var (
	String = zap.String
	Int    = zap.Int
	Any    = zap.Any
	Err    = zap.Error
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

type ctxKeyCorrelationID struct{}

// Init builds the process-wide logger. Production config for deployed
// environments, development config otherwise.
func Init(appName, env, level string) error {
	cfg := zap.NewDevelopmentConfig()
	if env == "production" || env == "prod" || env == "uat" {
		cfg = zap.NewProductionConfig()
	}

	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	mu.Lock()
	logger = l.Named(appName)
	mu.Unlock()
	return nil
}

// InitForTest swaps in a no-op logger. Call it from TestMain.
func InitForTest() {
	mu.Lock()
	logger = zap.NewNop()
	mu.Unlock()
}

func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = logger.Sync()
}

// SetCorrelationID stores a correlation id on the context for later log calls.
func SetCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyCorrelationID{}, id)
}

// GetCorrelationID returns the correlation id stored on the context, if any.
func GetCorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyCorrelationID{}).(string)
	return id
}

func fromCtx(ctx context.Context) *zap.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()

	if id := GetCorrelationID(ctx); id != "" {
		l = l.With(zap.String("correlation-id", id))
	}
	return l
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	fromCtx(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	fromCtx(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	fromCtx(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	fromCtx(ctx).Error(msg, fields...)
}

func Fatal(ctx context.Context, msg string, fields ...Field) {
	fromCtx(ctx).Fatal(msg, fields...)
}

func Debugf(ctx context.Context, format string, args ...any) {
	fromCtx(ctx).Sugar().Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	fromCtx(ctx).Sugar().Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	fromCtx(ctx).Sugar().Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	fromCtx(ctx).Sugar().Errorf(format, args...)
}

func Fatalf(ctx context.Context, format string, args ...any) {
	fromCtx(ctx).Sugar().Fatalf(format, args...)
}
