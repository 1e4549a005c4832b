// Package logctx carries a request-scoped zap logger through context.
package logctx

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

// Into stores l in ctx.
func Into(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From returns the logger stored in ctx, or the global zap logger.
func From(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok && l != nil {
		return l
	}
	return zap.L()
}

const (
	envDev  = "dev"
	envProd = "prod"
)

// New builds the process logger for env. local gets the console
// development logger, dev and prod get JSON output.
func New(env string) (*zap.Logger, error) {
	switch env {
	case envProd:
		return zap.NewProduction()
	case envDev:
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		return cfg.Build()
	default:
		return zap.NewDevelopment()
	}
}
