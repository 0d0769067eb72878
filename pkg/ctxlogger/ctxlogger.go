package ctxlogger

import (
	"context"

	"github.com/IsaacDSC/pokedex/pkg/logs"
)

type loggerKey struct{}

// WithLogger returns a context carrying the given request-scoped logger.
func WithLogger(ctx context.Context, logger *logs.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger returns the logger stored in ctx, falling back to the default
// logger when none was attached.
func GetLogger(ctx context.Context) *logs.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*logs.Logger); ok {
		return logger
	}

	return logs.Default()
}
