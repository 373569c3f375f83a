package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}

// WithCommand attaches a logger scoped to one front-end command.
func WithCommand(ctx context.Context, cmdID, cmd string) context.Context {
	l := FromContext(ctx)
	return WithContext(ctx, l.With("cmd_id", cmdID, "cmd", cmd))
}
