package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// WithContext pins a logger to the context so everything beneath the call
// logs through it.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = slog.Default()
	}
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the pinned logger, falling back to the process
// default when the context carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}

// With folds attributes onto the contextual logger and pins the enriched
// logger back. Attributes accumulate across nested calls, so an outbound
// request ID stamped here shows up on every log line below it.
func With(ctx context.Context, args ...any) context.Context {
	return WithContext(ctx, FromContext(ctx).With(args...))
}
