package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

func withStr(ctx context.Context, key, value string) context.Context {
	child := FromContext(ctx).With().Str(key, value).Logger()
	return WithContext(ctx, child)
}

// WithComponent tags every entry logged through the returned context with
// the subsystem that produced it.
func WithComponent(ctx context.Context, component string) context.Context {
	return withStr(ctx, "component", component)
}

// WithWidget scopes the logger to one dock widget.
func WithWidget(ctx context.Context, name string) context.Context {
	return withStr(ctx, "widget", name)
}

// WithPerspective scopes the logger to one perspective.
func WithPerspective(ctx context.Context, name string) context.Context {
	return withStr(ctx, "perspective", name)
}
