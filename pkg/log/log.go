// log — request-scoped *slog.Logger в context.Context.
//
// Middleware кладёт логгер (обогащённый request_id) через Into,
// бизнес-логика достаёт его через From. Если логгера в контексте нет,
// возвращается slog.Default().
package log

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into возвращает копию ctx с логгером l.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	if l == nil {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, l)
}

// From достаёт логгер из ctx либо slog.Default().
func From(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return slog.Default()
}

// With обогащает логгер из ctx атрибутами и кладёт результат обратно.
func With(ctx context.Context, args ...any) context.Context {
	return Into(ctx, From(ctx).With(args...))
}
