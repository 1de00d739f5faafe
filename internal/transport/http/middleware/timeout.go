package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	logctx "github.com/pribylovaa/go-blog/pkg/log"
)

// ErrRequestTimeout — причина отмены контекста, выставленного Timeout.
// Отличает собственный дедлайн сервиса от дедлайна вызывающей стороны.
var ErrRequestTimeout = errors.New("request timeout")

// Timeout ограничивает время обработки запроса.
//
// Особенности:
//   - d <= 0 — мидлвар no-op;
//   - существующий более ранний deadline не продлевается;
//   - запрос, переживший собственный deadline, логируется на Warn.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if dl, ok := r.Context().Deadline(); ok && time.Until(dl) <= d {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeoutCause(r.Context(), d, ErrRequestTimeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))

			if errors.Is(context.Cause(ctx), ErrRequestTimeout) {
				logctx.From(ctx).LogAttrs(ctx, slog.LevelWarn, "request_deadline_exceeded",
					slog.String("path", r.URL.Path),
					slog.Duration("timeout", d),
				)
			}
		})
	}
}
