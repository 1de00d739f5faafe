package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	logctx "github.com/pribylovaa/go-blog/pkg/log"
)

// Logging кладёт в контекст логгер запроса (с request_id, если RequestID стоит раньше)
// и после ответа пишет одну запись "http".
//
// Уровень: Error для 5xx, иначе Info. Шаблон маршрута chi попадает в route,
// когда запрос дошёл до роутера.
func Logging(l *slog.Logger) Middleware {
	if l == nil {
		l = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lg := l
			if rid := RequestIDFrom(r.Context()); rid != "" {
				lg = lg.With(slog.String("request_id", rid))
			}
			r = r.WithContext(logctx.Into(r.Context(), lg))

			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)

			attrs := make([]slog.Attr, 0, 6)
			attrs = append(attrs,
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.Status()),
				slog.Duration("dur", time.Since(start)),
				slog.Int("bytes", sw.count),
			)
			if rc := chi.RouteContext(r.Context()); rc != nil {
				if pattern := rc.RoutePattern(); pattern != "" {
					attrs = append(attrs, slog.String("route", pattern))
				}
			}

			level := slog.LevelInfo
			if sw.Status() >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			lg.LogAttrs(r.Context(), level, "http", attrs...)
		})
	}
}
