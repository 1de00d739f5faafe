package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	apierrors "github.com/pribylovaa/go-blog/internal/transport/http/errors"
	logctx "github.com/pribylovaa/go-blog/pkg/log"
)

var errPanic = errors.New("panic recovered")

// Recover превращает panic хендлера в 500/internal с единым конвертом ошибки.
// Причина и стек уходят только в лог; http.ErrAbortHandler пробрасывается дальше,
// чтобы net/http оборвал соединение как задумано.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelError, "handler_panic",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("reason", rec),
					slog.String("stack", string(debug.Stack())),
				)

				apierrors.WriteError(w, r, errPanic)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
