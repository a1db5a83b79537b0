package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	logctx "github.com/petershoe2005/GatherU-sub000/pkg/log"
)

// Logging кладёт логгер запроса в контекст и по завершении пишет запись "http".
// Уровень по статусу: 5xx — Error, 4xx — Warn, иначе Info.
// route — шаблон маршрута chi (например /api/listings/{id}/views), если он известен.
func Logging(l *slog.Logger) Middleware {
	if l == nil {
		l = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqLog := l
			if rid := RequestIDFrom(r.Context()); rid != "" {
				reqLog = reqLog.With(slog.String("request_id", rid))
			}

			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r.WithContext(logctx.Into(r.Context(), reqLog)))

			status := sw.statusOrOK()

			reqLog.LogAttrs(r.Context(), levelFor(status), "http",
				slog.String("method", r.Method),
				slog.String("route", routePattern(r)),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", sw.count),
				slog.Duration("dur", time.Since(start)),
			)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}

	return r.URL.Path
}
