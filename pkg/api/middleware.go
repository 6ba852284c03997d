package api

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/gestaolivre/brtypes/pkg/i18n"
	"github.com/gestaolivre/brtypes/pkg/logger"
)

// requestLogger logs one record per request. The request id is added by the
// logger's context extractors.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}
			log.LogAttrs(r.Context(), level, "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				logger.Status(status),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}

// recoverer turns a panic into a 500 JSON response and logs it.
func recoverer(log *slog.Logger, tr *i18n.Translator) func(http.Handler) http.Handler {
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
				log.ErrorContext(r.Context(), "panic serving request", slog.Any("panic", rec))
				_ = jsonError(tr, i18n.GetLocale(r.Context()), fmt.Errorf("panic: %v", rec)).Render(w, r)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// rateLimit limits every client IP to limit requests per window with a
// sliding window counter.
func rateLimit(limit int, window time.Duration, tr *i18n.Translator, m *Metrics) func(http.Handler) http.Handler {
	return httprate.Limit(
		limit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			m.limited.Inc()
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(window.Seconds()))))
			_ = jsonError(tr, i18n.GetLocale(r.Context()), HTTPError{
				Status: http.StatusTooManyRequests,
				Key:    "errors.rate_limited",
			}).Render(w, r)
		}),
	)
}
