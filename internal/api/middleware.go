package api

import (
	"log/slog"
	"net/http"
	"time"
)

// RequestLogger logs incoming requests and warns when handling exceeds
// the soft response-time budget. The budget is observability only; the
// request is never aborted.
func RequestLogger(log *slog.Logger, budget time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: 200}
			next.ServeHTTP(sw, r)
			elapsed := time.Since(start)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration_ms", elapsed.Milliseconds(),
			)
			if budget > 0 && elapsed > budget {
				log.Warn("response time exceeded soft budget",
					"path", r.URL.Path,
					"elapsed", elapsed.Round(time.Millisecond),
					"budget", budget,
				)
			}
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
