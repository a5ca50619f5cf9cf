package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"clubops/internal/domain"
)

// principalRecorder lets the auth middleware report the verified principal
// back out to the request logger wrapping it, so mutation log lines carry the
// acting officer's role and club.
type principalRecorder struct {
	principal *domain.Principal
}

const recorderKey contextKey = "principalRecorder"

func recordPrincipal(ctx context.Context, p domain.Principal) {
	if rec, ok := ctx.Value(recorderKey).(*principalRecorder); ok {
		rec.principal = &p
	}
}

// responseWriter wraps http.ResponseWriter to capture status code and bytes written.
type responseWriter struct {
	http.ResponseWriter
	status  int
	written int64
}

func (w *responseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(b []byte) (n int, err error) {
	n, err = w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

// LoggingMiddleware logs each request with method, path, status, duration,
// and, when the request authenticated, the principal's role and club.
// It does not log request or response bodies.
func LoggingMiddleware(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &principalRecorder{}
		r = r.WithContext(context.WithValue(r.Context(), recorderKey, rec))
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		attrs := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if rec.principal != nil {
			attrs = append(attrs,
				"role", string(rec.principal.Role),
				"club_id", rec.principal.ClubID,
			)
		}
		logger.Info("request", attrs...)
	})
}
