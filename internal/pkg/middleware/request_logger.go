package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	log "library-service/internal/infrastructure/logger"
)

// responseWriter is a wrapper to capture response status and size
type responseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	size, err := w.ResponseWriter.Write(b)
	w.size += size
	return size, err
}

// RequestLogger middleware logs all HTTP requests and responses. It relies
// on chi's RequestID middleware running earlier in the chain to supply the
// request ID.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chimw.GetReqID(r.Context())

			contextLogger := logger.With(
				zap.String("request_id", requestID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr),
			)

			ctx := log.WithLogger(r.Context(), contextLogger)

			// Log request body for debugging (limit size to prevent memory issues)
			if r.Method != http.MethodGet && r.ContentLength > 0 && r.ContentLength < 10240 { // 10KB limit
				body, _ := io.ReadAll(r.Body)
				r.Body = io.NopCloser(bytes.NewBuffer(body))
				contextLogger = contextLogger.With(zap.ByteString("request_body", body))
			}

			contextLogger.Info("incoming request",
				zap.String("user_agent", r.UserAgent()),
				zap.Int64("content_length", r.ContentLength),
			)

			wrapped := &responseWriter{
				ResponseWriter: w,
				status:         http.StatusOK,
			}

			next.ServeHTTP(wrapped, r.WithContext(ctx))

			duration := time.Since(start)
			contextLogger.Info("request completed",
				zap.Int("status", wrapped.status),
				zap.Int("response_size", wrapped.size),
				zap.Duration("duration", duration),
			)

			if duration > 1*time.Second {
				contextLogger.Warn("slow request detected", zap.Duration("duration", duration))
			}
		})
	}
}
