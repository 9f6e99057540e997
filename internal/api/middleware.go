package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/feywood/tomekeeper/internal/platform/errors"
)

// requestLogger emits one structured line per request.
func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startedAt := time.Now()
			wrapped := &responseCapture{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", wrapped.statusCode).
				Int("bytes", wrapped.size).
				Dur("duration", time.Since(startedAt)).
				Msg("http request")
		})
	}
}

// recoverJSON converts a handler panic into a JSON 500 response.
func recoverJSON(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					logger.Error().
						Str("path", r.URL.Path).
						Interface("panic", recovered).
						Msg("panic recovered")
					writeErrorEnvelope(w, http.StatusInternalServerError,
						string(apperrors.CodeUnknown), "internal error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// responseCapture records the status and size written by downstream handlers.
type responseCapture struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (w *responseCapture) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseCapture) Write(body []byte) (int, error) {
	size, err := w.ResponseWriter.Write(body)
	w.size += size
	return size, err
}
