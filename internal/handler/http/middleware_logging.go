package http

import (
	"net/http"
	"time"

	"github.com/mbastos/acervo/internal/logger"
)

// withLogging emits one structured access-log entry per request once the
// response is written. Request bodies are never logged: registration
// payloads carry credentials and identity numbers.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
