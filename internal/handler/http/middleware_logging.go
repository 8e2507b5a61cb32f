package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log entry per request. 5xx responses are
// logged at error level, 4xx at warn, the rest at info.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		snapshot := lw.data()
		log.WithLevel(accessLogLevel(snapshot.status)).
			Str("uri", uri).
			Str("method", method).
			Int("status", snapshot.status).
			Dur("duration", time.Since(start)).
			Int("size", snapshot.size).
			Send()
	})
}

func accessLogLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
