package http

import (
	"net/http"

	"github.com/MKhiriev/resourcekit/internal/utils"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader   = "X-Trace-ID"
	requestIDHeader = "X-Request-ID"

	// maxTraceIDLength caps client supplied ids before they reach the logs.
	maxTraceIDLength = 128
)

var traceIDs = utils.NewUUIDGenerator()

// withTraceID tags the request with a trace id and attaches a child logger
// carrying it to the request context. The id is taken from X-Trace-ID, then
// X-Request-ID, and generated when neither is usable. It is echoed back in
// the X-Trace-ID response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := incomingTraceID(r)
		if traceID == "" {
			traceID = traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func incomingTraceID(r *http.Request) string {
	for _, header := range []string{traceIDHeader, requestIDHeader} {
		if id := r.Header.Get(header); id != "" && len(id) <= maxTraceIDLength {
			return id
		}
	}
	return ""
}
