package middleware

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/utils"
)

// TraceID reuses the X-Trace-ID request header or generates a new id. The id
// is stored in the request context, bound to a child logger of log, and
// echoed in the response header.
func TraceID(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(utils.TraceIDHeader)
			if traceID == "" {
				traceID = utils.NewTraceID()
			}

			l := log.GetChildLogger()
			l.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("trace_id", traceID)
			})

			ctx := context.WithValue(r.Context(), utils.TraceIDCtxKey, traceID)
			r = r.WithContext(l.WithContext(ctx))

			w.Header().Set(utils.TraceIDHeader, traceID)
			next.ServeHTTP(w, r)
		})
	}
}
