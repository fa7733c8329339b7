package logger

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// RequestLogging returns the standard logging middleware for all http requests.
//
// A request-scoped logger carrying the request_id is attached to the context so
// that handlers can retrieve it with zerolog.Ctx(r.Context()).
func RequestLogging(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := middleware.GetReqID(r.Context())
			reqLogger := logger.With().
				Str("request_id", requestID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Logger()

			ctx := reqLogger.WithContext(r.Context())

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLogger.Info().
				Int("status", ww.Status()).
				Dur("duration_ms", time.Since(start)).
				Int("bytes_written", ww.BytesWritten()).
				Msg("Request completed")
		})
	}
}
