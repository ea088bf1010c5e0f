package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/phonestore-api/internal/api/shared"
	"github.com/phrazzld/phonestore-api/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context and response
// headers, and stores a request-scoped logger carrying it. It should be
// applied early in the middleware chain so that every handler and store
// call logs with the same trace ID.
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			if reqID := chimiddleware.GetReqID(ctx); reqID != "" {
				log = log.With(slog.String("request_id", reqID))
			}
			ctx = logger.WithLogger(ctx, log)

			w.Header().Set(shared.TraceIDHeader, traceID)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(ctx))

			log.Info("request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)))
		})
	}
}
