package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/fabric-bridge/internal/logger"
	"github.com/go-chi/chi/v5"
)

// withLogging writes one access log line per request. The route pattern is
// logged next to the raw URI so requests for different node ids group
// together.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		var route string
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}

		logger.FromRequest(r).Info().
			Str("uri", r.RequestURI).
			Str("route", route).
			Str("method", r.Method).
			Int("status", lw.statusCode()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
