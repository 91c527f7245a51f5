package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// Measurement ingest. The vendor firmware POSTs to a fixed /api path;
	// the optional key segment carries the per-device key. Health lives
	// outside /api so no key value can collide with a static route.
	r.Post("/api", s.handleMeasurement)
	r.Post("/api/{key}", s.handleMeasurement)

	r.Get("/healthz", s.handleHealth)

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
		"devices": s.bridge.DeviceCount(),
	})
}
