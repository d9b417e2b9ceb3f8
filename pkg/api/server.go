// Package api serves a decoded GDB file over HTTP.
//
// The server exposes the decoded collections read-only under /api/v1,
// with optional X-API-Key authentication and Prometheus metrics on
// /metrics.
package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StartServer starts the HTTP server with all routes configured. It
// blocks until the listener fails.
func StartServer(src Source, config ServerConfig) error {
	metrics := NewMetrics()
	server := NewServer(src, config, metrics)

	r := Router(server, config, metrics)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	log.Printf("Starting gdbkit API server on %s", addr)
	log.Printf("Metrics available at: http://%s/metrics", addr)
	return http.ListenAndServe(addr, r)
}

// Router builds the chi router for the given server. Split out from
// StartServer so tests can drive it with httptest.
func Router(server *Server, config ServerConfig, metrics *Metrics) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if config.APIKey != "" {
			r.Use(metrics.InstrumentAuthMiddleware(apiKeyMiddleware(config.APIKey)))
		}

		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))
		r.Get("/info", metrics.InstrumentHandler("GET", "/api/v1/info", server.handleInfo))
		r.Get("/waypoints", metrics.InstrumentHandler("GET", "/api/v1/waypoints", server.handleWaypoints))
		r.Get("/tracks", metrics.InstrumentHandler("GET", "/api/v1/tracks", server.handleTracks))
	})

	return r
}
