package http

import (
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/blaze-intelligence/scoreboard-service/internal/http/handlers"
)

// NewRouter registers the scoreboard routes. CORS is wide open for GETs; the
// API is read-only and consumed by browser dashboards on other origins.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", handler.Health)
	r.Get("/api/scoreboard", handler.Index)
	r.Get("/api/scoreboard/{sport}", handler.Sport)

	return r
}
