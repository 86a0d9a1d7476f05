// Package httpapi serves generation runs over HTTP: create a run, fetch its
// table, the values its columns share, the combination report and the
// co-occurrence graph.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter mounts h behind the request logger, panic recovery and CORS for
// the given origins.
func NewRouter(h *Handler, origins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "If-None-Match"},
		ExposedHeaders:   []string{"Link", "ETag", "Location"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	h.RegisterRoutes(r)

	return r
}
