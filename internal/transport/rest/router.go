package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/partsdb-backend/internal/transport/middleware"
)

// NewRouter mounts every endpoint. global wraps all routes, including the
// probes; the /api routes additionally require a logged-in user.
func NewRouter(parts *PartHandler, health *HealthHandler, global middleware.Middleware) http.Handler {
	r := chi.NewRouter()
	if global != nil {
		r.Use(global)
	}

	r.Get("/live", health.Live)
	r.Get("/ready", health.Ready)
	r.Get("/health", health.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireLogin)

		r.Post("/part", parts.Create)
		r.Get("/part/{id}", parts.Get)
		r.Put("/part/{id}", parts.Update)
		r.Delete("/part/{id}", parts.Delete)
		r.Get("/part/{id}/history", parts.History)
		r.Post("/part/{id}/deletionRequest", parts.RequestDeletion)

		r.Get("/parts", parts.List)
		r.Get("/parts/count", parts.Count)

		r.Get("/attachment/{id}", parts.Attachment)

		r.With(middleware.RequireAdmin).Get("/partDeletionRequests", parts.ListDeletionRequests)
	})

	return r
}
