package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes scoped to the token subject
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.bodyHashing).Post("/api/sync", h.sync)
		r.Get("/api/data", h.getAll)
		r.Get("/api/data/", h.getAll)
		r.Get("/api/data/{key}", h.get)
		r.Delete("/api/data/{key}", h.delete)
	})

	router.MethodNotAllowed(methodNotServed)

	return router
}
