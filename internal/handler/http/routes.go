package http

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-post-hub/internal/handler/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.TraceID(h.logger), middleware.Logging, chimw.Recoverer)

	router.Get("/health", h.health)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/token", h.token)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/profile", h.getProfile)
		r.Put("/profile", h.updateProfile)
		r.Get("/users/me", h.getProfile)
		r.Put("/users/me", h.updateProfile)
	})

	router.MethodNotAllowed(middleware.CheckHTTPMethod(router))
	router.NotFound(middleware.NotFound)

	return router
}
