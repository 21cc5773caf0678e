package gateway

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-post-hub/internal/handler/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.TraceID(h.logger), middleware.Logging, chimw.Recoverer)

	router.Get("/health", h.health)

	// account routes, relayed to the users service
	router.Group(func(r chi.Router) {
		r.Post("/register", h.proxy)
		r.Post("/login", h.proxy)
		r.Post("/token", h.proxy)

		r.Get("/profile", h.proxy)
		r.Put("/profile", h.proxy)
		r.Get("/users/me", h.proxy)
		r.Put("/users/me", h.proxy)
	})

	// post routes, authenticated here and served by the posts service
	router.Route("/posts", func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/", h.createPost)
		r.Get("/", h.listPosts)
		r.Get("/{id}", h.getPost)
		r.Put("/{id}", h.updatePost)
		r.Delete("/{id}", h.deletePost)
	})

	router.MethodNotAllowed(middleware.CheckHTTPMethod(router))
	router.NotFound(middleware.NotFound)

	return router
}
