package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signUp)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/book", h.listBooks)
		r.Get("/api/book/{bookID}", h.getBook)

		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/book", h.createBook)
		r.Put("/api/book/{bookID}", h.updateBook)
		r.Delete("/api/book/{bookID}", h.deleteBook)
	})

	return router
}
