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
	router.Use(h.withGzip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/users", h.getUserByEmail)
		r.Get("/foods", h.listFoods)
		r.Post("/seed-foods", h.seedFoods)
	})

	// routes that require a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/me", h.getCurrentUser)
		r.Get("/users/{id}", h.getUser)
		r.Put("/users/{id}", h.updateUser)
		r.Get("/users/{id}/foodlogs", h.listFoodLogs)
		r.Post("/foodlogs", h.createFoodLog)
		r.Post("/progress", h.createProgress)
		r.Get("/progress/{id}", h.listProgress)
	})

	return router
}
