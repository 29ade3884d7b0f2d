package handlers

import (
	"github.com/go-chi/chi"
)

func (h *Handler) SetRoutes(r *chi.Mux) {
	r.Get("/", h.HealthHandler)

	r.Route("/api/games", func(r chi.Router) {
		// public routes
		r.Get("/search", h.SearchGames)

		// Secure routes
		r.Group(func(r chi.Router) {
			r.Use(h.AdminOnly)

			r.Post("/", h.CreateGame)
		})
	})
}
