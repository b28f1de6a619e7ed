package reservation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the reservations router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.List)
	})

	return r
}
