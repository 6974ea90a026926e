// internal/app/features/adminseasons/routes.go
package adminseasons

import (
	"github.com/go-chi/chi/v5"

	"github.com/iglesiacentral/gruposhub/internal/app/system/authz"
)

// Routes mounts the back-office season endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authz.RequireAdmin)
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Put("/{id}", h.HandleUpdate)
	return r
}
