// internal/app/features/admingroups/routes.go
package admingroups

import (
	"github.com/go-chi/chi/v5"

	"github.com/iglesiacentral/gruposhub/internal/app/system/authz"
)

// Routes mounts the back-office group endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authz.RequireAdmin)
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	return r
}
