// internal/app/features/adminmembers/routes.go
package adminmembers

import (
	"github.com/go-chi/chi/v5"

	"github.com/iglesiacentral/gruposhub/internal/app/system/authz"
)

// RosterRoutes mounts the per-group roster endpoint. Typically:
// r.Mount("/admin/groups/{id}/members", adminmembers.RosterRoutes(handler))
func RosterRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authz.RequireAdmin)
	r.Get("/", h.HandleRoster)
	return r
}

// Routes mounts the member management endpoints. Typically:
// r.Mount("/admin/members", adminmembers.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authz.RequireAdmin)
	r.Delete("/{id}", h.HandleRemove)
	return r
}
