// internal/app/features/catalog/routes.go
package catalog

import "github.com/go-chi/chi/v5"

// Routes mounts the public catalog endpoints. Typically:
// r.Mount("/api", catalog.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/groups", h.HandleListGroups)
	r.Get("/groups/{id}", h.HandleGetGroup)
	r.Get("/categories", h.HandleListCategories)
	r.Get("/districts", h.HandleListDistricts)
	r.Get("/seasons/active", h.HandleActiveSeason)

	return r
}
