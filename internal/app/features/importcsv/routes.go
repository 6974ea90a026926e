// internal/app/features/importcsv/routes.go
package importcsv

import (
	"github.com/go-chi/chi/v5"

	"github.com/iglesiacentral/gruposhub/internal/app/system/authz"
)

// Routes mounts the bulk-import endpoints. Typically:
// r.Mount("/admin/import", importcsv.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(authz.RequireAdmin)

		pr.Post("/validate", h.HandleValidate)
		pr.Post("/confirm", h.HandleConfirm)
		pr.Get("/template", h.HandleTemplate)
	})

	return r
}
