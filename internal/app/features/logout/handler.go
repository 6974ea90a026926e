// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/iglesiacentral/gruposhub/internal/app/system/auth"
	"github.com/iglesiacentral/gruposhub/internal/app/system/httpjson"
)

// Handler ends the current session.
type Handler struct {
	Log *zap.Logger
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := auth.SignOut(w, r); err != nil {
		h.Log.Warn("session clear failed", zap.Error(err))
	}
	httpjson.Write(w, http.StatusOK, map[string]bool{"success": true})
}

// Routes serves POST /logout under wherever the caller mounts it.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleLogout)
	return r
}
