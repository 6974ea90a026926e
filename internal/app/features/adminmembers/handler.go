// internal/app/features/adminmembers/handler.go
package adminmembers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	memberstore "github.com/iglesiacentral/gruposhub/internal/app/store/members"
	"github.com/iglesiacentral/gruposhub/internal/app/system/httpjson"
	"github.com/iglesiacentral/gruposhub/internal/app/system/timeouts"
)

// Handler serves the back-office roster endpoints.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// HandleRoster serves GET /admin/groups/{id}/members.
func (h *Handler) HandleRoster(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "group roster")
	defer cancel()

	groupID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "identificador inválido")
		return
	}

	members, err := memberstore.New(h.DB, h.Log).ListByGroup(ctx, groupID)
	if err != nil {
		h.Log.Error("roster list failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	httpjson.Write(w, http.StatusOK, members)
}

// HandleRemove serves DELETE /admin/members/{id}. Removing a member
// releases their spot in the group.
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "member remove")
	defer cancel()

	memberID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "identificador inválido")
		return
	}

	err = memberstore.New(h.DB, h.Log).Remove(ctx, memberID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.Fail(w, http.StatusNotFound, "inscripción no encontrada")
		return
	}
	if err != nil {
		h.Log.Error("member remove failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]bool{"success": true})
}
