// internal/app/features/admindistricts/handler.go
package admindistricts

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	districtstore "github.com/iglesiacentral/gruposhub/internal/app/store/districts"
	"github.com/iglesiacentral/gruposhub/internal/app/system/htmlsanitize"
	"github.com/iglesiacentral/gruposhub/internal/app/system/httpjson"
	"github.com/iglesiacentral/gruposhub/internal/app/system/timeouts"
	"github.com/iglesiacentral/gruposhub/internal/domain/models"
)

// Handler serves the back-office district endpoints.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

type districtInput struct {
	Name string `json:"name"`
}

// HandleList serves GET /admin/districts.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "district list")
	defer cancel()

	districts, err := districtstore.New(h.DB).ListAll(ctx)
	if err != nil {
		h.Log.Error("district list failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	httpjson.Write(w, http.StatusOK, districts)
}

// HandleCreate serves POST /admin/districts.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "district create")
	defer cancel()

	var in districtInput
	if err := httpjson.Read(r, &in); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "solicitud inválida")
		return
	}
	name := htmlsanitize.Strip(in.Name)
	if name == "" {
		httpjson.Fail(w, http.StatusBadRequest, "falta el nombre del distrito")
		return
	}

	created, err := districtstore.New(h.DB).Create(ctx, models.District{Name: name})
	if errors.Is(err, districtstore.ErrDuplicateDistrictName) {
		httpjson.Fail(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		h.Log.Error("district create failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	httpjson.Write(w, http.StatusCreated, created)
}

// HandleUpdate serves PUT /admin/districts/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "district update")
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "identificador inválido")
		return
	}

	var in districtInput
	if err := httpjson.Read(r, &in); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "solicitud inválida")
		return
	}
	name := htmlsanitize.Strip(in.Name)
	if name == "" {
		httpjson.Fail(w, http.StatusBadRequest, "falta el nombre del distrito")
		return
	}

	err = districtstore.New(h.DB).Update(ctx, id, name)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		httpjson.Fail(w, http.StatusNotFound, "distrito no encontrado")
		return
	case errors.Is(err, districtstore.ErrDuplicateDistrictName):
		httpjson.Fail(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		h.Log.Error("district update failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleDelete serves DELETE /admin/districts/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "district delete")
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "identificador inválido")
		return
	}

	deleted, err := districtstore.New(h.DB).Delete(ctx, id)
	if err != nil {
		h.Log.Error("district delete failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	if deleted == 0 {
		httpjson.Fail(w, http.StatusNotFound, "distrito no encontrado")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]bool{"success": true})
}
