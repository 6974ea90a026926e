// internal/app/features/admincategories/handler.go
package admincategories

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	categorystore "github.com/iglesiacentral/gruposhub/internal/app/store/categories"
	"github.com/iglesiacentral/gruposhub/internal/app/system/htmlsanitize"
	"github.com/iglesiacentral/gruposhub/internal/app/system/httpjson"
	"github.com/iglesiacentral/gruposhub/internal/app/system/timeouts"
	"github.com/iglesiacentral/gruposhub/internal/domain/models"
)

// Handler serves the back-office category endpoints. Categories are
// soft-disabled rather than deleted so existing groups keep resolving.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

type categoryInput struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type activeInput struct {
	IsActive bool `json:"isActive"`
}

// HandleList serves GET /admin/categories, including inactive ones.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "category list")
	defer cancel()

	cats, err := categorystore.New(h.DB).ListAll(ctx)
	if err != nil {
		h.Log.Error("category list failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	httpjson.Write(w, http.StatusOK, cats)
}

// HandleCreate serves POST /admin/categories.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "category create")
	defer cancel()

	var in categoryInput
	if err := httpjson.Read(r, &in); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "solicitud inválida")
		return
	}
	name := htmlsanitize.Strip(in.Name)
	if name == "" {
		httpjson.Fail(w, http.StatusBadRequest, "falta el nombre de la categoría")
		return
	}

	created, err := categorystore.New(h.DB).Create(ctx, models.Category{
		Name:  name,
		Color: htmlsanitize.Strip(in.Color),
		Icon:  htmlsanitize.Strip(in.Icon),
	})
	if errors.Is(err, categorystore.ErrDuplicateCategoryName) {
		httpjson.Fail(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		h.Log.Error("category create failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	httpjson.Write(w, http.StatusCreated, created)
}

// HandleUpdate serves PUT /admin/categories/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "category update")
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "identificador inválido")
		return
	}

	var in categoryInput
	if err := httpjson.Read(r, &in); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "solicitud inválida")
		return
	}
	name := htmlsanitize.Strip(in.Name)
	if name == "" {
		httpjson.Fail(w, http.StatusBadRequest, "falta el nombre de la categoría")
		return
	}

	err = categorystore.New(h.DB).Update(ctx, id, name, htmlsanitize.Strip(in.Color), htmlsanitize.Strip(in.Icon))
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		httpjson.Fail(w, http.StatusNotFound, "categoría no encontrada")
		return
	case errors.Is(err, categorystore.ErrDuplicateCategoryName):
		httpjson.Fail(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		h.Log.Error("category update failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleSetActive serves PUT /admin/categories/{id}/active.
func (h *Handler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "category set active")
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "identificador inválido")
		return
	}

	var in activeInput
	if err := httpjson.Read(r, &in); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "solicitud inválida")
		return
	}

	err = categorystore.New(h.DB).SetActive(ctx, id, in.IsActive)
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.Fail(w, http.StatusNotFound, "categoría no encontrada")
		return
	}
	if err != nil {
		h.Log.Error("category set active failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]bool{"success": true})
}
