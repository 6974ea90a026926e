// internal/app/features/admingroups/handler.go
package admingroups

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	categorystore "github.com/iglesiacentral/gruposhub/internal/app/store/categories"
	districtstore "github.com/iglesiacentral/gruposhub/internal/app/store/districts"
	groupstore "github.com/iglesiacentral/gruposhub/internal/app/store/groups"
	seasonstore "github.com/iglesiacentral/gruposhub/internal/app/store/seasons"
	"github.com/iglesiacentral/gruposhub/internal/app/system/htmlsanitize"
	"github.com/iglesiacentral/gruposhub/internal/app/system/httpjson"
	"github.com/iglesiacentral/gruposhub/internal/app/system/normalize"
	"github.com/iglesiacentral/gruposhub/internal/app/system/timeouts"
	"github.com/iglesiacentral/gruposhub/internal/domain/models"
)

// Handler serves the back-office group CRUD. Single groups created here
// follow the same business rules as bulk-imported ones.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// GroupInput is the admin create/update payload.
type GroupInput struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	SeasonID       string   `json:"seasonId"`
	CategoryID     string   `json:"categoryId"`
	DistrictID     string   `json:"districtId"`
	Capacity       int      `json:"capacity"`
	Day            string   `json:"day"`
	Time           string   `json:"time"`
	Modality       string   `json:"modality"`
	Leaders        []string `json:"leaders"`
	MinAge         int      `json:"minAge"`
	MaxAge         int      `json:"maxAge"`
	Address        string   `json:"address"`
	TargetAudience string   `json:"targetAudience"`
	GeoReferencia  string   `json:"geoReferencia"`
}

type validationError struct {
	Errors []string `json:"errors"`
}

// buildGroup applies the same checks the import validator runs: required
// fields, positive capacity, live references (active category), canonical
// day and modality, and a sane age range.
func (h *Handler) buildGroup(ctx context.Context, in GroupInput) (models.Group, []string) {
	var errs []string
	g := models.Group{
		Name:           htmlsanitize.Strip(in.Name),
		Description:    htmlsanitize.Sanitize(in.Description),
		Capacity:       in.Capacity,
		Time:           strings.TrimSpace(in.Time),
		MinAge:         in.MinAge,
		MaxAge:         in.MaxAge,
		Address:        htmlsanitize.Strip(in.Address),
		TargetAudience: htmlsanitize.Strip(in.TargetAudience),
		GeoReferencia:  strings.TrimSpace(in.GeoReferencia),
	}

	if g.Name == "" {
		errs = append(errs, "falta el nombre del grupo")
	}
	if g.Description == "" {
		errs = append(errs, "falta la descripción")
	}
	if g.Capacity <= 0 {
		errs = append(errs, "la capacidad debe ser mayor que 0")
	}
	if g.MinAge > g.MaxAge {
		errs = append(errs, "la edad mínima es mayor que la edad máxima")
	}

	if day, ok := normalize.Day(in.Day); ok {
		g.Day = day
	} else {
		errs = append(errs, fmt.Sprintf("día inválido: %q", in.Day))
	}
	if modality, ok := normalize.Modality(in.Modality); ok {
		g.Modality = modality
	} else {
		errs = append(errs, fmt.Sprintf("modalidad inválida: %q", in.Modality))
	}

	if id, err := primitive.ObjectIDFromHex(in.CategoryID); err != nil {
		errs = append(errs, "categoría inválida")
	} else if cat, err := categorystore.New(h.DB).GetByID(ctx, id); err != nil || !cat.IsActive {
		errs = append(errs, "la categoría no existe o no está activa")
	} else {
		g.CategoryID = id
	}
	if id, err := primitive.ObjectIDFromHex(in.DistrictID); err != nil {
		errs = append(errs, "distrito inválido")
	} else if _, err := districtstore.New(h.DB).GetByID(ctx, id); err != nil {
		errs = append(errs, "el distrito no existe")
	} else {
		g.DistrictID = id
	}
	if id, err := primitive.ObjectIDFromHex(in.SeasonID); err != nil {
		errs = append(errs, "temporada inválida")
	} else if _, err := seasonstore.New(h.DB, h.Log).GetByID(ctx, id); err != nil {
		errs = append(errs, "la temporada no existe")
	} else {
		g.SeasonID = id
	}

	g.Leaders = make([]string, 0, len(in.Leaders))
	for _, l := range in.Leaders {
		if t := htmlsanitize.Strip(l); t != "" {
			g.Leaders = append(g.Leaders, t)
		}
	}

	return g, errs
}

// HandleList serves GET /admin/groups with the same filters as the
// public catalog but without the season restriction.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "admin group list")
	defer cancel()

	filter := groupstore.Filter{}
	if s := r.URL.Query().Get("season"); s != "" {
		if id, err := primitive.ObjectIDFromHex(s); err == nil {
			filter.SeasonID = id
		}
	}
	if s := r.URL.Query().Get("q"); s != "" {
		filter.Query = s
	}

	groups, err := groupstore.New(h.DB).List(ctx, filter)
	if err != nil {
		h.Log.Error("admin group list failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	httpjson.Write(w, http.StatusOK, groups)
}

// HandleGet serves GET /admin/groups/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "admin group get")
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "identificador inválido")
		return
	}
	g, err := groupstore.New(h.DB).GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.Fail(w, http.StatusNotFound, "grupo no encontrado")
		return
	}
	if err != nil {
		h.Log.Error("group lookup failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	httpjson.Write(w, http.StatusOK, g)
}

// HandleCreate serves POST /admin/groups.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "admin group create")
	defer cancel()

	var in GroupInput
	if err := httpjson.Read(r, &in); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "solicitud inválida")
		return
	}

	g, errs := h.buildGroup(ctx, in)
	if len(errs) > 0 {
		httpjson.Write(w, http.StatusUnprocessableEntity, validationError{Errors: errs})
		return
	}

	created, err := groupstore.New(h.DB).Create(ctx, g)
	if errors.Is(err, groupstore.ErrDuplicateGroupName) {
		httpjson.Fail(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		h.Log.Error("group create failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	httpjson.Write(w, http.StatusCreated, created)
}

// HandleUpdate serves PUT /admin/groups/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "admin group update")
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "identificador inválido")
		return
	}

	var in GroupInput
	if err := httpjson.Read(r, &in); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "solicitud inválida")
		return
	}

	g, errs := h.buildGroup(ctx, in)
	if len(errs) > 0 {
		httpjson.Write(w, http.StatusUnprocessableEntity, validationError{Errors: errs})
		return
	}

	err = groupstore.New(h.DB).Update(ctx, id, g)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		httpjson.Fail(w, http.StatusNotFound, "grupo no encontrado")
		return
	case errors.Is(err, groupstore.ErrDuplicateGroupName):
		httpjson.Fail(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		h.Log.Error("group update failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleDelete serves DELETE /admin/groups/{id}. Members of the deleted
// group are left in place; the roster view tolerates orphans.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "admin group delete")
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "identificador inválido")
		return
	}

	deleted, err := groupstore.New(h.DB).Delete(ctx, id)
	if err != nil {
		h.Log.Error("group delete failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	if deleted == 0 {
		httpjson.Fail(w, http.StatusNotFound, "grupo no encontrado")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]bool{"success": true})
}
