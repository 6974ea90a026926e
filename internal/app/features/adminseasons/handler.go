// internal/app/features/adminseasons/handler.go
package adminseasons

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	seasonstore "github.com/iglesiacentral/gruposhub/internal/app/store/seasons"
	"github.com/iglesiacentral/gruposhub/internal/app/system/htmlsanitize"
	"github.com/iglesiacentral/gruposhub/internal/app/system/httpjson"
	"github.com/iglesiacentral/gruposhub/internal/app/system/timeouts"
	"github.com/iglesiacentral/gruposhub/internal/domain/models"
)

// Handler serves the back-office season endpoints. Activation semantics
// (at most one active season) live in the season store.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

type seasonInput struct {
	Name              string    `json:"name"`
	IsActive          bool      `json:"isActive"`
	RegistrationStart time.Time `json:"registrationStart"`
	RegistrationEnd   time.Time `json:"registrationEnd"`
	PeriodStart       time.Time `json:"periodStart"`
	PeriodEnd         time.Time `json:"periodEnd"`
}

func (in seasonInput) toModel() (models.Season, string) {
	name := htmlsanitize.Strip(in.Name)
	if name == "" {
		return models.Season{}, "falta el nombre de la temporada"
	}
	if !in.RegistrationEnd.After(in.RegistrationStart) {
		return models.Season{}, "el cierre de inscripciones debe ser posterior a la apertura"
	}
	if !in.PeriodEnd.After(in.PeriodStart) {
		return models.Season{}, "el fin de la temporada debe ser posterior al inicio"
	}
	return models.Season{
		Name:              name,
		IsActive:          in.IsActive,
		RegistrationStart: in.RegistrationStart,
		RegistrationEnd:   in.RegistrationEnd,
		PeriodStart:       in.PeriodStart,
		PeriodEnd:         in.PeriodEnd,
	}, ""
}

// HandleList serves GET /admin/seasons.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "season list")
	defer cancel()

	seasons, err := seasonstore.New(h.DB, h.Log).ListAll(ctx)
	if err != nil {
		h.Log.Error("season list failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	httpjson.Write(w, http.StatusOK, seasons)
}

// HandleCreate serves POST /admin/seasons.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "season create")
	defer cancel()

	var in seasonInput
	if err := httpjson.Read(r, &in); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "solicitud inválida")
		return
	}
	se, msg := in.toModel()
	if msg != "" {
		httpjson.Fail(w, http.StatusBadRequest, msg)
		return
	}

	created, err := seasonstore.New(h.DB, h.Log).Create(ctx, se)
	if errors.Is(err, seasonstore.ErrDuplicateSeasonName) {
		httpjson.Fail(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		h.Log.Error("season create failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	httpjson.Write(w, http.StatusCreated, created)
}

// HandleUpdate serves PUT /admin/seasons/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "season update")
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "identificador inválido")
		return
	}

	var in seasonInput
	if err := httpjson.Read(r, &in); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "solicitud inválida")
		return
	}
	se, msg := in.toModel()
	if msg != "" {
		httpjson.Fail(w, http.StatusBadRequest, msg)
		return
	}

	err = seasonstore.New(h.DB, h.Log).Update(ctx, id, se)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		httpjson.Fail(w, http.StatusNotFound, "temporada no encontrada")
		return
	case errors.Is(err, seasonstore.ErrDuplicateSeasonName):
		httpjson.Fail(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		h.Log.Error("season update failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]bool{"success": true})
}
