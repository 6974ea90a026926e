// internal/app/features/register/handler.go
package register

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	groupstore "github.com/iglesiacentral/gruposhub/internal/app/store/groups"
	memberstore "github.com/iglesiacentral/gruposhub/internal/app/store/members"
	seasonstore "github.com/iglesiacentral/gruposhub/internal/app/store/seasons"
	"github.com/iglesiacentral/gruposhub/internal/app/system/htmlsanitize"
	"github.com/iglesiacentral/gruposhub/internal/app/system/httpjson"
	"github.com/iglesiacentral/gruposhub/internal/app/system/timeouts"
	"github.com/iglesiacentral/gruposhub/internal/domain/models"
)

// Handler serves the public registration endpoint.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type registerResponse struct {
	ConfirmationCode string `json:"confirmationCode"`
	GroupName        string `json:"groupName"`
	Day              string `json:"day"`
	Time             string `json:"time"`
}

// HandleRegister serves POST /api/groups/{id}/register. Registration is
// only accepted while the group's season has its window open, the group
// has spots left, and the email is not already on the roster.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "register")
	defer cancel()

	groupID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "identificador inválido")
		return
	}

	var req registerRequest
	if err := httpjson.Read(r, &req); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "solicitud inválida")
		return
	}
	if strings.TrimSpace(req.FullName) == "" {
		httpjson.Fail(w, http.StatusBadRequest, "el nombre es obligatorio")
		return
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "correo electrónico inválido")
		return
	}

	group, err := groupstore.New(h.DB).GetByID(ctx, groupID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.Fail(w, http.StatusNotFound, "grupo no encontrado")
		return
	}
	if err != nil {
		h.Log.Error("group lookup failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}

	season, err := seasonstore.New(h.DB, h.Log).GetByID(ctx, group.SeasonID)
	if err != nil {
		h.Log.Error("season lookup failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	if !season.RegistrationOpenAt(time.Now().UTC()) {
		httpjson.Fail(w, http.StatusConflict, "las inscripciones no están abiertas")
		return
	}

	m, err := memberstore.New(h.DB, h.Log).Register(ctx, groupID, models.Member{
		FullName: htmlsanitize.Strip(req.FullName),
		Email:    req.Email,
		Phone:    htmlsanitize.Strip(req.Phone),
	})
	switch {
	case errors.Is(err, memberstore.ErrGroupFull):
		httpjson.Fail(w, http.StatusConflict, "el grupo ya no tiene cupos")
		return
	case errors.Is(err, memberstore.ErrAlreadyRegistered):
		httpjson.Fail(w, http.StatusConflict, "este correo ya está inscrito en el grupo")
		return
	case errors.Is(err, mongo.ErrNoDocuments):
		httpjson.Fail(w, http.StatusNotFound, "grupo no encontrado")
		return
	case err != nil:
		h.Log.Error("registration failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}

	h.Log.Info("member registered",
		zap.String("group", group.Name),
		zap.String("email", m.Email))
	httpjson.Write(w, http.StatusCreated, registerResponse{
		ConfirmationCode: m.ConfirmationCode,
		GroupName:        group.Name,
		Day:              group.Day,
		Time:             group.Time,
	})
}
