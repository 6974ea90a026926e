// internal/app/features/login/handler.go
package login

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "github.com/iglesiacentral/gruposhub/internal/app/store/users"
	"github.com/iglesiacentral/gruposhub/internal/app/system/auth"
	"github.com/iglesiacentral/gruposhub/internal/app/system/httpjson"
	"github.com/iglesiacentral/gruposhub/internal/app/system/timeouts"
)

// Handler authenticates back-office users with email and password.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// HandleLogin verifies credentials and starts a session. Bad email and
// bad password return the same message so accounts cannot be probed.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "login")
	defer cancel()

	var req loginRequest
	if err := httpjson.Read(r, &req); err != nil {
		httpjson.Fail(w, http.StatusBadRequest, "solicitud inválida")
		return
	}
	if req.Email == "" || req.Password == "" {
		httpjson.Fail(w, http.StatusBadRequest, "correo y contraseña son obligatorios")
		return
	}

	user, err := userstore.New(h.DB).GetByEmail(ctx, req.Email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.Fail(w, http.StatusUnauthorized, "credenciales incorrectas")
		return
	}
	if err != nil {
		h.Log.Error("login lookup failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}

	if user.Status != "active" || !userstore.CheckPassword(user, req.Password) {
		httpjson.Fail(w, http.StatusUnauthorized, "credenciales incorrectas")
		return
	}

	if err := auth.SignIn(w, r, auth.SessionUser{
		ID:    user.ID.Hex(),
		Name:  user.FullName,
		Email: user.Email,
		Role:  user.Role,
	}); err != nil {
		h.Log.Error("session save failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}

	h.Log.Info("user signed in", zap.String("email", user.Email))
	httpjson.Write(w, http.StatusOK, loginResponse{
		ID:       user.ID.Hex(),
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
	})
}
