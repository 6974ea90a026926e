package authz_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iglesiacentral/gruposhub/internal/app/system/auth"
	"github.com/iglesiacentral/gruposhub/internal/app/system/authz"
)

func requestWithUser(role string) *http.Request {
	r := httptest.NewRequest("GET", "/admin/groups", nil)
	return auth.WithTestUser(r, &auth.SessionUser{
		ID:   primitive.NewObjectID().Hex(),
		Name: "Test User",
		Role: role,
	})
}

func TestUserCtx_NoUser(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	role, _, id, ok := authz.UserCtx(r)
	if ok {
		t.Error("expected ok=false without a session user")
	}
	if role != "visitor" || !id.IsZero() {
		t.Errorf("expected visitor/NilObjectID, got %q/%v", role, id)
	}
}

func TestUserCtx_MalformedID(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r = auth.WithTestUser(r, &auth.SessionUser{ID: "not-an-objectid", Role: "admin"})
	if _, _, _, ok := authz.UserCtx(r); ok {
		t.Error("expected ok=false for malformed user ID")
	}
}

func TestIsAdmin(t *testing.T) {
	if !authz.IsAdmin(requestWithUser("Admin")) {
		t.Error("expected admin role (any case) to be admin")
	}
	if authz.IsAdmin(requestWithUser("leader")) {
		t.Error("expected non-admin role to not be admin")
	}
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := authz.RequireAdmin(next)

	cases := []struct {
		name string
		req  *http.Request
		want int
	}{
		{"signed out", httptest.NewRequest("GET", "/admin/groups", nil), http.StatusUnauthorized},
		{"wrong role", requestWithUser("leader"), http.StatusForbidden},
		{"admin", requestWithUser("admin"), http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, tc.req)
			if rec.Code != tc.want {
				t.Errorf("expected status %d, got %d", tc.want, rec.Code)
			}
		})
	}
}
