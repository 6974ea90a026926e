// internal/app/store/users/userstore_test.go
package userstore

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/iglesiacentral/gruposhub/internal/domain/models"
	"github.com/iglesiacentral/gruposhub/internal/testutil"
)

func TestStore_Create_NormalizesEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db)
	u, err := s.Create(ctx, models.User{
		FullName: "Ana Pérez",
		Email:    "  Ana.Perez@Example.COM ",
		Role:     models.RoleAdmin,
		Status:   "active",
	}, "s3cret-pass")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if u.Email != "ana.perez@example.com" {
		t.Errorf("email not normalized: %q", u.Email)
	}
	if !CheckPassword(u, "s3cret-pass") {
		t.Error("stored hash does not verify the original password")
	}
	if CheckPassword(u, "wrong") {
		t.Error("wrong password verified")
	}

	// Lookup is case-insensitive through the same normalization.
	got, err := s.GetByEmail(ctx, "ANA.PEREZ@example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("GetByEmail returned wrong user")
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db)
	if _, err := s.Create(ctx, models.User{Email: "dup@test.com", Role: models.RoleAdmin, Status: "active"}, "pass1"); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	_, err := s.Create(ctx, models.User{Email: "DUP@test.com", Role: models.RoleAdmin, Status: "active"}, "pass2")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestStore_EnsureAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db)
	log := zap.NewNop()

	if err := s.EnsureAdmin(ctx, log, "Administrador", "admin@test.com", "bootstrap-pass"); err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}

	u, err := s.GetByEmail(ctx, "admin@test.com")
	if err != nil {
		t.Fatalf("admin not created: %v", err)
	}
	if u.Role != models.RoleAdmin {
		t.Errorf("role: got %q, want %q", u.Role, models.RoleAdmin)
	}

	// A second run is a no-op and must not touch the password.
	if err := s.EnsureAdmin(ctx, log, "Administrador", "admin@test.com", "different-pass"); err != nil {
		t.Fatalf("second EnsureAdmin failed: %v", err)
	}
	again, err := s.GetByEmail(ctx, "admin@test.com")
	if err != nil {
		t.Fatalf("GetByEmail after rerun failed: %v", err)
	}
	if !CheckPassword(again, "bootstrap-pass") {
		t.Error("rerun changed the stored password")
	}
}

func TestStore_EnsureAdmin_SkipsWithoutCredentials(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := New(db)
	if err := s.EnsureAdmin(ctx, zap.NewNop(), "Administrador", "", ""); err != nil {
		t.Fatalf("EnsureAdmin with empty credentials failed: %v", err)
	}
	if _, err := s.GetByEmail(ctx, "admin@test.com"); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("expected no admin, got err=%v", err)
	}
}
