package memberstore_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	memberstore "github.com/iglesiacentral/gruposhub/internal/app/store/members"
	"github.com/iglesiacentral/gruposhub/internal/domain/models"
	"github.com/iglesiacentral/gruposhub/internal/testutil"
)

func TestStore_Register(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	group := fixtures.CreateGroup(ctx, "Jóvenes Norte", testutil.GroupOpts{Capacity: 2})

	m, err := store.Register(ctx, group.ID, models.Member{
		FullName: "  María   López ",
		Email:    "Maria.Lopez@Example.COM",
		Phone:    "555-0101",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if m.Email != "maria.lopez@example.com" {
		t.Errorf("expected lowercased email, got %q", m.Email)
	}
	if m.FullName != "María López" {
		t.Errorf("expected collapsed whitespace in name, got %q", m.FullName)
	}
	if m.ConfirmationCode == "" {
		t.Error("expected a confirmation code")
	}

	var g models.Group
	if err := db.Collection("groups").FindOne(ctx, bson.M{"_id": group.ID}).Decode(&g); err != nil {
		t.Fatalf("reload group: %v", err)
	}
	if g.CurrentMembersCount != 1 {
		t.Errorf("expected counter 1, got %d", g.CurrentMembersCount)
	}
}

func TestStore_Register_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	group := fixtures.CreateGroup(ctx, "Jóvenes Norte", testutil.GroupOpts{Capacity: 5})

	if _, err := store.Register(ctx, group.ID, models.Member{FullName: "Ana", Email: "ana@example.com"}); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err := store.Register(ctx, group.ID, models.Member{FullName: "Ana Otra Vez", Email: "ANA@example.com"})
	if err != memberstore.ErrAlreadyRegistered {
		t.Errorf("expected ErrAlreadyRegistered, got %v", err)
	}

	// The failed attempt must not leak a claimed spot.
	var g models.Group
	if err := db.Collection("groups").FindOne(ctx, bson.M{"_id": group.ID}).Decode(&g); err != nil {
		t.Fatalf("reload group: %v", err)
	}
	if g.CurrentMembersCount != 1 {
		t.Errorf("expected counter 1 after duplicate rejection, got %d", g.CurrentMembersCount)
	}
}

func TestStore_Register_GroupFull(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	group := fixtures.CreateGroup(ctx, "Grupo Lleno", testutil.GroupOpts{Capacity: 1, Members: 1})

	_, err := store.Register(ctx, group.ID, models.Member{FullName: "Tarde", Email: "tarde@example.com"})
	if err != memberstore.ErrGroupFull {
		t.Errorf("expected ErrGroupFull, got %v", err)
	}
}

func TestStore_Remove_ReleasesSpot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := memberstore.New(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	group := fixtures.CreateGroup(ctx, "Jóvenes Norte", testutil.GroupOpts{Capacity: 5})

	m, err := store.Register(ctx, group.ID, models.Member{FullName: "Ana", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := store.Remove(ctx, m.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	var g models.Group
	if err := db.Collection("groups").FindOne(ctx, bson.M{"_id": group.ID}).Decode(&g); err != nil {
		t.Fatalf("reload group: %v", err)
	}
	if g.CurrentMembersCount != 0 {
		t.Errorf("expected counter back to 0, got %d", g.CurrentMembersCount)
	}

	members, err := store.ListByGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("ListByGroup failed: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("expected empty roster, got %d", len(members))
	}
}
