package seasonstore_test

import (
	"testing"
	"time"

	"go.uber.org/zap"

	seasonstore "github.com/iglesiacentral/gruposhub/internal/app/store/seasons"
	"github.com/iglesiacentral/gruposhub/internal/domain/models"
	"github.com/iglesiacentral/gruposhub/internal/testutil"
)

func testSeason(name string, active bool) models.Season {
	now := time.Now().UTC()
	return models.Season{
		Name:              name,
		IsActive:          active,
		RegistrationStart: now,
		RegistrationEnd:   now.Add(30 * 24 * time.Hour),
		PeriodStart:       now,
		PeriodEnd:         now.Add(90 * 24 * time.Hour),
	}
}

func TestStore_Create_SingleActive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := seasonstore.New(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := store.Create(ctx, testSeason("Temporada 2026-1", true))
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	second, err := store.Create(ctx, testSeason("Temporada 2026-2", true))
	if err != nil {
		t.Fatalf("second Create failed: %v", err)
	}

	active, err := store.GetActive(ctx)
	if err != nil {
		t.Fatalf("GetActive failed: %v", err)
	}
	if active.ID != second.ID {
		t.Errorf("expected newest season active, got %q", active.Name)
	}

	reloaded, err := store.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if reloaded.IsActive {
		t.Error("expected first season to be deactivated")
	}
}

func TestStore_GetActive_None(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := seasonstore.New(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetActive(ctx); err != seasonstore.ErrNoActiveSeason {
		t.Errorf("expected ErrNoActiveSeason, got %v", err)
	}
}

func TestStore_Update_ActivationDeactivatesOthers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := seasonstore.New(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := store.Create(ctx, testSeason("Temporada 2026-1", true))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	second, err := store.Create(ctx, testSeason("Temporada 2026-2", false))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	second.IsActive = true
	if err := store.Update(ctx, second.ID, second); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	active, err := store.GetActive(ctx)
	if err != nil {
		t.Fatalf("GetActive failed: %v", err)
	}
	if active.ID != second.ID {
		t.Errorf("expected second season active, got %q", active.Name)
	}

	reloaded, err := store.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if reloaded.IsActive {
		t.Error("expected first season to be deactivated")
	}
}

func TestSeason_RegistrationOpenAt(t *testing.T) {
	now := time.Now().UTC()
	se := models.Season{
		RegistrationStart: now.Add(-time.Hour),
		RegistrationEnd:   now.Add(time.Hour),
	}

	if !se.RegistrationOpenAt(now) {
		t.Error("expected window open now")
	}
	if se.RegistrationOpenAt(now.Add(-2 * time.Hour)) {
		t.Error("expected window closed before start")
	}
	if se.RegistrationOpenAt(now.Add(2 * time.Hour)) {
		t.Error("expected window closed after end")
	}
	// Bounds are inclusive.
	if !se.RegistrationOpenAt(se.RegistrationStart) || !se.RegistrationOpenAt(se.RegistrationEnd) {
		t.Error("expected window open at exact bounds")
	}
}
