// internal/app/features/admingroups/handler_test.go
package admingroups

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/iglesiacentral/gruposhub/internal/testutil"
)

func newHandler(t *testing.T) (*Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return &Handler{DB: db, Log: zap.NewNop()}, testutil.NewFixtures(t, db)
}

func postJSON(t *testing.T, target string, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleCreate(t *testing.T) {
	h, f := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cat := f.CreateCategory(ctx, "Discipulado")
	dist := f.CreateDistrict(ctx, "Norte")
	season := f.CreateActiveSeason(ctx, "Temporada 2026-1")

	req := postJSON(t, "/admin/groups", GroupInput{
		Name:        "Jóvenes Norte",
		Description: "Grupo para jóvenes",
		SeasonID:    season.ID.Hex(),
		CategoryID:  cat.ID.Hex(),
		DistrictID:  dist.ID.Hex(),
		Capacity:    20,
		Day:         "miercoles",
		Time:        "19:00",
		Modality:    "ZOOM",
		Leaders:     []string{"Ana Pérez", " "},
		MinAge:      15,
		MaxAge:      25,
	})
	rec := testutil.NewRecorder()
	h.HandleCreate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusCreated)
	rec.AssertContains(t, `"day":"Miércoles"`)
	rec.AssertContains(t, `"modality":"Virtual"`)
	if got := rec.Body.String(); bytes.Contains([]byte(got), []byte(`" "`)) {
		t.Errorf("blank leader should have been dropped: %s", got)
	}
}

func TestHandleCreate_ValidationErrors(t *testing.T) {
	h, f := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	dist := f.CreateDistrict(ctx, "Norte")
	season := f.CreateActiveSeason(ctx, "Temporada 2026-1")
	inactive := f.CreateCategory(ctx, "Archivada")
	f.SetCategoryActive(ctx, inactive.ID, false)

	req := postJSON(t, "/admin/groups", GroupInput{
		Name:        "Grupo Prueba",
		Description: "desc",
		SeasonID:    season.ID.Hex(),
		CategoryID:  inactive.ID.Hex(),
		DistrictID:  dist.ID.Hex(),
		Capacity:    0,
		Day:         "salon",
		Modality:    "salon",
		MinAge:      30,
		MaxAge:      18,
	})
	rec := testutil.NewRecorder()
	h.HandleCreate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusUnprocessableEntity)
	rec.AssertContains(t, "la capacidad debe ser mayor que 0")
	rec.AssertContains(t, "la categoría no existe o no está activa")
	rec.AssertContains(t, "día inválido")
	rec.AssertContains(t, "modalidad inválida")
	rec.AssertContains(t, "la edad mínima es mayor que la edad máxima")
}

func TestHandleCreate_DuplicateName(t *testing.T) {
	h, f := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cat := f.CreateCategory(ctx, "Discipulado")
	dist := f.CreateDistrict(ctx, "Norte")
	season := f.CreateActiveSeason(ctx, "Temporada 2026-1")
	f.CreateGroup(ctx, "Jóvenes Norte", testutil.GroupOpts{
		SeasonID: season.ID, CategoryID: cat.ID, DistrictID: dist.ID,
	})

	// Accent and case variant of an existing name.
	req := postJSON(t, "/admin/groups", GroupInput{
		Name:        "JOVENES NORTE",
		Description: "otro grupo",
		SeasonID:    season.ID.Hex(),
		CategoryID:  cat.ID.Hex(),
		DistrictID:  dist.ID.Hex(),
		Capacity:    10,
		Day:         "Lunes",
		Modality:    "Presencial",
		MinAge:      12,
		MaxAge:      99,
	})
	rec := testutil.NewRecorder()
	h.HandleCreate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusConflict)
}

func TestHandleDelete_NotFound(t *testing.T) {
	h, _ := newHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/admin/groups/ffffffffffffffffffffffff", nil)
	req = testutil.WithChiURLParam(req, "id", "ffffffffffffffffffffffff")
	rec := testutil.NewRecorder()
	h.HandleDelete(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusNotFound)
}
