// internal/app/features/catalog/handler.go
package catalog

import (
	"errors"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	categorystore "github.com/iglesiacentral/gruposhub/internal/app/store/categories"
	districtstore "github.com/iglesiacentral/gruposhub/internal/app/store/districts"
	groupstore "github.com/iglesiacentral/gruposhub/internal/app/store/groups"
	seasonstore "github.com/iglesiacentral/gruposhub/internal/app/store/seasons"
	"github.com/iglesiacentral/gruposhub/internal/app/system/httpjson"
	"github.com/iglesiacentral/gruposhub/internal/app/system/normalize"
	"github.com/iglesiacentral/gruposhub/internal/app/system/paging"
	"github.com/iglesiacentral/gruposhub/internal/app/system/timeouts"
	"github.com/iglesiacentral/gruposhub/internal/domain/models"
)

// Handler serves the public browsing endpoints. No session required.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

type listResponse struct {
	Groups []models.Group `json:"groups"`
	Meta   paging.Meta    `json:"meta"`
}

// HandleListGroups serves GET /api/groups with optional category,
// district, day, modality and q filters. When a numeric "seed" is given
// the full result set is shuffled deterministically before paging, so a
// visitor sees a stable random order while flipping pages.
func (h *Handler) HandleListGroups(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "catalog list")
	defer cancel()

	filter := groupstore.Filter{Query: query.Get(r, "q")}

	if s := query.Get(r, "category"); s != "" {
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			httpjson.Fail(w, http.StatusBadRequest, "categoría inválida")
			return
		}
		filter.CategoryID = id
	}
	if s := query.Get(r, "district"); s != "" {
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			httpjson.Fail(w, http.StatusBadRequest, "distrito inválido")
			return
		}
		filter.DistrictID = id
	}
	if s := query.Get(r, "day"); s != "" {
		day, ok := normalize.Day(s)
		if !ok {
			httpjson.Fail(w, http.StatusBadRequest, "día inválido")
			return
		}
		filter.Day = day
	}
	if s := query.Get(r, "modality"); s != "" {
		modality, ok := normalize.Modality(s)
		if !ok {
			httpjson.Fail(w, http.StatusBadRequest, "modalidad inválida")
			return
		}
		filter.Modality = modality
	}

	// The public catalog only shows groups of the active season.
	season, err := seasonstore.New(h.DB, h.Log).GetActive(ctx)
	if err != nil && !errors.Is(err, seasonstore.ErrNoActiveSeason) {
		h.Log.Error("active season lookup failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	if errors.Is(err, seasonstore.ErrNoActiveSeason) {
		httpjson.Write(w, http.StatusOK, listResponse{
			Groups: []models.Group{},
			Meta:   paging.MetaFor(paging.Parse(r), 0),
		})
		return
	}
	filter.SeasonID = season.ID

	// Groups of soft-disabled categories are hidden from the public.
	activeCats, err := categorystore.New(h.DB).ListActive(ctx)
	if err != nil {
		h.Log.Error("category list failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	activeIDs := make([]primitive.ObjectID, 0, len(activeCats))
	categoryActive := false
	for _, c := range activeCats {
		activeIDs = append(activeIDs, c.ID)
		if c.ID == filter.CategoryID {
			categoryActive = true
		}
	}
	if !filter.CategoryID.IsZero() && !categoryActive {
		httpjson.Write(w, http.StatusOK, listResponse{
			Groups: []models.Group{},
			Meta:   paging.MetaFor(paging.Parse(r), 0),
		})
		return
	}
	filter.CategoryIn = activeIDs

	groups, err := groupstore.New(h.DB).List(ctx, filter)
	if err != nil {
		h.Log.Error("catalog list failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}

	if s := query.Get(r, "shuffle"); s != "" {
		if seed, err := strconv.ParseInt(s, 10, 64); err == nil {
			Shuffle(groups, seed)
		}
	}

	p := paging.Parse(r)
	httpjson.Write(w, http.StatusOK, listResponse{
		Groups: paging.Window(groups, p),
		Meta:   paging.MetaFor(p, len(groups)),
	})
}

// Shuffle reorders groups with a seeded Fisher-Yates, so the same seed
// always yields the same order over the same result set.
func Shuffle(groups []models.Group, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(groups), func(i, j int) {
		groups[i], groups[j] = groups[j], groups[i]
	})
}

type detailResponse struct {
	models.Group
	CategoryName string `json:"categoryName"`
	DistrictName string `json:"districtName"`
	SeasonName   string `json:"seasonName"`
	SpotsLeft    int    `json:"spotsLeft"`
}

// HandleGetGroup serves GET /api/groups/{id} with the category, district
// and season names resolved for display.
func (h *Handler) HandleGetGroup(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "catalog detail")
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

	resp := detailResponse{Group: g}
	if g.CurrentMembersCount < g.Capacity {
		resp.SpotsLeft = g.Capacity - g.CurrentMembersCount
	}

	// Reference names are best effort; a broken reference leaves the
	// name blank instead of failing the whole page.
	if cat, err := categorystore.New(h.DB).GetByID(ctx, g.CategoryID); err == nil {
		resp.CategoryName = cat.Name
	}
	if dist, err := districtstore.New(h.DB).GetByID(ctx, g.DistrictID); err == nil {
		resp.DistrictName = dist.Name
	}
	if season, err := seasonstore.New(h.DB, h.Log).GetByID(ctx, g.SeasonID); err == nil {
		resp.SeasonName = season.Name
	}

	httpjson.Write(w, http.StatusOK, resp)
}

// HandleListCategories serves GET /api/categories (active only).
func (h *Handler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "catalog categories")
	defer cancel()

	cats, err := categorystore.New(h.DB).ListActive(ctx)
	if err != nil {
		h.Log.Error("category list failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	httpjson.Write(w, http.StatusOK, cats)
}

// HandleListDistricts serves GET /api/districts.
func (h *Handler) HandleListDistricts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "catalog districts")
	defer cancel()

	dists, err := districtstore.New(h.DB).ListAll(ctx)
	if err != nil {
		h.Log.Error("district list failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	httpjson.Write(w, http.StatusOK, dists)
}

// HandleActiveSeason serves GET /api/seasons/active.
func (h *Handler) HandleActiveSeason(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "catalog season")
	defer cancel()

	season, err := seasonstore.New(h.DB, h.Log).GetActive(ctx)
	if errors.Is(err, seasonstore.ErrNoActiveSeason) {
		httpjson.Fail(w, http.StatusNotFound, "no hay temporada activa")
		return
	}
	if err != nil {
		h.Log.Error("active season lookup failed", zap.Error(err))
		httpjson.Fail(w, http.StatusInternalServerError, "error interno")
		return
	}
	httpjson.Write(w, http.StatusOK, season)
}
