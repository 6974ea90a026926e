package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iglesiacentral/gruposhub/internal/app/system/normalize"
	"github.com/iglesiacentral/gruposhub/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateCategory creates an active test category with the given name.
func (f *Fixtures) CreateCategory(ctx context.Context, name string) models.Category {
	f.t.Helper()

	now := time.Now().UTC()
	cat := models.Category{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    normalize.Fold(name),
		Color:     "#4A90D9",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("categories").InsertOne(ctx, cat); err != nil {
		f.t.Fatalf("failed to create test category: %v", err)
	}
	return cat
}

// SetCategoryActive flips a test category's active flag directly.
func (f *Fixtures) SetCategoryActive(ctx context.Context, id primitive.ObjectID, active bool) {
	f.t.Helper()

	_, err := f.db.Collection("categories").UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_active": active, "updated_at": time.Now().UTC()}})
	if err != nil {
		f.t.Fatalf("failed to update test category: %v", err)
	}
}

// CreateDistrict creates a test district with the given name.
func (f *Fixtures) CreateDistrict(ctx context.Context, name string) models.District {
	f.t.Helper()

	now := time.Now().UTC()
	d := models.District{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    normalize.Fold(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("districts").InsertOne(ctx, d); err != nil {
		f.t.Fatalf("failed to create test district: %v", err)
	}
	return d
}

// CreateActiveSeason creates a season whose registration window is open now.
func (f *Fixtures) CreateActiveSeason(ctx context.Context, name string) models.Season {
	f.t.Helper()

	now := time.Now().UTC()
	se := models.Season{
		ID:                primitive.NewObjectID(),
		Name:              name,
		NameCI:            normalize.Fold(name),
		IsActive:          true,
		RegistrationStart: now.Add(-24 * time.Hour),
		RegistrationEnd:   now.Add(30 * 24 * time.Hour),
		PeriodStart:       now.Add(-24 * time.Hour),
		PeriodEnd:         now.Add(90 * 24 * time.Hour),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if _, err := f.db.Collection("seasons").InsertOne(ctx, se); err != nil {
		f.t.Fatalf("failed to create test season: %v", err)
	}
	return se
}

// CreateClosedSeason creates a season whose registration window already ended.
func (f *Fixtures) CreateClosedSeason(ctx context.Context, name string) models.Season {
	f.t.Helper()

	now := time.Now().UTC()
	se := models.Season{
		ID:                primitive.NewObjectID(),
		Name:              name,
		NameCI:            normalize.Fold(name),
		IsActive:          true,
		RegistrationStart: now.Add(-60 * 24 * time.Hour),
		RegistrationEnd:   now.Add(-24 * time.Hour),
		PeriodStart:       now.Add(-60 * 24 * time.Hour),
		PeriodEnd:         now.Add(30 * 24 * time.Hour),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if _, err := f.db.Collection("seasons").InsertOne(ctx, se); err != nil {
		f.t.Fatalf("failed to create test season: %v", err)
	}
	return se
}

// GroupOpts tweaks CreateGroup; zero values get sensible defaults.
type GroupOpts struct {
	Capacity     int
	Members      int
	SeasonID     primitive.ObjectID
	CategoryID   primitive.ObjectID
	DistrictID   primitive.ObjectID
	Day          string
	Modality     string
	MinAge       int
	MaxAge       int
}

// CreateGroup creates a test group.
func (f *Fixtures) CreateGroup(ctx context.Context, name string, opts GroupOpts) models.Group {
	f.t.Helper()

	if opts.Capacity == 0 {
		opts.Capacity = 20
	}
	if opts.Day == "" {
		opts.Day = "Martes"
	}
	if opts.Modality == "" {
		opts.Modality = models.ModalityPresencial
	}

	now := time.Now().UTC()
	g := models.Group{
		ID:                  primitive.NewObjectID(),
		Name:                name,
		NameCI:              normalize.Fold(name),
		Description:         "Test group description",
		SeasonID:            opts.SeasonID,
		CategoryID:          opts.CategoryID,
		DistrictID:          opts.DistrictID,
		Capacity:            opts.Capacity,
		CurrentMembersCount: opts.Members,
		Day:                 opts.Day,
		Time:                "19:00",
		Modality:            opts.Modality,
		Leaders:             []string{"Test Leader"},
		MinAge:              opts.MinAge,
		MaxAge:              opts.MaxAge,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if _, err := f.db.Collection("groups").InsertOne(ctx, g); err != nil {
		f.t.Fatalf("failed to create test group: %v", err)
	}
	return g
}

// CreateMember registers a member directly, bypassing capacity checks.
func (f *Fixtures) CreateMember(ctx context.Context, groupID primitive.ObjectID, fullName, email string) models.Member {
	f.t.Helper()

	m := models.Member{
		ID:               primitive.NewObjectID(),
		GroupID:          groupID,
		FullName:         fullName,
		Email:            normalize.Email(email),
		Phone:            "555-0100",
		ConfirmationCode: uuid.NewString(),
		RegisteredAt:     time.Now().UTC(),
	}
	if _, err := f.db.Collection("members").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test member: %v", err)
	}
	return m
}
