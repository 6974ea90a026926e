// internal/app/store/seasons/seasonstore.go
package seasonstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/iglesiacentral/gruposhub/internal/app/system/normalize"
	"github.com/iglesiacentral/gruposhub/internal/app/system/txn"
	"github.com/iglesiacentral/gruposhub/internal/domain/models"
)

type Store struct {
	db  *mongo.Database
	c   *mongo.Collection
	log *zap.Logger
}

var (
	ErrDuplicateSeasonName = errors.New("a season with this name already exists")
	ErrNoActiveSeason      = errors.New("no active season")
)

func New(db *mongo.Database, log *zap.Logger) *Store {
	return &Store{db: db, c: db.Collection("seasons"), log: log}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Season, error) {
	var se models.Season
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&se); err != nil {
		return models.Season{}, err
	}
	return se, nil
}

// GetActive returns the single active season, or ErrNoActiveSeason.
func (s *Store) GetActive(ctx context.Context) (models.Season, error) {
	var se models.Season
	err := s.c.FindOne(ctx, bson.M{"is_active": true}).Decode(&se)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Season{}, ErrNoActiveSeason
	}
	if err != nil {
		return models.Season{}, err
	}
	return se, nil
}

// Create inserts a season. Activating it deactivates every other season
// inside the same transaction, so at most one stays active.
func (s *Store) Create(ctx context.Context, se models.Season) (models.Season, error) {
	now := time.Now().UTC()
	se.ID = primitive.NewObjectID()
	se.NameCI = normalize.Fold(se.Name)
	se.CreatedAt = now
	se.UpdatedAt = now

	err := txn.Run(ctx, s.db, s.log, func(tc context.Context) error {
		if se.IsActive {
			if err := s.deactivateOthers(tc, se.ID); err != nil {
				return err
			}
		}
		_, err := s.c.InsertOne(tc, se)
		return err
	})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Season{}, ErrDuplicateSeasonName
		}
		return models.Season{}, err
	}
	return se, nil
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, se models.Season) error {
	set := bson.M{
		"name":               se.Name,
		"name_ci":            normalize.Fold(se.Name),
		"is_active":          se.IsActive,
		"registration_start": se.RegistrationStart,
		"registration_end":   se.RegistrationEnd,
		"period_start":       se.PeriodStart,
		"period_end":         se.PeriodEnd,
		"updated_at":         time.Now().UTC(),
	}

	err := txn.Run(ctx, s.db, s.log, func(tc context.Context) error {
		if se.IsActive {
			if err := s.deactivateOthers(tc, id); err != nil {
				return err
			}
		}
		res, err := s.c.UpdateByID(tc, id, bson.M{"$set": set})
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return mongo.ErrNoDocuments
		}
		return nil
	})
	if err != nil && wafflemongo.IsDup(err) {
		return ErrDuplicateSeasonName
	}
	return err
}

func (s *Store) deactivateOthers(ctx context.Context, keep primitive.ObjectID) error {
	_, err := s.c.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$ne": keep}, "is_active": true},
		bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now().UTC()}})
	return err
}

func (s *Store) ListAll(ctx context.Context) ([]models.Season, error) {
	opts := options.Find().SetSort(bson.D{{Key: "registration_start", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Season
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
