// internal/app/store/districts/districtstore.go
package districtstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iglesiacentral/gruposhub/internal/app/system/normalize"
	"github.com/iglesiacentral/gruposhub/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateDistrictName = errors.New("a district with this name already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("districts")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.District, error) {
	var d models.District
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return models.District{}, err
	}
	return d, nil
}

func (s *Store) Create(ctx context.Context, d models.District) (models.District, error) {
	now := time.Now().UTC()
	d.ID = primitive.NewObjectID()
	d.NameCI = normalize.Fold(d.Name)
	d.CreatedAt = now
	d.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, d); err != nil {
		if wafflemongo.IsDup(err) {
			return models.District{}, ErrDuplicateDistrictName
		}
		return models.District{}, err
	}
	return d, nil
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, name string) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"name":       name,
		"name_ci":    normalize.Fold(name),
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateDistrictName
		}
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) ListAll(ctx context.Context) ([]models.District, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.District
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
