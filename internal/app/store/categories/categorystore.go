// internal/app/store/categories/categorystore.go
package categorystore

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

var ErrDuplicateCategoryName = errors.New("a category with this name already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("categories")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Category, error) {
	var c models.Category
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return models.Category{}, err
	}
	return c, nil
}

func (s *Store) Create(ctx context.Context, c models.Category) (models.Category, error) {
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.NameCI = normalize.Fold(c.Name)
	c.IsActive = true
	c.CreatedAt = now
	c.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, c); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Category{}, ErrDuplicateCategoryName
		}
		return models.Category{}, err
	}
	return c, nil
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, name, color, icon string) error {
	set := bson.M{
		"name":       name,
		"name_ci":    normalize.Fold(name),
		"color":      color,
		"icon":       icon,
		"updated_at": time.Now().UTC(),
	}
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateCategoryName
		}
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetActive toggles a category. Disabled categories disappear from the
// public catalog but keep their groups intact.
func (s *Store) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"is_active":  active,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Category
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) ListAll(ctx context.Context) ([]models.Category, error) {
	return s.list(ctx, bson.M{})
}

func (s *Store) ListActive(ctx context.Context) ([]models.Category, error) {
	return s.list(ctx, bson.M{"is_active": true})
}
