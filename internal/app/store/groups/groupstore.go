// internal/app/store/groups/groupstore.go
package groupstore

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

var ErrDuplicateGroupName = errors.New("a group with this name already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("groups")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Group, error) {
	var g models.Group
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

func (s *Store) Create(ctx context.Context, g models.Group) (models.Group, error) {
	now := time.Now().UTC()
	g.ID = primitive.NewObjectID()
	g.NameCI = normalize.Fold(g.Name)
	g.CreatedAt = now
	g.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, g)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Group{}, ErrDuplicateGroupName
		}
		return models.Group{}, err
	}
	return g, nil
}

// Filter narrows catalog and admin listings. Zero values mean "no filter".
type Filter struct {
	SeasonID   primitive.ObjectID
	CategoryID primitive.ObjectID
	DistrictID primitive.ObjectID

	// CategoryIn restricts results to the given categories. The catalog
	// passes the active-category set here so groups of disabled
	// categories disappear from public listings.
	CategoryIn []primitive.ObjectID

	Day      string
	Modality string
	Query    string // matched against name_ci as a folded substring
}

func (f Filter) toBSON() bson.M {
	q := bson.M{}
	if !f.SeasonID.IsZero() {
		q["season_id"] = f.SeasonID
	}
	if !f.CategoryID.IsZero() {
		q["category_id"] = f.CategoryID
	} else if f.CategoryIn != nil {
		q["category_id"] = bson.M{"$in": f.CategoryIn}
	}
	if !f.DistrictID.IsZero() {
		q["district_id"] = f.DistrictID
	}
	if f.Day != "" {
		q["day"] = f.Day
	}
	if f.Modality != "" {
		q["modality"] = f.Modality
	}
	if f.Query != "" {
		q["name_ci"] = bson.M{"$regex": primitive.Regex{Pattern: regexQuote(normalize.Fold(f.Query))}}
	}
	return q
}

// regexQuote escapes regex metacharacters so user input matches literally.
func regexQuote(s string) string {
	const meta = `\.+*?()|[]{}^$`
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(meta); j++ {
			if s[i] == meta[j] {
				out = append(out, '\\')
				break
			}
		}
		out = append(out, s[i])
	}
	return string(out)
}

// List returns all groups matching the filter, sorted by folded name.
// Catalog shuffling happens in the handler over the full result set.
func (s *Store) List(ctx context.Context, f Filter) ([]models.Group, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, f.toBSON(), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Group
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Count(ctx context.Context, f Filter) (int64, error) {
	return s.c.CountDocuments(ctx, f.toBSON())
}

// Update replaces the editable fields of a group. The name is re-folded
// so the uniqueness index stays consistent.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, g models.Group) error {
	set := bson.M{
		"name":            g.Name,
		"name_ci":         normalize.Fold(g.Name),
		"description":     g.Description,
		"season_id":       g.SeasonID,
		"category_id":     g.CategoryID,
		"district_id":     g.DistrictID,
		"capacity":        g.Capacity,
		"day":             g.Day,
		"time":            g.Time,
		"modality":        g.Modality,
		"leaders":         g.Leaders,
		"min_age":         g.MinAge,
		"max_age":         g.MaxAge,
		"address":         g.Address,
		"target_audience": g.TargetAudience,
		"geo_referencia":  g.GeoReferencia,
		"updated_at":      time.Now().UTC(),
	}
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateGroupName
		}
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a group by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// NamesCI returns the folded names of every existing group. The import
// validator uses this as its duplicate-check snapshot.
func (s *Store) NamesCI(ctx context.Context) (map[string]struct{}, error) {
	opts := options.Find().SetProjection(bson.M{"name_ci": 1})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	names := map[string]struct{}{}
	for cur.Next(ctx) {
		var doc struct {
			NameCI string `bson:"name_ci"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		names[doc.NameCI] = struct{}{}
	}
	return names, cur.Err()
}

// InsertBatch inserts confirmed import rows one at a time so a late
// duplicate does not abort the rows before it. It returns how many rows
// made it in plus a per-name error map for the ones that did not.
func (s *Store) InsertBatch(ctx context.Context, groups []models.Group) (int, map[string]error) {
	failed := map[string]error{}
	inserted := 0
	for _, g := range groups {
		if _, err := s.Create(ctx, g); err != nil {
			failed[g.Name] = err
			continue
		}
		inserted++
	}
	return inserted, failed
}
