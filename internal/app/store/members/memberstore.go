// internal/app/store/members/memberstore.go
package memberstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/google/uuid"
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
	db     *mongo.Database
	c      *mongo.Collection
	groups *mongo.Collection
	log    *zap.Logger
}

var (
	ErrGroupFull         = errors.New("the group has no open spots")
	ErrAlreadyRegistered = errors.New("this email is already registered in the group")
)

func New(db *mongo.Database, log *zap.Logger) *Store {
	return &Store{db: db, c: db.Collection("members"), groups: db.Collection("groups"), log: log}
}

// Register claims a spot and inserts the member. The counter increment is
// conditional on remaining capacity, so two concurrent registrations for
// the last spot cannot both succeed. The unique (group_id, email) index
// rejects repeat registrations.
func (s *Store) Register(ctx context.Context, groupID primitive.ObjectID, m models.Member) (models.Member, error) {
	m.ID = primitive.NewObjectID()
	m.GroupID = groupID
	m.Email = normalize.Email(m.Email)
	m.FullName = normalize.Name(m.FullName)
	m.ConfirmationCode = uuid.NewString()
	m.RegisteredAt = time.Now().UTC()

	err := txn.Run(ctx, s.db, s.log, func(tc context.Context) error {
		res, err := s.groups.UpdateOne(tc,
			bson.M{"_id": groupID, "$expr": bson.M{"$lt": bson.A{"$current_members_count", "$capacity"}}},
			bson.M{"$inc": bson.M{"current_members_count": 1}})
		if err != nil {
			return err
		}
		if res.ModifiedCount == 0 {
			// Either the group is full or it does not exist.
			if n, err := s.groups.CountDocuments(tc, bson.M{"_id": groupID}); err == nil && n == 0 {
				return mongo.ErrNoDocuments
			}
			return ErrGroupFull
		}

		if _, err := s.c.InsertOne(tc, m); err != nil {
			// Without a transaction the increment already landed, undo it.
			if _, decErr := s.groups.UpdateOne(tc, bson.M{"_id": groupID},
				bson.M{"$inc": bson.M{"current_members_count": -1}}); decErr != nil {
				s.log.Warn("failed to release claimed spot",
					zap.String("group_id", groupID.Hex()),
					zap.Error(decErr))
			}
			if wafflemongo.IsDup(err) {
				return ErrAlreadyRegistered
			}
			return err
		}
		return nil
	})
	if err != nil {
		return models.Member{}, err
	}
	return m, nil
}

func (s *Store) ListByGroup(ctx context.Context, groupID primitive.ObjectID) ([]models.Member, error) {
	opts := options.Find().SetSort(bson.D{{Key: "registered_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"group_id": groupID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Member
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Remove deletes a member and releases their spot.
func (s *Store) Remove(ctx context.Context, memberID primitive.ObjectID) error {
	return txn.Run(ctx, s.db, s.log, func(tc context.Context) error {
		var m models.Member
		if err := s.c.FindOneAndDelete(tc, bson.M{"_id": memberID}).Decode(&m); err != nil {
			return err
		}
		_, err := s.groups.UpdateOne(tc,
			bson.M{"_id": m.GroupID, "current_members_count": bson.M{"$gt": 0}},
			bson.M{"$inc": bson.M{"current_members_count": -1}})
		return err
	})
}

func (s *Store) CountByGroup(ctx context.Context, groupID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"group_id": groupID})
}
