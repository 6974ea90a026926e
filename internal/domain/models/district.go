// internal/domain/models/district.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// District is a flat geographic tag used to locate groups.
type District struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	Name   string             `bson:"name" json:"name"`
	NameCI string             `bson:"name_ci" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
