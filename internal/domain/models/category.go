// internal/domain/models/category.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a thematic tag for groups (e.g. "Discipulado"), carrying a
// badge color and icon for display. Categories are soft-disabled via
// IsActive: inactive categories are hidden from the public catalog and
// cannot be referenced by new groups, but are never deleted implicitly.
type Category struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Name     string             `bson:"name" json:"name"`
	NameCI   string             `bson:"name_ci" json:"-"`
	Color    string             `bson:"color" json:"color"`
	Icon     string             `bson:"icon" json:"icon"`
	IsActive bool               `bson:"is_active" json:"isActive"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
