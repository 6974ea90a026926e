// internal/domain/models/member.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member is a person's registration to a specific group. Uniqueness of
// (group_id, email) is enforced by a unique index; email is stored
// lowercased. Members survive group deletion (no cascade), so readers must
// tolerate a GroupID that no longer resolves.
type Member struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	GroupID  primitive.ObjectID `bson:"group_id" json:"groupId"`
	FullName string             `bson:"full_name" json:"fullName"`
	Email    string             `bson:"email" json:"email"`
	Phone    string             `bson:"phone" json:"phone"`

	// ConfirmationCode is handed back to the registrant as a lightweight
	// receipt for later lookups.
	ConfirmationCode string `bson:"confirmation_code" json:"confirmationCode"`

	RegisteredAt time.Time `bson:"registered_at" json:"registeredAt"`
}
