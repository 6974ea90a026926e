// internal/domain/models/season.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Season is a time-bounded period during which groups run and registrations
// are open. At most one season is active at a time: activating a season
// deactivates all others (enforced in the season store).
type Season struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Name     string             `bson:"name" json:"name"`
	NameCI   string             `bson:"name_ci" json:"-"`
	IsActive bool               `bson:"is_active" json:"isActive"`

	// Registration window and group period. End > start for both ranges,
	// enforced at input time.
	RegistrationStart time.Time `bson:"registration_start" json:"registrationStart"`
	RegistrationEnd   time.Time `bson:"registration_end" json:"registrationEnd"`
	PeriodStart       time.Time `bson:"period_start" json:"periodStart"`
	PeriodEnd         time.Time `bson:"period_end" json:"periodEnd"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// RegistrationOpenAt reports whether the registration window contains t.
func (s Season) RegistrationOpenAt(t time.Time) bool {
	return !t.Before(s.RegistrationStart) && !t.After(s.RegistrationEnd)
}
