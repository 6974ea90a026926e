// internal/domain/models/group.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Canonical values for Group.Modality.
const (
	ModalityPresencial = "Presencial"
	ModalityVirtual    = "Virtual"
	ModalityHibrido    = "Híbrido"
)

// Group represents a small community group ("grupo pequeño") that people
// can browse and register for during a season.
//
// NOTE:
//   - CurrentMembersCount is a denormalized counter. It starts at 0 and is
//     mutated only by member registration/removal, never by imports or
//     group edits.
//   - NameCI is the folded (lowercase, diacritic-stripped) name backing the
//     unique index that enforces name uniqueness across the whole dataset.
type Group struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	NameCI      string             `bson:"name_ci" json:"-"`
	Description string             `bson:"description" json:"description"`

	SeasonID   primitive.ObjectID `bson:"season_id" json:"seasonId"`
	CategoryID primitive.ObjectID `bson:"category_id" json:"categoryId"`
	DistrictID primitive.ObjectID `bson:"district_id" json:"districtId"`

	Capacity            int `bson:"capacity" json:"capacity"`
	CurrentMembersCount int `bson:"current_members_count" json:"currentMembersCount"`

	Day      string   `bson:"day" json:"day"`           // canonical Spanish weekday, e.g. "Lunes"
	Time     string   `bson:"time" json:"time"`         // e.g. "19:00"
	Modality string   `bson:"modality" json:"modality"` // Presencial | Virtual | Híbrido
	Leaders  []string `bson:"leaders" json:"leaders"`

	MinAge int `bson:"min_age" json:"minAge"`
	MaxAge int `bson:"max_age" json:"maxAge"`

	Address        string `bson:"address,omitempty" json:"address,omitempty"`
	TargetAudience string `bson:"target_audience,omitempty" json:"targetAudience,omitempty"`
	GeoReferencia  string `bson:"geo_referencia,omitempty" json:"geoReferencia,omitempty"`
	LegacyID       string `bson:"legacy_id,omitempty" json:"legacyId,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
