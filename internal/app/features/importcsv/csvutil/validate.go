// internal/app/features/importcsv/csvutil/validate.go
package csvutil

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iglesiacentral/gruposhub/internal/app/system/normalize"
)

// Snapshot is the reference data a validation pass runs against. It is
// fetched once per request, so every row in a batch sees the same state.
// Keys are normalize.Fold of the entity name.
type Snapshot struct {
	Categories map[string]primitive.ObjectID // active categories only
	Districts  map[string]primitive.ObjectID
	Seasons    map[string]primitive.ObjectID
	GroupNames map[string]struct{} // existing group name_ci values
}

// GroupData is a validated, reference-resolved row ready for insertion.
// It round-trips through the client between the validate and confirm calls.
type GroupData struct {
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	CategoryID     primitive.ObjectID `json:"categoryId"`
	DistrictID     primitive.ObjectID `json:"districtId"`
	SeasonID       primitive.ObjectID `json:"seasonId"`
	Capacity       int                `json:"capacity"`
	Day            string             `json:"day"`
	Time           string             `json:"time"`
	Modality       string             `json:"modality"`
	Leaders        []string           `json:"leaders"`
	MinAge         int                `json:"minAge"`
	MaxAge         int                `json:"maxAge"`
	Address        string             `json:"address,omitempty"`
	TargetAudience string             `json:"targetAudience,omitempty"`
	GeoReferencia  string             `json:"geoReferencia,omitempty"`
	LegacyID       string             `json:"legacyId,omitempty"`
}

// RowResult is the verdict for a single row. Data is set only when the
// row passed every check.
type RowResult struct {
	Row     int        `json:"row"`
	IsValid bool       `json:"isValid"`
	Errors  []string   `json:"errors"`
	Data    *GroupData `json:"data,omitempty"`
}

// Summary aggregates a validation pass.
type Summary struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

// Report is the full validation response.
type Report struct {
	Results []RowResult `json:"results"`
	Summary Summary     `json:"summary"`
}

// Validate checks every candidate independently against the snapshot.
// One bad row never affects another row's verdict, so users can import
// the good rows and fix the rest later.
func Validate(cands []Candidate, snap Snapshot) Report {
	report := Report{Results: make([]RowResult, 0, len(cands))}

	for _, c := range cands {
		res := validateRow(c, snap)
		report.Results = append(report.Results, res)
		report.Summary.Total++
		if res.IsValid {
			report.Summary.Valid++
		} else {
			report.Summary.Invalid++
		}
	}
	return report
}

func validateRow(c Candidate, snap Snapshot) RowResult {
	res := RowResult{Row: c.Row, Errors: []string{}}
	data := GroupData{
		Name:           c.Name,
		Description:    c.Description,
		Capacity:       c.Capacity,
		Time:           c.Time,
		MinAge:         c.MinAge,
		MaxAge:         c.MaxAge,
		Address:        strings.TrimSpace(c.Address),
		TargetAudience: strings.TrimSpace(c.TargetAudience),
		GeoReferencia:  strings.TrimSpace(c.GeoReferencia),
		LegacyID:       strings.TrimSpace(c.LegacyID),
	}

	if c.Name == "" {
		res.Errors = append(res.Errors, "falta el nombre del grupo")
	}
	if c.Description == "" {
		res.Errors = append(res.Errors, "falta la descripción")
	}
	if c.Capacity <= 0 {
		res.Errors = append(res.Errors, "la capacidad debe ser mayor que 0")
	}

	if id, ok := snap.Categories[normalize.Fold(c.CategoryName)]; ok {
		data.CategoryID = id
	} else {
		res.Errors = append(res.Errors, fmt.Sprintf("la categoría %q no existe o no está activa", c.CategoryName))
	}
	if id, ok := snap.Districts[normalize.Fold(c.DistrictName)]; ok {
		data.DistrictID = id
	} else {
		res.Errors = append(res.Errors, fmt.Sprintf("el distrito %q no existe", c.DistrictName))
	}
	if id, ok := snap.Seasons[normalize.Fold(c.SeasonName)]; ok {
		data.SeasonID = id
	} else {
		res.Errors = append(res.Errors, fmt.Sprintf("la temporada %q no existe", c.SeasonName))
	}

	if _, exists := snap.GroupNames[normalize.Fold(c.Name)]; exists && c.Name != "" {
		res.Errors = append(res.Errors, fmt.Sprintf("ya existe un grupo llamado %q", c.Name))
	}

	if c.MinAge > c.MaxAge {
		res.Errors = append(res.Errors, "la edad mínima es mayor que la edad máxima")
	}

	if day, ok := normalize.Day(c.Day); ok {
		data.Day = day
	} else {
		res.Errors = append(res.Errors, fmt.Sprintf("día inválido: %q", c.Day))
	}
	if modality, ok := normalize.Modality(c.Modality); ok {
		data.Modality = modality
	} else {
		res.Errors = append(res.Errors, fmt.Sprintf("modalidad inválida: %q", c.Modality))
	}

	data.Leaders = splitLeaders(c.Leaders)

	if len(res.Errors) == 0 {
		res.IsValid = true
		res.Data = &data
	}
	return res
}

// splitLeaders turns "Ana Pérez, Luis Gómez" into a trimmed list,
// dropping empty segments.
func splitLeaders(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
