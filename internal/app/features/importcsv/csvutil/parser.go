// internal/app/features/importcsv/csvutil/parser.go
package csvutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Default age bounds applied when the file leaves them blank.
const (
	DefaultMinAge = 12
	DefaultMaxAge = 99
)

// Candidate is a parsed but not yet validated group row. Row keeps the
// 1-based file position (the header is row 1) for error reporting.
type Candidate struct {
	Row            int
	Name           string
	Description    string
	Capacity       int
	CategoryName   string
	DistrictName   string
	SeasonName     string
	Day            string
	Time           string
	Modality       string
	Leaders        string
	MinAge         int
	MaxAge         int
	Address        string
	TargetAudience string
	GeoReferencia  string
	LegacyID       string
}

// ParseGroupsCSV decodes and parses an uploaded group CSV. The first row
// must be a header row; batchSeason, when non-empty, fills in rows that
// carry no season column of their own.
//
// Structural problems (empty file, malformed CSV, too many rows) abort the
// whole file with an error. Per-row business problems are left for the
// validator; rows without a name are dropped silently as blank filler.
func ParseGroupsCSV(r io.Reader, batchSeason string) ([]Candidate, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("unreadable CSV header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	mapping := MapHeaders(header)

	var records [][]string
	line := 1
	for {
		rec, err := reader.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(records) >= MaxRows {
			return nil, ErrTooManyRows
		}
		records = append(records, rec)
	}

	return ParseRows(records, mapping, batchSeason), nil
}

// ParseRows converts raw data rows into candidates using the header
// mapping. Row numbers start at 2 because row 1 is the header.
func ParseRows(records [][]string, mapping map[int]Field, batchSeason string) []Candidate {
	var out []Candidate
	for i, rec := range records {
		c, ok := parseRow(rec, mapping, batchSeason)
		if !ok {
			continue
		}
		c.Row = i + 2
		out = append(out, c)
	}
	return out
}

// parseRow builds one candidate. It returns ok=false for rows that carry
// no mapped values or no name.
func parseRow(rec []string, mapping map[int]Field, batchSeason string) (Candidate, bool) {
	var c Candidate
	minAgeSet, maxAgeSet := false, false
	any := false

	for i, raw := range rec {
		f, mapped := mapping[i]
		if !mapped {
			continue
		}
		v := strings.TrimSpace(raw)
		if v == "" {
			continue
		}
		any = true

		switch f {
		case FieldName:
			c.Name = v
		case FieldDescription:
			c.Description = v
		case FieldCapacity:
			c.Capacity = parseInt(v)
		case FieldCategoryName:
			c.CategoryName = v
		case FieldDistrictName:
			c.DistrictName = v
		case FieldSeasonName:
			c.SeasonName = v
		case FieldDay:
			c.Day = v
		case FieldTime:
			c.Time = v
		case FieldModality:
			c.Modality = v
		case FieldLeaders:
			c.Leaders = v
		case FieldMinAge:
			c.MinAge = parseInt(v)
			minAgeSet = true
		case FieldMaxAge:
			c.MaxAge = parseInt(v)
			maxAgeSet = true
		case FieldAddress:
			c.Address = v
		case FieldTargetAudience:
			c.TargetAudience = v
		case FieldGeoReferencia:
			c.GeoReferencia = v
		case FieldLegacyID:
			c.LegacyID = v
		}
	}

	if !any || c.Name == "" {
		return Candidate{}, false
	}

	if c.SeasonName == "" && batchSeason != "" {
		c.SeasonName = batchSeason
	}
	if !minAgeSet {
		c.MinAge = DefaultMinAge
	}
	if !maxAgeSet {
		c.MaxAge = DefaultMaxAge
	}
	return c, true
}

// parseInt coerces unparseable numbers to 0; validation rejects the
// resulting out-of-range value with a row error instead of failing here.
func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
