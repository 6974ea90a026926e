package csvutil

import (
	"reflect"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDecodeBest_UTF8Passthrough(t *testing.T) {
	in := []byte("Nombre,Categoría\nJóvenes Norte,Discipulado\n")
	got := DecodeBest(in)
	if got != string(in) {
		t.Errorf("expected valid UTF-8 returned unchanged, got %q", got)
	}
}

func TestDecodeBest_Windows1252Fallback(t *testing.T) {
	// "Años" in Windows-1252: ñ is a single 0xF1 byte, invalid as UTF-8.
	in := []byte{'A', 0xF1, 'o', 's'}
	got := DecodeBest(in)
	if got != "Años" {
		t.Errorf("expected Windows-1252 fallback to produce %q, got %q", "Años", got)
	}
	if strings.ContainsRune(got, '�') {
		t.Error("expected no replacement characters after fallback")
	}
}

func TestMapHeaders(t *testing.T) {
	tests := []struct {
		header string
		want   Field
	}{
		{"Nombre", FieldName},
		{"GROUP NAME", FieldName},
		{"name", FieldName},
		{"Categoría", FieldCategoryName},
		{"Tipo Grupo", FieldCategoryName},
		{"Capacidad", FieldCapacity},
		{"Cupo", FieldCapacity},
		{"Edad Mínima", FieldMinAge},
		{"edad_minima", FieldMinAge},
		{"EdadMaxima", FieldMaxAge},
		{"Facilitadores", FieldLeaders},
		{"Dirigido a", FieldTargetAudience},
		{"Día", FieldDay},
		{"Modalidad", FieldModality},
		{"Ubicación", FieldGeoReferencia},
	}
	for _, tc := range tests {
		t.Run(tc.header, func(t *testing.T) {
			m := MapHeaders([]string{tc.header})
			if m[0] != tc.want {
				t.Errorf("MapHeaders(%q) = %v, want %v", tc.header, m[0], tc.want)
			}
		})
	}
}

func TestMapHeaders_UnmatchedIgnored(t *testing.T) {
	m := MapHeaders([]string{"Nombre", "Columna Misteriosa", "Capacidad"})
	if len(m) != 2 {
		t.Errorf("expected 2 mapped columns, got %d: %v", len(m), m)
	}
	if _, ok := m[1]; ok {
		t.Error("expected unknown header to be ignored")
	}
}

func TestMapHeaders_DuplicateLastWins(t *testing.T) {
	// Both columns map to name; the later column's value wins at parse time.
	m := MapHeaders([]string{"Nombre", "Name"})
	if m[0] != FieldName || m[1] != FieldName {
		t.Fatalf("expected both columns mapped to name, got %v", m)
	}

	cands := ParseRows([][]string{{"Primero", "Segundo"}}, m, "")
	if len(cands) != 1 || cands[0].Name != "Segundo" {
		t.Errorf("expected later column to win, got %v", cands)
	}
}

func TestParseRows_CoercionAndDefaults(t *testing.T) {
	mapping := MapHeaders([]string{"Nombre", "Capacidad", "EdadMinima"})

	cands := ParseRows([][]string{{"Grupo A", "quince", "18"}}, mapping, "")
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(cands))
	}
	c := cands[0]
	if c.Capacity != 0 {
		t.Errorf("expected unparseable capacity coerced to 0, got %d", c.Capacity)
	}
	if c.MinAge != 18 {
		t.Errorf("MinAge: got %d, want 18", c.MinAge)
	}
	if c.MaxAge != DefaultMaxAge {
		t.Errorf("expected unset MaxAge defaulted to %d, got %d", DefaultMaxAge, c.MaxAge)
	}
}

func TestParseRows_DropsNamelessAndEmpty(t *testing.T) {
	mapping := MapHeaders([]string{"Nombre", "Capacidad"})

	cands := ParseRows([][]string{
		{"Grupo A", "10"},
		{"", "15"},   // no name: blank filler
		{"", ""},     // fully empty
		{"Grupo B", "20"},
	}, mapping, "")

	if len(cands) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(cands))
	}
	// Row numbers keep the original file positions (header is row 1).
	if cands[0].Row != 2 || cands[1].Row != 5 {
		t.Errorf("expected rows 2 and 5, got %d and %d", cands[0].Row, cands[1].Row)
	}
}

func TestParseRows_BatchSeasonInjection(t *testing.T) {
	mapping := MapHeaders([]string{"Nombre", "Temporada"})

	cands := ParseRows([][]string{
		{"Con Temporada", "2026-B"},
		{"Sin Temporada", ""},
	}, mapping, "2026-A")

	if cands[0].SeasonName != "2026-B" {
		t.Errorf("expected per-row season kept, got %q", cands[0].SeasonName)
	}
	if cands[1].SeasonName != "2026-A" {
		t.Errorf("expected batch season injected, got %q", cands[1].SeasonName)
	}
}

func TestParseGroupsCSV_EmptyFile(t *testing.T) {
	_, err := ParseGroupsCSV(strings.NewReader(""), "")
	if err != ErrEmptyFile {
		t.Errorf("expected ErrEmptyFile, got %v", err)
	}
}

func TestParseGroupsCSV_StripsBOM(t *testing.T) {
	cands, err := ParseGroupsCSV(strings.NewReader("\ufeffNombre\nGrupo A\n"), "")
	if err != nil {
		t.Fatalf("ParseGroupsCSV failed: %v", err)
	}
	if len(cands) != 1 || cands[0].Name != "Grupo A" {
		t.Errorf("expected BOM-prefixed header to still map, got %v", cands)
	}
}

func testSnapshot() Snapshot {
	return Snapshot{
		Categories: map[string]primitive.ObjectID{"discipulado": primitive.NewObjectID()},
		Districts:  map[string]primitive.ObjectID{"norte": primitive.NewObjectID()},
		Seasons:    map[string]primitive.ObjectID{"2026-a": primitive.NewObjectID()},
		GroupNames: map[string]struct{}{"grupo existente": {}},
	}
}

func validCandidate() Candidate {
	return Candidate{
		Row:          2,
		Name:         "Jóvenes Norte",
		Description:  "Grupo de jóvenes",
		Capacity:     15,
		CategoryName: "Discipulado",
		DistrictName: "Norte",
		SeasonName:   "2026-A",
		Day:          "lunes",
		Time:         "19:00",
		Modality:     "zoom",
		Leaders:      "Ana Pérez, Luis Gómez",
		MinAge:       18,
		MaxAge:       30,
	}
}

func TestValidate_HappyPath(t *testing.T) {
	snap := testSnapshot()
	report := Validate([]Candidate{validCandidate()}, snap)

	if report.Summary.Total != 1 || report.Summary.Valid != 1 || report.Summary.Invalid != 0 {
		t.Fatalf("unexpected summary %+v", report.Summary)
	}
	res := report.Results[0]
	if !res.IsValid || res.Data == nil {
		t.Fatalf("expected valid row with data, got %+v", res)
	}
	if res.Data.Modality != "Virtual" {
		t.Errorf("Modality: got %q, want Virtual", res.Data.Modality)
	}
	if res.Data.Day != "Lunes" {
		t.Errorf("Day: got %q, want Lunes", res.Data.Day)
	}
	if !reflect.DeepEqual(res.Data.Leaders, []string{"Ana Pérez", "Luis Gómez"}) {
		t.Errorf("Leaders: got %v", res.Data.Leaders)
	}
	if res.Data.CategoryID != snap.Categories["discipulado"] {
		t.Error("expected category name resolved to its ID")
	}
}

func TestValidate_AgeRangeInversion(t *testing.T) {
	c := validCandidate()
	c.MinAge, c.MaxAge = 40, 30

	report := Validate([]Candidate{c}, testSnapshot())
	res := report.Results[0]
	if res.IsValid {
		t.Fatal("expected invalid row")
	}
	if !containsError(res.Errors, "edad mínima") {
		t.Errorf("expected age-range error, got %v", res.Errors)
	}
}

func TestValidate_UnknownCategoryNamesIt(t *testing.T) {
	c := validCandidate()
	c.CategoryName = "Inexistente"

	report := Validate([]Candidate{c}, testSnapshot())
	res := report.Results[0]
	if res.IsValid {
		t.Fatal("expected invalid row")
	}
	if !containsError(res.Errors, "Inexistente") {
		t.Errorf("expected error naming the missing category, got %v", res.Errors)
	}
}

func TestValidate_DuplicateExistingGroup(t *testing.T) {
	c := validCandidate()
	c.Name = "GRUPO EXISTENTE"

	report := Validate([]Candidate{c}, testSnapshot())
	if report.Results[0].IsValid {
		t.Error("expected folded name collision with existing group")
	}
}

func TestValidate_InvalidDayAndModality(t *testing.T) {
	c := validCandidate()
	c.Day = "someday"
	c.Modality = "salon"

	report := Validate([]Candidate{c}, testSnapshot())
	res := report.Results[0]
	if res.IsValid {
		t.Fatal("expected invalid row")
	}
	if !containsError(res.Errors, "día inválido") || !containsError(res.Errors, "modalidad inválida") {
		t.Errorf("expected day and modality errors, got %v", res.Errors)
	}
}

func TestValidate_RowIndependence(t *testing.T) {
	good1 := validCandidate()
	bad := validCandidate()
	bad.Row = 3
	bad.Description = ""
	good2 := validCandidate()
	good2.Row = 4
	good2.Name = "Otro Grupo"

	report := Validate([]Candidate{good1, bad, good2}, testSnapshot())

	if report.Summary.Valid != 2 || report.Summary.Invalid != 1 {
		t.Fatalf("unexpected summary %+v", report.Summary)
	}
	if !report.Results[0].IsValid || report.Results[1].IsValid || !report.Results[2].IsValid {
		t.Error("expected only the malformed row to fail")
	}
}

func TestValidate_Idempotent(t *testing.T) {
	cands := []Candidate{validCandidate()}
	snap := testSnapshot()

	first := Validate(cands, snap)
	second := Validate(cands, snap)
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical reports for identical input and snapshot")
	}
}

func TestEndToEnd_SpanishHeaders(t *testing.T) {
	csvText := "Nombre,Categoria,Distrito,Temporada,Capacidad,Dia,Hora,Modalidad,Facilitadores,EdadMinima,EdadMaxima,Descripcion\n" +
		`"Jóvenes Norte","Discipulado","Norte","2026-A","15","lunes","19:00","zoom","Ana Pérez, Luis Gómez","18","30","Grupo de jóvenes"` + "\n"

	cands, err := ParseGroupsCSV(strings.NewReader(csvText), "")
	if err != nil {
		t.Fatalf("ParseGroupsCSV failed: %v", err)
	}
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(cands))
	}

	report := Validate(cands, testSnapshot())
	res := report.Results[0]
	if !res.IsValid {
		t.Fatalf("expected valid row, errors: %v", res.Errors)
	}
	if res.Data.Modality != "Virtual" || res.Data.Day != "Lunes" {
		t.Errorf("unexpected normalization: modality=%q day=%q", res.Data.Modality, res.Data.Day)
	}
	if !reflect.DeepEqual(res.Data.Leaders, []string{"Ana Pérez", "Luis Gómez"}) {
		t.Errorf("Leaders: got %v", res.Data.Leaders)
	}
}

func containsError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}
