// internal/app/system/normalize/normalize.go
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer decomposes to NFD and drops combining marks, which turns
// "É" into "E" and "ñ" into "n".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold returns a trimmed, lowercased, diacritic-stripped form of s.
// It is the single normalization used for case-insensitive name fields,
// weekday matching, and existence checks, so all matchers behave the same.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Key reduces s to a bare comparison key: Fold plus removal of every
// non-alphanumeric rune. "Edad Mínima" and "edad_minima" both become
// "edadminima". Used for CSV header alias matching.
func Key(s string) string {
	folded := Fold(s)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace and collapses internal runs of
// whitespace to single spaces, preserving case.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// weekdays maps folded weekday names to their canonical Spanish form.
var weekdays = map[string]string{
	"lunes":     "Lunes",
	"martes":    "Martes",
	"miercoles": "Miércoles",
	"jueves":    "Jueves",
	"viernes":   "Viernes",
	"sabado":    "Sábado",
	"domingo":   "Domingo",
}

// Day resolves s to one of the seven canonical Spanish weekday names.
// Matching is case- and diacritic-insensitive ("MIÉRCOLES", "miercoles"
// and "Miercoles " all resolve to "Miércoles").
func Day(s string) (string, bool) {
	d, ok := weekdays[Fold(s)]
	return d, ok
}

// Modality resolves free-form modality text to one of the canonical values
// "Presencial", "Virtual" or "Híbrido" using case- and diacritic-insensitive
// substring matching: platform names like "zoom" or "teams" count as
// Virtual, "mixto" counts as Híbrido. Unrecognized values do not match.
func Modality(s string) (string, bool) {
	v := Fold(s)
	switch {
	case strings.Contains(v, "presencial"):
		return "Presencial", true
	case strings.Contains(v, "virtual"),
		strings.Contains(v, "zoom"),
		strings.Contains(v, "teams"),
		strings.Contains(v, "online"):
		return "Virtual", true
	case strings.Contains(v, "hibrido"),
		strings.Contains(v, "mixto"):
		return "Híbrido", true
	}
	return "", false
}
