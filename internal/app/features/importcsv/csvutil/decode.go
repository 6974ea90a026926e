// internal/app/features/importcsv/csvutil/decode.go
package csvutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeBest decodes an uploaded file as UTF-8, falling back to
// Windows-1252 when the UTF-8 reading produced replacement characters.
// Spreadsheet exports from regional office software frequently arrive in
// legacy single-byte encodings; this is a heuristic, it can only detect
// decode failures, not a valid-but-wrong decoding.
//
// It never fails: when the fallback decoder also errors, the original
// UTF-8 reading is returned as-is.
func DecodeBest(raw []byte) string {
	s := string(raw)

	// ContainsRune finds both a literal U+FFFD already present in the
	// file and the replacement runes produced by invalid byte sequences.
	if !strings.ContainsRune(s, utf8.RuneError) {
		return s
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return s
	}
	return string(decoded)
}
