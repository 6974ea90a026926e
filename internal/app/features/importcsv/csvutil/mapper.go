// internal/app/features/importcsv/csvutil/mapper.go
package csvutil

import "github.com/iglesiacentral/gruposhub/internal/app/system/normalize"

// aliasIndex is built once from fieldAliases: normalized header key → field.
var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[string]Field {
	idx := make(map[string]Field)
	for _, f := range fieldOrder {
		if k := normalize.Key(string(f)); idx[k] == "" {
			idx[k] = f
		}
		for _, alias := range fieldAliases[f] {
			if k := normalize.Key(alias); idx[k] == "" {
				idx[k] = f
			}
		}
	}
	return idx
}

// MapHeaders resolves a header row to a column-index → field mapping.
// Unmatched headers are ignored. When two columns map to the same field,
// both entries are kept and the later column wins during row parsing.
func MapHeaders(headers []string) map[int]Field {
	mapping := make(map[int]Field, len(headers))
	for i, h := range headers {
		k := normalize.Key(h)
		if k == "" {
			continue
		}
		if f, ok := aliasIndex[k]; ok {
			mapping[i] = f
		}
	}
	return mapping
}
