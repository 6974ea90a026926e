// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultPageSize is the number of groups shown per catalog page.
const DefaultPageSize = 24

// MaxPageSize caps client-requested page sizes.
const MaxPageSize = 100

// Params holds the parsed pagination inputs for a list request.
type Params struct {
	Page     int // 1-based
	PageSize int
}

// Parse extracts "page" and "pageSize" query parameters, falling back
// to sane defaults for missing or invalid values.
func Parse(r *http.Request) Params {
	p := Params{Page: 1, PageSize: DefaultPageSize}

	if s := query.Get(r, "page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Page = n
		}
	}
	if s := query.Get(r, "pageSize"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.PageSize = n
			if p.PageSize > MaxPageSize {
				p.PageSize = MaxPageSize
			}
		}
	}
	return p
}

// Offset returns the number of rows to skip for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Window slices rows to the current page. It is used when the full
// result set is already in memory (shuffled catalog listings).
func Window[T any](rows []T, p Params) []T {
	start := p.Offset()
	if start >= len(rows) {
		return []T{}
	}
	end := start + p.PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// Meta is the pagination envelope returned alongside paged JSON lists.
type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// MetaFor computes the envelope for a total row count.
func MetaFor(p Params, total int) Meta {
	pages := 0
	if total > 0 {
		pages = (total + p.PageSize - 1) / p.PageSize
	}
	return Meta{Page: p.Page, PageSize: p.PageSize, Total: total, TotalPages: pages}
}
