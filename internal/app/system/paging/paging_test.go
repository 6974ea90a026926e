package paging

import (
	"net/http/httptest"
	"testing"
)

func TestParse_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/groups", nil)
	p := Parse(r)
	if p.Page != 1 || p.PageSize != DefaultPageSize {
		t.Errorf("expected defaults, got %+v", p)
	}
}

func TestParse_Values(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/groups?page=3&pageSize=10", nil)
	p := Parse(r)
	if p.Page != 3 || p.PageSize != 10 {
		t.Errorf("expected page=3 pageSize=10, got %+v", p)
	}
}

func TestParse_InvalidAndCapped(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/groups?page=0&pageSize=9999", nil)
	p := Parse(r)
	if p.Page != 1 {
		t.Errorf("expected page clamped to 1, got %d", p.Page)
	}
	if p.PageSize != MaxPageSize {
		t.Errorf("expected pageSize capped at %d, got %d", MaxPageSize, p.PageSize)
	}
}

func TestWindow(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5}

	got := Window(rows, Params{Page: 2, PageSize: 2})
	if len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Errorf("expected [3 4], got %v", got)
	}

	got = Window(rows, Params{Page: 3, PageSize: 2})
	if len(got) != 1 || got[0] != 5 {
		t.Errorf("expected [5], got %v", got)
	}

	got = Window(rows, Params{Page: 9, PageSize: 2})
	if len(got) != 0 {
		t.Errorf("expected empty page past the end, got %v", got)
	}
}

func TestMetaFor(t *testing.T) {
	m := MetaFor(Params{Page: 2, PageSize: 10}, 35)
	if m.TotalPages != 4 {
		t.Errorf("expected 4 pages, got %d", m.TotalPages)
	}
	if m.Total != 35 || m.Page != 2 {
		t.Errorf("unexpected meta %+v", m)
	}

	m = MetaFor(Params{Page: 1, PageSize: 10}, 0)
	if m.TotalPages != 0 {
		t.Errorf("expected 0 pages for empty set, got %d", m.TotalPages)
	}
}
