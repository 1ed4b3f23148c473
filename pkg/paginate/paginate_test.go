package paginate_test

import (
	"testing"

	"github.com/shashiranjanraj/bazaar/pkg/paginate"
)

func TestParseDefaults(t *testing.T) {
	p := paginate.Parse("", "")
	if p.Page != 1 {
		t.Errorf("expected page 1, got %d", p.Page)
	}
	if p.Limit != paginate.DefaultLimit {
		t.Errorf("expected default limit, got %d", p.Limit)
	}
}

func TestParseGarbage(t *testing.T) {
	p := paginate.Parse("abc", "xyz")
	if p.Page != 1 || p.Limit != paginate.DefaultLimit {
		t.Errorf("expected defaults for garbage input, got %+v", p)
	}
}

func TestParseClampsPage(t *testing.T) {
	for _, page := range []string{"0", "-3"} {
		p := paginate.Parse(page, "10")
		if p.Page != 1 {
			t.Errorf("page %q: expected clamp to 1, got %d", page, p.Page)
		}
		if p.Skip() != 0 {
			t.Errorf("page %q: expected skip 0, got %d", page, p.Skip())
		}
	}
}

func TestZeroLimitFallsBackToDefault(t *testing.T) {
	p := paginate.Parse("1", "0")
	if p.Limit != paginate.DefaultLimit {
		t.Errorf("expected default limit for limit=0, got %d", p.Limit)
	}
	// Must not divide by zero.
	if got := p.Pages(25); got != 3 {
		t.Errorf("expected 3 pages of 25 items, got %d", got)
	}
}

func TestSkipAndPages(t *testing.T) {
	cases := []struct {
		page, limit string
		total       int64
		skip, pages int64
	}{
		{"1", "10", 25, 0, 3},
		{"2", "10", 25, 10, 3},
		{"3", "10", 25, 20, 3},
		{"1", "10", 30, 0, 3},
		{"1", "10", 0, 0, 0},
		{"5", "7", 50, 28, 8},
	}

	for _, c := range cases {
		p := paginate.Parse(c.page, c.limit)
		if got := p.Skip(); got != c.skip {
			t.Errorf("page=%s limit=%s: skip=%d, want %d", c.page, c.limit, got, c.skip)
		}
		if got := p.Pages(c.total); got != c.pages {
			t.Errorf("page=%s limit=%s total=%d: pages=%d, want %d", c.page, c.limit, c.total, got, c.pages)
		}
	}
}
