// Package paginate computes skip/limit windows and page counts for
// collection listings.
package paginate

import "strconv"

// DefaultLimit is the page size used when the client supplies none,
// zero, or garbage.
const DefaultLimit int64 = 10

// Params is a normalised page request. Page is always >= 1 and Limit
// always > 0, so Skip can never go negative and page-count arithmetic
// can never divide by zero.
type Params struct {
	Page  int64
	Limit int64
}

// Parse builds Params from raw query-string values. Non-numeric or
// out-of-range input falls back to page 1 / DefaultLimit.
func Parse(page, limit string) Params {
	p, err := strconv.ParseInt(page, 10, 64)
	if err != nil || p < 1 {
		p = 1
	}

	l, err := strconv.ParseInt(limit, 10, 64)
	if err != nil || l < 1 {
		l = DefaultLimit
	}

	return Params{Page: p, Limit: l}
}

// Skip returns the number of records to skip before this page.
func (p Params) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

// Pages returns the total page count for the given record total,
// rounding up so a final partial page still counts.
func (p Params) Pages(total int64) int64 {
	if total <= 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}
