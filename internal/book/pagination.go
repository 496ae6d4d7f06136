package book

import "strconv"

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// Pagination is a normalized page window. Page and Limit are always
// positive, Limit never exceeds maxLimit, and Skip is never negative.
type Pagination struct {
	Page  int
	Limit int
	Skip  int
}

// NormalizePagination derives a safe window from raw query input. Absent
// and malformed values fall back to the defaults.
func NormalizePagination(page, limit string) Pagination {
	p := parsePositive(page, defaultPage)
	l := parsePositive(limit, defaultLimit)
	if l > maxLimit {
		l = maxLimit
	}
	return Pagination{Page: p, Limit: l, Skip: (p - 1) * l}
}

func parsePositive(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
