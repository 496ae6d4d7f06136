package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePagination(t *testing.T) {
	tests := []struct {
		name        string
		page, limit string
		want        Pagination
	}{
		{"both absent", "", "", Pagination{Page: 1, Limit: 10, Skip: 0}},
		{"plain values", "2", "5", Pagination{Page: 2, Limit: 5, Skip: 5}},
		{"zero page", "0", "10", Pagination{Page: 1, Limit: 10, Skip: 0}},
		{"negative page", "-3", "10", Pagination{Page: 1, Limit: 10, Skip: 0}},
		{"non-integer page", "two", "10", Pagination{Page: 1, Limit: 10, Skip: 0}},
		{"zero limit", "1", "0", Pagination{Page: 1, Limit: 10, Skip: 0}},
		{"non-integer limit", "1", "lots", Pagination{Page: 1, Limit: 10, Skip: 0}},
		{"limit capped", "1", "500", Pagination{Page: 1, Limit: 100, Skip: 0}},
		{"skip math", "4", "25", Pagination{Page: 4, Limit: 25, Skip: 75}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePagination(tt.page, tt.limit))
		})
	}
}
