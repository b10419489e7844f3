package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationConsistent(t *testing.T) {
	tests := []struct {
		name string
		p    Pagination
		ok   bool
	}{
		{"more pages remain", Pagination{Total: 100, Limit: 25, Offset: 50, HasMore: true}, true},
		{"last page", Pagination{Total: 100, Limit: 25, Offset: 75, HasMore: false}, true},
		{"exactly consumed", Pagination{Total: 50, Limit: 25, Offset: 25, HasMore: false}, true},
		{"empty result", Pagination{Total: 0, Limit: 25, Offset: 0, HasMore: false}, true},
		{"lying hasMore", Pagination{Total: 10, Limit: 25, Offset: 0, HasMore: true}, false},
		{"missing hasMore", Pagination{Total: 100, Limit: 25, Offset: 0, HasMore: false}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, tc.p.Consistent())
		})
	}
}
