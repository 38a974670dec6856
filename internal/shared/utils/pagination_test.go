package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{name: "valid values pass through", page: 2, pageSize: 50, wantPage: 2, wantPageSize: 50},
		{name: "zero page defaults", page: 0, pageSize: 20, wantPage: 1, wantPageSize: 20},
		{name: "negative page defaults", page: -3, pageSize: 20, wantPage: 1, wantPageSize: 20},
		{name: "zero page size defaults", page: 1, pageSize: 0, wantPage: 1, wantPageSize: 20},
		{name: "oversized page size is capped", page: 1, pageSize: 500, wantPage: 1, wantPageSize: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPageSize, got.PageSize)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 1, TotalPages(5, 0))
}
