package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{total: 0, size: 10, want: 0},
		{total: 1, size: 10, want: 1},
		{total: 2, size: 10, want: 1},
		{total: 10, size: 10, want: 1},
		{total: 11, size: 10, want: 2},
		{total: 10000, size: 10, want: 1000},
		{total: 5, size: 0, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.size), "total=%d size=%d", tt.total, tt.size)
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name               string
		page, total, want int
	}{
		{name: "in range", page: 2, total: 25, want: 2},
		{name: "past last page", page: 7, total: 25, want: 3},
		{name: "empty result keeps page one", page: 4, total: 0, want: 1},
		{name: "zero page", page: 0, total: 25, want: 1},
		{name: "last page exactly", page: 3, total: 30, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampPage(tt.page, tt.total, 10)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 1)
			assert.LessOrEqual(t, got, max(1, TotalPages(tt.total, 10)))
		})
	}
}
