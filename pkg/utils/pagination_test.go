package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name    string
		page    int
		perPage int
		want    []int
	}{
		{name: "first page", page: 1, perPage: 3, want: []int{1, 2, 3}},
		{name: "last partial page", page: 3, perPage: 3, want: []int{7}},
		{name: "past the end", page: 4, perPage: 3, want: []int{}},
		{name: "page below one", page: 0, perPage: 2, want: []int{1, 2}},
		{name: "no page size", page: 1, perPage: 0, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(items, tt.page, tt.perPage))
		})
	}

	assert.Equal(t, 3, CalculateTotalPages(7, 3))
	assert.Equal(t, 0, CalculateTotalPages(0, 3))
}
