package pagination_test

import (
	"testing"

	"github.com/sgcontabil/sgc_backend/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		number     int
		size       int
		wantNumber int
		wantSize   int
	}{
		{"defaults", 0, 0, 1, pagination.DefaultPageSize},
		{"negative page", -3, 10, 1, 10},
		{"size capped", 2, 500, 2, pagination.MaxPageSize},
		{"passthrough", 4, 25, 4, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pagination.Normalize(tt.number, tt.size)
			assert.Equal(t, tt.wantNumber, p.Number)
			assert.Equal(t, tt.wantSize, p.Size)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Page{Number: 1, Size: 20}.Offset())
	assert.Equal(t, 40, pagination.Page{Number: 3, Size: 20}.Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, pagination.TotalPages(0, 20))
	assert.Equal(t, 1, pagination.TotalPages(1, 20))
	assert.Equal(t, 1, pagination.TotalPages(20, 20))
	assert.Equal(t, 2, pagination.TotalPages(21, 20))
	assert.Equal(t, 5, pagination.TotalPages(100, 20))
}
