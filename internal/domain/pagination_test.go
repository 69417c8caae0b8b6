package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lokalpro/internal/domain"
)

func TestPaginationParams_Validate(t *testing.T) {
	t.Run("Zero Values Get Defaults", func(t *testing.T) {
		params := domain.PaginationParams{}
		params.Validate()

		assert.Equal(t, 1, params.Page)
		assert.Equal(t, domain.DefaultPageSize, params.PageSize)
	})

	t.Run("Oversized Page Is Capped", func(t *testing.T) {
		params := domain.PaginationParams{Page: 3, PageSize: 500}
		params.Validate()

		assert.Equal(t, 3, params.Page)
		assert.Equal(t, domain.MaxPageSize, params.PageSize)
	})

	t.Run("Negative Page Resets To First", func(t *testing.T) {
		params := domain.PaginationParams{Page: -2, PageSize: 10}
		params.Validate()

		assert.Equal(t, 1, params.Page)
		assert.Equal(t, 10, params.PageSize)
	})
}

func TestNewPaginatedResponse(t *testing.T) {
	resp := domain.NewPaginatedResponse([]string{"a", "b"}, 2, 2, 5)

	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, int64(5), resp.TotalItems)
	assert.True(t, resp.HasNext)
	assert.True(t, resp.HasPrev)
}
