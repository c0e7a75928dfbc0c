package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams_Defaults(t *testing.T) {
	p := GetPaginationParams(0, -5)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Limit)

	p = GetPaginationParams(3, 20)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 20, p.Limit)
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, GetPaginationParams(1, 10).CalculateOffset())
	assert.Equal(t, 40, GetPaginationParams(5, 10).CalculateOffset())
	assert.Equal(t, 0, PaginationParams{Page: 0, Limit: 10}.CalculateOffset())
}

func TestCalculateMeta(t *testing.T) {
	meta := CalculateMeta(45, 2, 10)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 5, meta.TotalPages)
	assert.EqualValues(t, 45, meta.TotalCount)

	// limit 0 collapses to a single page of everything
	meta = CalculateMeta(45, 1, 0)
	assert.Equal(t, 1, meta.TotalPages)
	assert.Equal(t, 45, meta.Limit)

	// a negative count never yields negative pages
	meta = CalculateMeta(-5, 1, 10)
	assert.Equal(t, 0, meta.TotalPages)
}
