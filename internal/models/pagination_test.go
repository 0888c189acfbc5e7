package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRecords(n int) []ContentRecord {
	out := make([]ContentRecord, n)
	for i := range out {
		out[i] = ContentRecord{ID: fmt.Sprintf("v%d", i+1)}
	}
	return out
}

func TestPaginateContent_FirstPage(t *testing.T) {
	items, p := PaginateContent(makeRecords(45), 1, 10)

	require.Len(t, items, 10)
	assert.Equal(t, "v1", items[0].ID)
	assert.Equal(t, "v10", items[9].ID)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 45, p.TotalItems)
	assert.Equal(t, 5, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestPaginateContent_MiddlePage(t *testing.T) {
	items, p := PaginateContent(makeRecords(45), 3, 10)

	require.Len(t, items, 10)
	assert.Equal(t, "v21", items[0].ID)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestPaginateContent_LastPartialPage(t *testing.T) {
	items, p := PaginateContent(makeRecords(45), 5, 10)

	require.Len(t, items, 5)
	assert.Equal(t, "v41", items[0].ID)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestPaginateContent_BeyondLastPage(t *testing.T) {
	items, p := PaginateContent(makeRecords(45), 9, 10)

	assert.Empty(t, items)
	// The request is reflected as made, not clamped back to the last page.
	assert.Equal(t, 9, p.CurrentPage)
	assert.Equal(t, 5, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestPaginateContent_DefaultsOnBadInput(t *testing.T) {
	items, p := PaginateContent(makeRecords(15), 0, 0)

	assert.Len(t, items, 10)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 10, p.PageSize)
}

func TestPaginateContent_Empty(t *testing.T) {
	items, p := PaginateContent(nil, 1, 10)

	assert.Empty(t, items)
	assert.Equal(t, 0, p.TotalItems)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}
