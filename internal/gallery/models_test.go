package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterByCategory(t *testing.T) {
	list := []GalleryItem{
		{ID: "a", Category: "speakers"},
		{ID: "b", Category: "audience"},
		{ID: "c", Category: "speakers"},
	}

	got := FilterByCategory(list, "speakers")
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestFilterByCategoryEmptyReturnsAll(t *testing.T) {
	list := []GalleryItem{{ID: "a"}, {ID: "b"}}
	assert.Equal(t, list, FilterByCategory(list, ""))
}

func TestFilterByCategoryNoMatch(t *testing.T) {
	list := []GalleryItem{{ID: "a", Category: "speakers"}}
	assert.Empty(t, FilterByCategory(list, "venue"))
}
