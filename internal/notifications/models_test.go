package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveBannerPicksFirstActive(t *testing.T) {
	list := []Banner{
		{ID: "a", Message: "old", Status: BannerStatusInactive},
		{ID: "b", Message: "early bird", Status: BannerStatusActive},
		{ID: "c", Message: "late entry", Status: BannerStatusActive},
	}

	got, ok := ActiveBanner(list)
	require.True(t, ok)
	assert.Equal(t, "b", got.ID)
}

func TestActiveBannerNoneActive(t *testing.T) {
	list := []Banner{{ID: "a", Status: BannerStatusInactive}}

	_, ok := ActiveBanner(list)
	assert.False(t, ok)

	_, ok = ActiveBanner(nil)
	assert.False(t, ok)
}
