package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClampsValues(t *testing.T) {
	tests := []struct {
		name string
		in   ListQuery
		want ListQuery
	}{
		{
			name: "zero value gets defaults",
			in:   ListQuery{},
			want: ListQuery{Page: 1, Limit: DefaultLimit, SortOrder: SortDesc},
		},
		{
			name: "negative page floored to 1",
			in:   ListQuery{Page: -3, Limit: 20, SortOrder: SortAsc},
			want: ListQuery{Page: 1, Limit: 20, SortOrder: SortAsc},
		},
		{
			name: "limit capped at max",
			in:   ListQuery{Page: 2, Limit: 500, SortOrder: SortDesc},
			want: ListQuery{Page: 2, Limit: MaxLimit, SortOrder: SortDesc},
		},
		{
			name: "bogus sort order replaced",
			in:   ListQuery{Page: 1, Limit: 10, SortOrder: "sideways"},
			want: ListQuery{Page: 1, Limit: 10, SortOrder: SortDesc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestValuesSerialization(t *testing.T) {
	q := ListQuery{
		Page:      2,
		Limit:     25,
		SortBy:    "date",
		SortOrder: SortAsc,
		Search:    "gold",
		Filters: map[string]string{
			"status":   "active",
			"dateFrom": "2026-01-01",
			"empty":    "",
		},
	}

	v := q.Values()
	assert.Equal(t, "2", v.Get("page"))
	assert.Equal(t, "25", v.Get("limit"))
	assert.Equal(t, "date", v.Get("sortBy"))
	assert.Equal(t, "asc", v.Get("sortOrder"))
	assert.Equal(t, "gold", v.Get("search"))
	assert.Equal(t, "active", v.Get("status"))
	assert.Equal(t, "2026-01-01", v.Get("dateFrom"))
	assert.False(t, v.Has("empty"), "empty filters must be omitted")
}

func TestValuesOmitsSortWhenUnset(t *testing.T) {
	v := ListQuery{Page: 1, Limit: 10}.Values()
	assert.False(t, v.Has("sortBy"))
	assert.False(t, v.Has("sortOrder"))
	assert.False(t, v.Has("search"))
}

func TestWithFilterDoesNotMutateReceiver(t *testing.T) {
	base := ListQuery{Filters: map[string]string{"status": "active"}}
	modified := base.WithFilter("eventId", "ev-1")

	assert.Equal(t, map[string]string{"status": "active"}, base.Filters)
	assert.Equal(t, "ev-1", modified.Filters["eventId"])

	cleared := modified.WithFilter("status", "")
	assert.NotContains(t, cleared.Filters, "status")
}
