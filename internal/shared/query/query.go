package query

import (
	"net/url"
	"sort"
	"strconv"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Default and maximum page sizes for admin list views.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListQuery is the request shape shared by every admin list endpoint:
// page-based pagination, a sort field and order, free-text search, and
// resource-specific equality/range filters.
type ListQuery struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder SortOrder
	Search    string
	Filters   map[string]string
}

// Normalize returns a copy with page, limit and sort order clamped to
// valid values.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.SortOrder != SortAsc && q.SortOrder != SortDesc {
		q.SortOrder = SortDesc
	}
	return q
}

// WithFilter returns a copy with the filter set (or removed when value
// is empty). The receiver is not modified.
func (q ListQuery) WithFilter(key, value string) ListQuery {
	filters := make(map[string]string, len(q.Filters)+1)
	for k, v := range q.Filters {
		filters[k] = v
	}
	if value == "" {
		delete(filters, key)
	} else {
		filters[key] = value
	}
	q.Filters = filters
	return q
}

// Values serializes the query for the upstream listing endpoints
// (GET .../admin/all?page&limit&sortBy&sortOrder&search&...). Empty
// fields are omitted.
func (q ListQuery) Values() url.Values {
	q = q.Normalize()

	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
		v.Set("sortOrder", string(q.SortOrder))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}

	// Deterministic encoding order for filters
	keys := make([]string, 0, len(q.Filters))
	for k := range q.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if q.Filters[k] != "" {
			v.Set(k, q.Filters[k])
		}
	}

	return v
}

// Encode returns the serialized query string.
func (q ListQuery) Encode() string {
	return q.Values().Encode()
}
