package query

import (
	"context"
	"sync"
)

// Fetcher loads one page of a resource for a ListView.
type Fetcher[T any] func(ctx context.Context, q ListQuery) (Result[T], error)

// State is a point-in-time snapshot of a list view.
type State[T any] struct {
	Query      ListQuery
	Items      []T
	Pagination Pagination
	Loading    bool
	Err        error
}

// ListView owns the ListQuery and result cache for one admin list view.
// Changing search, a filter, or the sort resets the page to 1 and
// re-issues the query; changing the page re-issues with only the page
// changed. Responses to superseded queries are discarded, so the most
// recently issued query always wins regardless of completion order.
// A failed fetch keeps the previously loaded items intact and exposes
// the error.
type ListView[T any] struct {
	mu    sync.Mutex
	fetch Fetcher[T]

	query      ListQuery
	seq        uint64 // most recently issued query
	applied    uint64 // most recently applied result
	items      []T
	pagination Pagination
	err        error
}

// NewListView creates a view around fetch. No query is issued until the
// first mutator or Refresh call.
func NewListView[T any](fetch Fetcher[T], initial ListQuery) *ListView[T] {
	return &ListView[T]{
		fetch: fetch,
		query: initial.Normalize(),
	}
}

// Refresh re-issues the current query.
func (v *ListView[T]) Refresh(ctx context.Context) error {
	v.mu.Lock()
	q := v.query
	v.mu.Unlock()
	return v.issue(ctx, q)
}

// SetSearch changes the free-text search and resets to page 1.
func (v *ListView[T]) SetSearch(ctx context.Context, search string) error {
	v.mu.Lock()
	q := v.query
	q.Search = search
	q.Page = 1
	v.mu.Unlock()
	return v.issue(ctx, q)
}

// SetFilter changes one resource filter and resets to page 1. An empty
// value removes the filter.
func (v *ListView[T]) SetFilter(ctx context.Context, key, value string) error {
	v.mu.Lock()
	q := v.query.WithFilter(key, value)
	q.Page = 1
	v.mu.Unlock()
	return v.issue(ctx, q)
}

// SetSort changes the sort field and order and resets to page 1.
func (v *ListView[T]) SetSort(ctx context.Context, sortBy string, order SortOrder) error {
	v.mu.Lock()
	q := v.query
	q.SortBy = sortBy
	q.SortOrder = order
	q.Page = 1
	v.mu.Unlock()
	return v.issue(ctx, q)
}

// SetPage moves to another page without touching filters or sort.
func (v *ListView[T]) SetPage(ctx context.Context, page int) error {
	v.mu.Lock()
	q := v.query
	q.Page = page
	v.mu.Unlock()
	return v.issue(ctx, q)
}

// issue runs the fetch for q and applies the result unless a newer
// query was issued while it was in flight.
func (v *ListView[T]) issue(ctx context.Context, q ListQuery) error {
	q = q.Normalize()

	v.mu.Lock()
	v.seq++
	seq := v.seq
	v.query = q
	v.mu.Unlock()

	result, err := v.fetch(ctx, q)

	v.mu.Lock()
	defer v.mu.Unlock()

	if seq < v.seq || seq <= v.applied {
		// A newer query was issued while this one was in flight;
		// discard the stale response.
		return nil
	}
	v.applied = seq

	if err != nil {
		v.err = err
		return err
	}

	v.items = result.Items
	v.pagination = result.Pagination
	v.err = nil
	return nil
}

// Snapshot returns the current view state.
func (v *ListView[T]) Snapshot() State[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return State[T]{
		Query:      v.query,
		Items:      v.items,
		Pagination: v.pagination,
		Loading:    v.applied < v.seq,
		Err:        v.err,
	}
}
