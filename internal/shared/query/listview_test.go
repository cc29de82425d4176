package query

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticFetcher(items map[string][]string) Fetcher[string] {
	return func(_ context.Context, q ListQuery) (Result[string], error) {
		page := items[q.Search]
		return Result[string]{
			Items:      page,
			Pagination: NewPagination(len(page), q.Page, q.Limit),
		}, nil
	}
}

func TestSearchChangeResetsPage(t *testing.T) {
	var issued []ListQuery
	fetch := func(_ context.Context, q ListQuery) (Result[string], error) {
		issued = append(issued, q)
		return Result[string]{Pagination: NewPagination(0, q.Page, q.Limit)}, nil
	}

	view := NewListView(fetch, ListQuery{Page: 1, Limit: 10})
	require.NoError(t, view.SetPage(context.Background(), 3))
	require.NoError(t, view.SetSearch(context.Background(), "gold"))

	require.Len(t, issued, 2)
	assert.Equal(t, 3, issued[0].Page)
	assert.Equal(t, 1, issued[1].Page, "search change must reset to page 1")
	assert.Equal(t, "gold", issued[1].Search)
}

func TestFilterAndSortResetPage(t *testing.T) {
	var issued []ListQuery
	fetch := func(_ context.Context, q ListQuery) (Result[string], error) {
		issued = append(issued, q)
		return Result[string]{}, nil
	}

	view := NewListView(fetch, ListQuery{Page: 5, Limit: 10})
	require.NoError(t, view.SetFilter(context.Background(), "status", "active"))
	assert.Equal(t, 1, issued[0].Page)
	assert.Equal(t, "active", issued[0].Filters["status"])

	require.NoError(t, view.SetPage(context.Background(), 4))
	require.NoError(t, view.SetSort(context.Background(), "date", SortAsc))
	assert.Equal(t, 1, issued[2].Page)
	assert.Equal(t, "date", issued[2].SortBy)
}

func TestPageChangeKeepsFilters(t *testing.T) {
	var issued []ListQuery
	fetch := func(_ context.Context, q ListQuery) (Result[string], error) {
		issued = append(issued, q)
		return Result[string]{}, nil
	}

	view := NewListView(fetch, ListQuery{Limit: 10})
	require.NoError(t, view.SetSearch(context.Background(), "gold"))
	require.NoError(t, view.SetPage(context.Background(), 2))

	assert.Equal(t, "gold", issued[1].Search)
	assert.Equal(t, 2, issued[1].Page)
}

func TestStaleResponseDiscarded(t *testing.T) {
	// "gold" is issued first but resolves after "silver"; only the
	// "silver" result may ever be rendered.
	goldStarted := make(chan struct{})
	releaseGold := make(chan struct{})

	fetch := func(_ context.Context, q ListQuery) (Result[string], error) {
		if q.Search == "gold" {
			close(goldStarted)
			<-releaseGold
			return Result[string]{Items: []string{"gold ticket"}}, nil
		}
		return Result[string]{Items: []string{"silver ticket"}}, nil
	}

	view := NewListView(fetch, ListQuery{Limit: 10})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = view.SetSearch(context.Background(), "gold")
	}()

	<-goldStarted
	require.NoError(t, view.SetSearch(context.Background(), "silver"))
	assert.Equal(t, []string{"silver ticket"}, view.Snapshot().Items)

	close(releaseGold)
	wg.Wait()

	state := view.Snapshot()
	assert.Equal(t, []string{"silver ticket"}, state.Items, "stale gold response must be discarded")
	assert.Equal(t, "silver", state.Query.Search)
	assert.False(t, state.Loading)
}

func TestFailureKeepsPreviousItems(t *testing.T) {
	fail := false
	fetch := func(_ context.Context, q ListQuery) (Result[string], error) {
		if fail {
			return Result[string]{}, errors.New("upstream unavailable")
		}
		return Result[string]{Items: []string{"a", "b"}, Pagination: NewPagination(2, 1, 10)}, nil
	}

	view := NewListView(fetch, ListQuery{Limit: 10})
	require.NoError(t, view.Refresh(context.Background()))

	fail = true
	err := view.SetPage(context.Background(), 2)
	require.Error(t, err)

	state := view.Snapshot()
	assert.Equal(t, []string{"a", "b"}, state.Items, "previous items survive a failed fetch")
	assert.Error(t, state.Err)
}

func TestErrorClearedOnRecovery(t *testing.T) {
	fail := true
	fetch := func(_ context.Context, q ListQuery) (Result[string], error) {
		if fail {
			return Result[string]{}, errors.New("boom")
		}
		return Result[string]{Items: []string{"ok"}}, nil
	}

	view := NewListView(fetch, ListQuery{Limit: 10})
	require.Error(t, view.Refresh(context.Background()))

	fail = false
	require.NoError(t, view.Refresh(context.Background()))

	state := view.Snapshot()
	assert.NoError(t, state.Err)
	assert.Equal(t, []string{"ok"}, state.Items)
}

func TestSnapshotReflectsResults(t *testing.T) {
	view := NewListView(staticFetcher(map[string][]string{
		"": {"one", "two", "three"},
	}), ListQuery{Limit: 10})

	require.NoError(t, view.Refresh(context.Background()))

	state := view.Snapshot()
	assert.Equal(t, []string{"one", "two", "three"}, state.Items)
	assert.Equal(t, 3, state.Pagination.TotalItems)
	assert.False(t, state.Loading)
}
