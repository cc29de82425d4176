package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/shared/query"
	"ticketdesk/pkg/clock"
)

type stubRepo struct {
	Repository
	list    []Event
	listErr error
	calls   int
}

func (s *stubRepo) ListPublic(ctx context.Context) ([]Event, error) {
	s.calls++
	return s.list, s.listErr
}

func (s *stubRepo) ListAdmin(ctx context.Context, token string, q query.ListQuery) (query.Result[Event], error) {
	return query.Result[Event]{
		Items:      s.list,
		Pagination: query.NewPagination(len(s.list), q.Page, q.Limit),
	}, nil
}

func TestListPublicAppliesEligibility(t *testing.T) {
	repo := &stubRepo{list: []Event{
		event("a", EventStatusActive, selectorNow),
		event("b", EventStatusInactive, selectorNow),
	}}
	svc := NewService(repo, clock.NewFixed(selectorNow), time.Minute)

	got, err := svc.ListPublic(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestFeaturedReturnsCountdownSnapshot(t *testing.T) {
	target := selectorNow.Add(25*time.Hour + 30*time.Minute)
	repo := &stubRepo{list: []Event{event("a", EventStatusActive, target)}}
	svc := NewService(repo, clock.NewFixed(selectorNow), time.Minute)

	featured, err := svc.Featured(context.Background())
	require.NoError(t, err)
	require.NotNil(t, featured)
	assert.Equal(t, "a", featured.Event.ID)
	assert.True(t, featured.Upcoming)
	assert.Equal(t, 1, featured.Countdown.Days)
	assert.Equal(t, 1, featured.Countdown.Hours)
	assert.Equal(t, 30, featured.Countdown.Minutes)
	assert.Equal(t, 0, featured.Countdown.Seconds)
}

func TestFeaturedElapsedEventCountsDownToZero(t *testing.T) {
	repo := &stubRepo{list: []Event{event("a", EventStatusActive, selectorNow.Add(-time.Hour))}}
	svc := NewService(repo, clock.NewFixed(selectorNow), time.Minute)

	featured, err := svc.Featured(context.Background())
	require.NoError(t, err)
	require.NotNil(t, featured)
	assert.False(t, featured.Upcoming)
	assert.True(t, featured.Countdown.IsZero())
}

func TestFeaturedNoActiveEvents(t *testing.T) {
	repo := &stubRepo{list: []Event{event("a", EventStatusInactive, selectorNow.Add(time.Hour))}}
	svc := NewService(repo, clock.NewFixed(selectorNow), time.Minute)

	featured, err := svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Nil(t, featured)
}

func TestFeaturedPropagatesUpstreamError(t *testing.T) {
	repo := &stubRepo{listErr: errors.New("boom")}
	svc := NewService(repo, clock.NewFixed(selectorNow), time.Minute)

	_, err := svc.Featured(context.Background())
	assert.Error(t, err)
}

func TestListAdminNormalizesQuery(t *testing.T) {
	repo := &stubRepo{list: []Event{event("a", EventStatusActive, selectorNow)}}
	svc := NewService(repo, clock.NewFixed(selectorNow), time.Minute)

	result, err := svc.ListAdmin(context.Background(), "token", query.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Pagination.CurrentPage)
	assert.Equal(t, 10, result.Pagination.ItemsPerPage)
	assert.Equal(t, 1, result.Pagination.TotalPages)
}
