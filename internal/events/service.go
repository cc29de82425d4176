package events

import (
	"context"
	"time"

	"ticketdesk/internal/countdown"
	"ticketdesk/internal/shared/constants"
	"ticketdesk/internal/shared/query"
	"ticketdesk/pkg/cache"
	"ticketdesk/pkg/clock"
)

// Service owns event reads for public pages and admin management.
type Service interface {
	// SetCacheService injects the cache dependency
	SetCacheService(cacheService cache.Service)

	// Public operations
	ListPublic(ctx context.Context) ([]EventResponse, error)
	GetEvent(ctx context.Context, id string) (*EventResponse, error)
	Featured(ctx context.Context) (*FeaturedEvent, error)

	// Admin operations
	ListAdmin(ctx context.Context, token string, q query.ListQuery) (query.Result[EventResponse], error)
	Create(ctx context.Context, token string, req CreateEventRequest) (*EventResponse, string, error)
	Update(ctx context.Context, token, id string, req UpdateEventRequest) (*EventResponse, string, error)
	Delete(ctx context.Context, token, id string) (string, error)
}

type service struct {
	repo         Repository
	clk          clock.Clock
	cacheService cache.Service
	snapshotTTL  time.Duration
}

func NewService(repo Repository, clk clock.Clock, snapshotTTL time.Duration) Service {
	return &service{
		repo:        repo,
		clk:         clk,
		snapshotTTL: snapshotTTL,
	}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

// listPublicEvents fetches the public event list, through the cache
// when one is wired.
func (s *service) listPublicEvents(ctx context.Context) ([]Event, error) {
	if s.cacheService == nil {
		return s.repo.ListPublic(ctx)
	}

	var list []Event
	err := s.cacheService.GetOrSet(ctx, constants.KEY_EVENTS_PUBLIC_LIST, s.snapshotTTL, func() (interface{}, error) {
		return s.repo.ListPublic(ctx)
	}, &list)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *service) ListPublic(ctx context.Context) ([]EventResponse, error) {
	list, err := s.listPublicEvents(ctx)
	if err != nil {
		return nil, err
	}
	// The backend may return all events regardless of status; eligibility
	// is applied here either way.
	return ToResponses(EligibleEvents(list)), nil
}

func (s *service) GetEvent(ctx context.Context, id string) (*EventResponse, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := event.ToResponse()
	return &resp, nil
}

// Featured selects the event for the home page and computes its
// countdown snapshot. Returns nil when no active event exists.
func (s *service) Featured(ctx context.Context) (*FeaturedEvent, error) {
	list, err := s.listPublicEvents(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	event, ok := UpcomingEvent(list, now)
	if !ok {
		return nil, nil
	}

	return &FeaturedEvent{
		Event:     event.ToResponse(),
		Countdown: countdown.Compute(event.Date, now),
		Upcoming:  IsUpcoming(event, now),
	}, nil
}

func (s *service) ListAdmin(ctx context.Context, token string, q query.ListQuery) (query.Result[EventResponse], error) {
	result, err := s.repo.ListAdmin(ctx, token, q.Normalize())
	if err != nil {
		return query.Result[EventResponse]{}, err
	}
	return query.Result[EventResponse]{
		Items:      ToResponses(result.Items),
		Pagination: result.Pagination,
	}, nil
}

func (s *service) Create(ctx context.Context, token string, req CreateEventRequest) (*EventResponse, string, error) {
	event, msg, err := s.repo.Create(ctx, token, req)
	if err != nil {
		return nil, "", err
	}
	s.invalidate(ctx)
	resp := event.ToResponse()
	return &resp, msg, nil
}

func (s *service) Update(ctx context.Context, token, id string, req UpdateEventRequest) (*EventResponse, string, error) {
	event, msg, err := s.repo.Update(ctx, token, id, req)
	if err != nil {
		return nil, "", err
	}
	s.invalidate(ctx)
	resp := event.ToResponse()
	return &resp, msg, nil
}

func (s *service) Delete(ctx context.Context, token, id string) (string, error) {
	msg, err := s.repo.Delete(ctx, token, id)
	if err != nil {
		return "", err
	}
	s.invalidate(ctx)
	return msg, nil
}

// invalidate drops cached event snapshots after a mutation so public
// pages refetch.
func (s *service) invalidate(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	_ = s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_EVENTS)
}
