package tickets

import (
	"context"
	"time"

	"ticketdesk/internal/shared/constants"
	"ticketdesk/internal/shared/query"
	"ticketdesk/pkg/cache"
)

// Service owns ticket reads for the booking page and admin management.
type Service interface {
	// SetCacheService injects the cache dependency
	SetCacheService(cacheService cache.Service)

	// Public operations
	ListByEvent(ctx context.Context, eventID string) ([]TicketResponse, error)

	// Admin operations
	ListAdmin(ctx context.Context, token string, q query.ListQuery) (query.Result[TicketResponse], error)
	Create(ctx context.Context, token string, req CreateTicketRequest) (*TicketResponse, string, error)
	Update(ctx context.Context, token, id string, req UpdateTicketRequest) (*TicketResponse, string, error)
	Delete(ctx context.Context, token, id string) (string, error)
}

type service struct {
	repo         Repository
	cacheService cache.Service
	snapshotTTL  time.Duration
}

func NewService(repo Repository, snapshotTTL time.Duration) Service {
	return &service{
		repo:        repo,
		snapshotTTL: snapshotTTL,
	}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

// ListByEvent returns the tickets offered for an event, filtered to the
// bookable set. Sold-out entries remain in the list with SoldOut set.
func (s *service) ListByEvent(ctx context.Context, eventID string) ([]TicketResponse, error) {
	list, err := s.listEventTickets(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return ToResponses(BookableTickets(list)), nil
}

func (s *service) listEventTickets(ctx context.Context, eventID string) ([]Ticket, error) {
	if s.cacheService == nil {
		return s.repo.ListByEvent(ctx, eventID)
	}

	var list []Ticket
	err := s.cacheService.GetOrSet(ctx, constants.KEY_TICKETS_BY_EVENT+eventID, s.snapshotTTL, func() (interface{}, error) {
		return s.repo.ListByEvent(ctx, eventID)
	}, &list)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *service) ListAdmin(ctx context.Context, token string, q query.ListQuery) (query.Result[TicketResponse], error) {
	result, err := s.repo.ListAdmin(ctx, token, q.Normalize())
	if err != nil {
		return query.Result[TicketResponse]{}, err
	}
	return query.Result[TicketResponse]{
		Items:      ToResponses(result.Items),
		Pagination: result.Pagination,
	}, nil
}

func (s *service) Create(ctx context.Context, token string, req CreateTicketRequest) (*TicketResponse, string, error) {
	ticket, msg, err := s.repo.Create(ctx, token, req)
	if err != nil {
		return nil, "", err
	}
	s.invalidate(ctx)
	resp := ticket.ToResponse()
	return &resp, msg, nil
}

func (s *service) Update(ctx context.Context, token, id string, req UpdateTicketRequest) (*TicketResponse, string, error) {
	ticket, msg, err := s.repo.Update(ctx, token, id, req)
	if err != nil {
		return nil, "", err
	}
	s.invalidate(ctx)
	resp := ticket.ToResponse()
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

func (s *service) invalidate(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	_ = s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_TICKETS)
}
