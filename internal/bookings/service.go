package bookings

import (
	"context"
	"errors"

	"ticketdesk/internal/shared/query"
	"ticketdesk/internal/tickets"
	"ticketdesk/pkg/logger"
)

// Validation failures surfaced before any booking reaches the API.
var (
	ErrTicketSoldOut     = errors.New("ticket is sold out")
	ErrNotEnoughTickets  = errors.New("not enough tickets remaining for the requested quantity")
	ErrAmountMismatch    = errors.New("total amount does not match ticket price times quantity")
	ErrTicketNotBookable = errors.New("ticket is not open for booking")
)

// TicketSource provides the ticket lookup used to validate a booking
// before it is submitted upstream.
type TicketSource interface {
	GetByID(ctx context.Context, id string) (*tickets.Ticket, error)
}

// Service owns public booking creation/lookup and admin management.
type Service interface {
	Create(ctx context.Context, req CreateBookingRequest) (*BookingResponse, string, error)
	GetByReference(ctx context.Context, code string) (*BookingResponse, error)
	ListAdmin(ctx context.Context, token string, q query.ListQuery) (query.Result[BookingResponse], error)
	ListAdminByEvent(ctx context.Context, token, eventID string, q query.ListQuery) (query.Result[BookingResponse], error)
	ListAdminByTicket(ctx context.Context, token, ticketID string, q query.ListQuery) (query.Result[BookingResponse], error)
	UpdateStatus(ctx context.Context, token, id string, req UpdateBookingStatusRequest) (*BookingResponse, string, error)
	Delete(ctx context.Context, token, id string) (string, error)
}

type service struct {
	repo       Repository
	ticketRepo TicketSource
	log        *logger.Logger
}

func NewService(repo Repository, ticketRepo TicketSource, log *logger.Logger) Service {
	return &service{
		repo:       repo,
		ticketRepo: ticketRepo,
		log:        log,
	}
}

// Create validates the booking against the live ticket before
// submitting it. Sold-out tickets and mismatched totals never leave
// the gateway.
func (s *service) Create(ctx context.Context, req CreateBookingRequest) (*BookingResponse, string, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, req.TicketID)
	if err != nil {
		return nil, "", err
	}

	if ticket.Status != tickets.TicketStatusActive {
		return nil, "", ErrTicketNotBookable
	}
	if ticket.SoldOut() {
		return nil, "", ErrTicketSoldOut
	}
	if req.Quantity > ticket.AvailableQuantity {
		return nil, "", ErrNotEnoughTickets
	}
	if req.TotalAmount != ticket.Price*int64(req.Quantity) {
		return nil, "", ErrAmountMismatch
	}

	booking, msg, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, "", err
	}

	s.log.Info("booking created",
		"booking_id", booking.ID,
		"event_id", booking.EventID.ID(),
		"quantity", booking.Quantity,
	)

	resp := booking.ToResponse()
	return &resp, msg, nil
}

func (s *service) GetByReference(ctx context.Context, code string) (*BookingResponse, error) {
	booking, err := s.repo.GetByReference(ctx, code)
	if err != nil {
		return nil, err
	}
	resp := booking.ToResponse()
	return &resp, nil
}

func (s *service) ListAdmin(ctx context.Context, token string, q query.ListQuery) (query.Result[BookingResponse], error) {
	result, err := s.repo.ListAdmin(ctx, token, q.Normalize())
	if err != nil {
		return query.Result[BookingResponse]{}, err
	}
	return toResponseResult(result), nil
}

func (s *service) ListAdminByEvent(ctx context.Context, token, eventID string, q query.ListQuery) (query.Result[BookingResponse], error) {
	result, err := s.repo.ListAdminByEvent(ctx, token, eventID, q.Normalize())
	if err != nil {
		return query.Result[BookingResponse]{}, err
	}
	return toResponseResult(result), nil
}

func (s *service) ListAdminByTicket(ctx context.Context, token, ticketID string, q query.ListQuery) (query.Result[BookingResponse], error) {
	result, err := s.repo.ListAdminByTicket(ctx, token, ticketID, q.Normalize())
	if err != nil {
		return query.Result[BookingResponse]{}, err
	}
	return toResponseResult(result), nil
}

func (s *service) UpdateStatus(ctx context.Context, token, id string, req UpdateBookingStatusRequest) (*BookingResponse, string, error) {
	booking, msg, err := s.repo.UpdateStatus(ctx, token, id, req)
	if err != nil {
		return nil, "", err
	}
	resp := booking.ToResponse()
	return &resp, msg, nil
}

func (s *service) Delete(ctx context.Context, token, id string) (string, error) {
	return s.repo.Delete(ctx, token, id)
}

func toResponseResult(result query.Result[Booking]) query.Result[BookingResponse] {
	return query.Result[BookingResponse]{
		Items:      ToResponses(result.Items),
		Pagination: result.Pagination,
	}
}
