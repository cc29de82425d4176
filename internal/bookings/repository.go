package bookings

import (
	"context"

	"ticketdesk/internal/shared/query"
	"ticketdesk/internal/upstream"
)

const resource = "bookings"

// Repository reads and mutates bookings through the ticketing API.
type Repository interface {
	Create(ctx context.Context, req CreateBookingRequest) (*Booking, string, error)
	GetByReference(ctx context.Context, code string) (*Booking, error)
	ListAdmin(ctx context.Context, token string, q query.ListQuery) (query.Result[Booking], error)
	ListAdminByEvent(ctx context.Context, token, eventID string, q query.ListQuery) (query.Result[Booking], error)
	ListAdminByTicket(ctx context.Context, token, ticketID string, q query.ListQuery) (query.Result[Booking], error)
	UpdateStatus(ctx context.Context, token, id string, req UpdateBookingStatusRequest) (*Booking, string, error)
	Delete(ctx context.Context, token, id string) (string, error)
}

type repository struct {
	client *upstream.Client
}

func NewRepository(client *upstream.Client) Repository {
	return &repository{client: client}
}

func (r *repository) Create(ctx context.Context, req CreateBookingRequest) (*Booking, string, error) {
	var booking Booking
	msg, err := r.client.Post(ctx, resource, "/bookings", req, "", &booking)
	if err != nil {
		return nil, "", err
	}
	return &booking, msg, nil
}

func (r *repository) GetByReference(ctx context.Context, code string) (*Booking, error) {
	var booking Booking
	if err := r.client.Get(ctx, resource, "/bookings/reference/"+code, nil, "", &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) ListAdmin(ctx context.Context, token string, q query.ListQuery) (query.Result[Booking], error) {
	return r.list(ctx, token, "/bookings/admin/all", q)
}

func (r *repository) ListAdminByEvent(ctx context.Context, token, eventID string, q query.ListQuery) (query.Result[Booking], error) {
	return r.list(ctx, token, "/bookings/admin/event/"+eventID, q)
}

func (r *repository) ListAdminByTicket(ctx context.Context, token, ticketID string, q query.ListQuery) (query.Result[Booking], error) {
	return r.list(ctx, token, "/bookings/admin/ticket/"+ticketID, q)
}

func (r *repository) list(ctx context.Context, token, path string, q query.ListQuery) (query.Result[Booking], error) {
	var items []Booking
	pagination, err := r.client.GetList(ctx, resource, path, q.Values(), token, &items)
	if err != nil {
		return query.Result[Booking]{}, err
	}
	return query.Result[Booking]{Items: items, Pagination: pagination}, nil
}

func (r *repository) UpdateStatus(ctx context.Context, token, id string, req UpdateBookingStatusRequest) (*Booking, string, error) {
	var booking Booking
	msg, err := r.client.Put(ctx, resource, "/bookings/"+id+"/status", req, token, &booking)
	if err != nil {
		return nil, "", err
	}
	return &booking, msg, nil
}

func (r *repository) Delete(ctx context.Context, token, id string) (string, error) {
	return r.client.Delete(ctx, resource, "/bookings/"+id, token)
}
