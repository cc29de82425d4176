package tickets

import (
	"context"

	"ticketdesk/internal/shared/query"
	"ticketdesk/internal/upstream"
)

const resource = "tickets"

// Repository reads and mutates ticket types through the ticketing API.
type Repository interface {
	ListByEvent(ctx context.Context, eventID string) ([]Ticket, error)
	GetByID(ctx context.Context, id string) (*Ticket, error)
	ListAdmin(ctx context.Context, token string, q query.ListQuery) (query.Result[Ticket], error)
	Create(ctx context.Context, token string, req CreateTicketRequest) (*Ticket, string, error)
	Update(ctx context.Context, token, id string, req UpdateTicketRequest) (*Ticket, string, error)
	Delete(ctx context.Context, token, id string) (string, error)
}

type repository struct {
	client *upstream.Client
}

func NewRepository(client *upstream.Client) Repository {
	return &repository{client: client}
}

func (r *repository) ListByEvent(ctx context.Context, eventID string) ([]Ticket, error) {
	var list []Ticket
	if err := r.client.Get(ctx, resource, "/tickets/event/"+eventID, nil, "", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Ticket, error) {
	var ticket Ticket
	if err := r.client.Get(ctx, resource, "/tickets/"+id, nil, "", &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *repository) ListAdmin(ctx context.Context, token string, q query.ListQuery) (query.Result[Ticket], error) {
	var items []Ticket
	pagination, err := r.client.GetList(ctx, resource, "/tickets/admin/all", q.Values(), token, &items)
	if err != nil {
		return query.Result[Ticket]{}, err
	}
	return query.Result[Ticket]{Items: items, Pagination: pagination}, nil
}

func (r *repository) Create(ctx context.Context, token string, req CreateTicketRequest) (*Ticket, string, error) {
	var ticket Ticket
	msg, err := r.client.Post(ctx, resource, "/tickets", req, token, &ticket)
	if err != nil {
		return nil, "", err
	}
	return &ticket, msg, nil
}

func (r *repository) Update(ctx context.Context, token, id string, req UpdateTicketRequest) (*Ticket, string, error) {
	var ticket Ticket
	msg, err := r.client.Put(ctx, resource, "/tickets/"+id, req, token, &ticket)
	if err != nil {
		return nil, "", err
	}
	return &ticket, msg, nil
}

func (r *repository) Delete(ctx context.Context, token, id string) (string, error) {
	return r.client.Delete(ctx, resource, "/tickets/"+id, token)
}
