package events

import (
	"context"

	"ticketdesk/internal/shared/query"
	"ticketdesk/internal/upstream"
)

const resource = "events"

// Repository reads and mutates events through the ticketing API.
type Repository interface {
	ListPublic(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	ListAdmin(ctx context.Context, token string, q query.ListQuery) (query.Result[Event], error)
	Create(ctx context.Context, token string, req CreateEventRequest) (*Event, string, error)
	Update(ctx context.Context, token, id string, req UpdateEventRequest) (*Event, string, error)
	Delete(ctx context.Context, token, id string) (string, error)
}

type repository struct {
	client *upstream.Client
}

func NewRepository(client *upstream.Client) Repository {
	return &repository{client: client}
}

func (r *repository) ListPublic(ctx context.Context) ([]Event, error) {
	var list []Event
	if err := r.client.Get(ctx, resource, "/events", nil, "", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Event, error) {
	var event Event
	if err := r.client.Get(ctx, resource, "/events/"+id, nil, "", &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *repository) ListAdmin(ctx context.Context, token string, q query.ListQuery) (query.Result[Event], error) {
	var items []Event
	pagination, err := r.client.GetList(ctx, resource, "/events/admin/all", q.Values(), token, &items)
	if err != nil {
		return query.Result[Event]{}, err
	}
	return query.Result[Event]{Items: items, Pagination: pagination}, nil
}

func (r *repository) Create(ctx context.Context, token string, req CreateEventRequest) (*Event, string, error) {
	var event Event
	msg, err := r.client.Post(ctx, resource, "/events", req, token, &event)
	if err != nil {
		return nil, "", err
	}
	return &event, msg, nil
}

func (r *repository) Update(ctx context.Context, token, id string, req UpdateEventRequest) (*Event, string, error) {
	var event Event
	msg, err := r.client.Put(ctx, resource, "/events/"+id, req, token, &event)
	if err != nil {
		return nil, "", err
	}
	return &event, msg, nil
}

func (r *repository) Delete(ctx context.Context, token, id string) (string, error) {
	return r.client.Delete(ctx, resource, "/events/"+id, token)
}
