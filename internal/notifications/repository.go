package notifications

import (
	"context"

	"ticketdesk/internal/upstream"
)

const resource = "notifications"

// Repository reads and mutates banners through the ticketing API.
type Repository interface {
	GetActive(ctx context.Context) (*Banner, error)
	ListAll(ctx context.Context, token string) ([]Banner, error)
	Create(ctx context.Context, token string, req CreateBannerRequest) (*Banner, string, error)
	Update(ctx context.Context, token, id string, req UpdateBannerRequest) (*Banner, string, error)
	Delete(ctx context.Context, token, id string) (string, error)
}

type repository struct {
	client *upstream.Client
}

func NewRepository(client *upstream.Client) Repository {
	return &repository{client: client}
}

// GetActive fetches the currently published banner. The API returns
// null data when nothing is active; that surfaces here as nil, nil.
func (r *repository) GetActive(ctx context.Context) (*Banner, error) {
	var banner *Banner
	if err := r.client.Get(ctx, resource, "/notifications", nil, "", &banner); err != nil {
		return nil, err
	}
	return banner, nil
}

func (r *repository) ListAll(ctx context.Context, token string) ([]Banner, error) {
	var list []Banner
	if err := r.client.Get(ctx, resource, "/notifications/all", nil, token, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) Create(ctx context.Context, token string, req CreateBannerRequest) (*Banner, string, error) {
	var banner Banner
	msg, err := r.client.Post(ctx, resource, "/notifications", req, token, &banner)
	if err != nil {
		return nil, "", err
	}
	return &banner, msg, nil
}

func (r *repository) Update(ctx context.Context, token, id string, req UpdateBannerRequest) (*Banner, string, error) {
	var banner Banner
	msg, err := r.client.Put(ctx, resource, "/notifications/"+id, req, token, &banner)
	if err != nil {
		return nil, "", err
	}
	return &banner, msg, nil
}

func (r *repository) Delete(ctx context.Context, token, id string) (string, error) {
	return r.client.Delete(ctx, resource, "/notifications/"+id, token)
}
