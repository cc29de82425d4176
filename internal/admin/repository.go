package admin

import (
	"context"

	"ticketdesk/internal/upstream"
)

const resource = "admin"

// Repository talks to the ticketing API's admin endpoints.
type Repository interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, string, error)
	Profile(ctx context.Context, token string) (*Admin, error)
	UpdateProfile(ctx context.Context, token string, req UpdateProfileRequest) (*Admin, string, error)
}

type repository struct {
	client *upstream.Client
}

func NewRepository(client *upstream.Client) Repository {
	return &repository{client: client}
}

func (r *repository) Login(ctx context.Context, req LoginRequest) (*LoginResult, string, error) {
	var result LoginResult
	msg, err := r.client.Post(ctx, resource, "/admin/login", req, "", &result)
	if err != nil {
		return nil, "", err
	}
	return &result, msg, nil
}

func (r *repository) Profile(ctx context.Context, token string) (*Admin, error) {
	var admin Admin
	if err := r.client.Get(ctx, resource, "/admin/profile", nil, token, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *repository) UpdateProfile(ctx context.Context, token string, req UpdateProfileRequest) (*Admin, string, error) {
	var admin Admin
	msg, err := r.client.Put(ctx, resource, "/admin/profile", req, token, &admin)
	if err != nil {
		return nil, "", err
	}
	return &admin, msg, nil
}
