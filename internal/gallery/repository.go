package gallery

import (
	"context"

	"ticketdesk/internal/upstream"
)

const resource = "gallery"

// Repository reads and mutates gallery items through the ticketing API.
type Repository interface {
	List(ctx context.Context) ([]GalleryItem, error)
	Create(ctx context.Context, token string, req CreateGalleryItemRequest) (*GalleryItem, string, error)
	Update(ctx context.Context, token, id string, req UpdateGalleryItemRequest) (*GalleryItem, string, error)
	Delete(ctx context.Context, token, id string) (string, error)
}

type repository struct {
	client *upstream.Client
}

func NewRepository(client *upstream.Client) Repository {
	return &repository{client: client}
}

func (r *repository) List(ctx context.Context) ([]GalleryItem, error) {
	var list []GalleryItem
	if err := r.client.Get(ctx, resource, "/gallery", nil, "", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) Create(ctx context.Context, token string, req CreateGalleryItemRequest) (*GalleryItem, string, error) {
	var item GalleryItem
	msg, err := r.client.Post(ctx, resource, "/gallery", req, token, &item)
	if err != nil {
		return nil, "", err
	}
	return &item, msg, nil
}

func (r *repository) Update(ctx context.Context, token, id string, req UpdateGalleryItemRequest) (*GalleryItem, string, error) {
	var item GalleryItem
	msg, err := r.client.Put(ctx, resource, "/gallery/"+id, req, token, &item)
	if err != nil {
		return nil, "", err
	}
	return &item, msg, nil
}

func (r *repository) Delete(ctx context.Context, token, id string) (string, error) {
	return r.client.Delete(ctx, resource, "/gallery/"+id, token)
}
