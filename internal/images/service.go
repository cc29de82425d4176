package images

import (
	"context"
	"io"
	"net/url"

	"ticketdesk/internal/upstream"
)

const resource = "images"

// UploadResult carries the hosted image URL returned by the API.
type UploadResult struct {
	URL string `json:"url"`
}

// Service proxies image uploads and deletions to the ticketing API,
// which fronts the image host. Files stream through without local
// persistence.
type Service interface {
	Upload(ctx context.Context, token, fileName string, file io.Reader) (*UploadResult, string, error)
	Delete(ctx context.Context, token, idOrURL string) (string, error)
}

type service struct {
	client *upstream.Client
}

func NewService(client *upstream.Client) Service {
	return &service{client: client}
}

func (s *service) Upload(ctx context.Context, token, fileName string, file io.Reader) (*UploadResult, string, error) {
	var result UploadResult
	msg, err := s.client.Upload(ctx, resource, "/images/upload", "image", fileName, file, token, &result)
	if err != nil {
		return nil, "", err
	}
	return &result, msg, nil
}

// Delete removes a hosted image by file id or full URL. The identifier
// is path-escaped because image URLs contain slashes.
func (s *service) Delete(ctx context.Context, token, idOrURL string) (string, error) {
	return s.client.Delete(ctx, resource, "/images/delete/"+url.PathEscape(idOrURL), token)
}
