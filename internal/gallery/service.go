package gallery

import (
	"context"
	"time"

	"ticketdesk/internal/shared/constants"
	"ticketdesk/pkg/cache"
)

// Service owns the public gallery read and admin gallery management.
type Service interface {
	// SetCacheService injects the cache dependency
	SetCacheService(cacheService cache.Service)

	// Public operations
	List(ctx context.Context, category string) ([]GalleryItem, error)

	// Admin operations
	Create(ctx context.Context, token string, req CreateGalleryItemRequest) (*GalleryItem, string, error)
	Update(ctx context.Context, token, id string, req UpdateGalleryItemRequest) (*GalleryItem, string, error)
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

// List returns gallery items, optionally narrowed to one category. The
// upstream list is cached whole; category filtering happens locally.
func (s *service) List(ctx context.Context, category string) ([]GalleryItem, error) {
	list, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByCategory(list, category), nil
}

func (s *service) listAll(ctx context.Context) ([]GalleryItem, error) {
	if s.cacheService == nil {
		return s.repo.List(ctx)
	}

	var list []GalleryItem
	err := s.cacheService.GetOrSet(ctx, constants.KEY_GALLERY_LIST, s.snapshotTTL, func() (interface{}, error) {
		return s.repo.List(ctx)
	}, &list)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *service) Create(ctx context.Context, token string, req CreateGalleryItemRequest) (*GalleryItem, string, error) {
	item, msg, err := s.repo.Create(ctx, token, req)
	if err != nil {
		return nil, "", err
	}
	s.invalidate(ctx)
	return item, msg, nil
}

func (s *service) Update(ctx context.Context, token, id string, req UpdateGalleryItemRequest) (*GalleryItem, string, error) {
	item, msg, err := s.repo.Update(ctx, token, id, req)
	if err != nil {
		return nil, "", err
	}
	s.invalidate(ctx)
	return item, msg, nil
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
	_ = s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_GALLERY)
}
