package notifications

import (
	"context"
	"time"

	"ticketdesk/internal/shared/constants"
	"ticketdesk/pkg/cache"
)

// Service owns the public banner read and admin banner management.
type Service interface {
	// SetCacheService injects the cache dependency
	SetCacheService(cacheService cache.Service)

	// Public operations
	Active(ctx context.Context) (*Banner, error)

	// Admin operations
	ListAll(ctx context.Context, token string) ([]Banner, error)
	Create(ctx context.Context, token string, req CreateBannerRequest) (*Banner, string, error)
	Update(ctx context.Context, token, id string, req UpdateBannerRequest) (*Banner, string, error)
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

// Active returns the published banner, or nil when none is active.
func (s *service) Active(ctx context.Context) (*Banner, error) {
	if s.cacheService == nil {
		return s.repo.GetActive(ctx)
	}

	var banner *Banner
	err := s.cacheService.GetOrSet(ctx, constants.KEY_ACTIVE_BANNER, s.snapshotTTL, func() (interface{}, error) {
		return s.repo.GetActive(ctx)
	}, &banner)
	if err != nil {
		return nil, err
	}
	return banner, nil
}

func (s *service) ListAll(ctx context.Context, token string) ([]Banner, error) {
	return s.repo.ListAll(ctx, token)
}

func (s *service) Create(ctx context.Context, token string, req CreateBannerRequest) (*Banner, string, error) {
	banner, msg, err := s.repo.Create(ctx, token, req)
	if err != nil {
		return nil, "", err
	}
	s.invalidate(ctx)
	return banner, msg, nil
}

func (s *service) Update(ctx context.Context, token, id string, req UpdateBannerRequest) (*Banner, string, error) {
	banner, msg, err := s.repo.Update(ctx, token, id, req)
	if err != nil {
		return nil, "", err
	}
	s.invalidate(ctx)
	return banner, msg, nil
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
	_ = s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_NOTIFICATIONS)
}
