package admin

import (
	"context"
	"time"

	"ticketdesk/pkg/clock"
	"ticketdesk/pkg/logger"
)

// Service owns the admin login/logout flow and profile passthrough.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, string, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, token string) (*Admin, error)
	UpdateProfile(ctx context.Context, token string, req UpdateProfileRequest) (*Admin, string, error)
}

type service struct {
	repo       Repository
	sessions   SessionStore
	clk        clock.Clock
	defaultTTL time.Duration
	log        *logger.Logger
}

func NewService(repo Repository, sessions SessionStore, clk clock.Clock, defaultTTL time.Duration, log *logger.Logger) Service {
	return &service{
		repo:       repo,
		sessions:   sessions,
		clk:        clk,
		defaultTTL: defaultTTL,
		log:        log,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResult, string, error) {
	result, msg, err := s.repo.Login(ctx, req)
	if err != nil {
		return nil, "", err
	}

	ttl := SessionTTL(result.Token, s.defaultTTL, s.clk)
	if err := s.sessions.Save(ctx, result.Token, result.Admin, ttl); err != nil {
		// The upstream accepted the credentials but we cannot track the
		// session, so admin routes would reject the token anyway.
		return nil, "", err
	}

	s.log.LogAuthSuccess(ctx, result.Admin.ID)
	return result, msg, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Clear(ctx, token)
}

func (s *service) Profile(ctx context.Context, token string) (*Admin, error) {
	return s.repo.Profile(ctx, token)
}

func (s *service) UpdateProfile(ctx context.Context, token string, req UpdateProfileRequest) (*Admin, string, error) {
	admin, msg, err := s.repo.UpdateProfile(ctx, token, req)
	if err != nil {
		return nil, "", err
	}

	// Keep the session snapshot in sync with the new profile.
	if current, getErr := s.sessions.Get(ctx, token); getErr == nil && current != nil {
		ttl := SessionTTL(token, s.defaultTTL, s.clk)
		_ = s.sessions.Save(ctx, token, *admin, ttl)
	}

	return admin, msg, nil
}
