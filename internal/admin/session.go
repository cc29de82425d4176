package admin

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ticketdesk/internal/shared/constants"
	"ticketdesk/pkg/cache"
	"ticketdesk/pkg/clock"
)

// SessionStore tracks live admin sessions. The stored value is the
// admin profile snapshot taken at login; the key is a digest of the
// upstream-issued token, so the raw token never lands in Redis.
type SessionStore interface {
	Save(ctx context.Context, token string, admin Admin, ttl time.Duration) error
	Validate(ctx context.Context, token string) (bool, error)
	Get(ctx context.Context, token string) (*Admin, error)
	Clear(ctx context.Context, token string) error
}

func sessionKey(token string) string {
	digest := sha256.Sum256([]byte(token))
	return constants.KEY_SESSION + hex.EncodeToString(digest[:])
}

// SessionTTL derives a session lifetime from the token's exp claim when
// it is a readable JWT, falling back to the configured TTL. The token
// is never verified here; verification is the ticketing API's job.
func SessionTTL(token string, fallback time.Duration, clk clock.Clock) time.Duration {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fallback
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return fallback
	}

	ttl := exp.Time.Sub(clk.Now())
	if ttl <= 0 {
		return fallback
	}
	return ttl
}

// redisSessionStore keeps sessions in Redis so they survive gateway
// restarts and are shared across replicas.
type redisSessionStore struct {
	cache cache.Service
}

func NewRedisSessionStore(cacheService cache.Service) SessionStore {
	return &redisSessionStore{cache: cacheService}
}

func (s *redisSessionStore) Save(ctx context.Context, token string, admin Admin, ttl time.Duration) error {
	return s.cache.Set(ctx, sessionKey(token), admin, ttl)
}

func (s *redisSessionStore) Validate(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	return s.cache.Exists(ctx, sessionKey(token)), nil
}

func (s *redisSessionStore) Get(ctx context.Context, token string) (*Admin, error) {
	var admin Admin
	if err := s.cache.Get(ctx, sessionKey(token), &admin); err != nil {
		if err == cache.ErrCacheMiss {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (s *redisSessionStore) Clear(ctx context.Context, token string) error {
	return s.cache.Delete(ctx, sessionKey(token))
}

// memorySessionStore is the in-process fallback used in tests and when
// Redis is not configured.
type memorySessionStore struct {
	mu       sync.Mutex
	clk      clock.Clock
	sessions map[string]memorySession
}

type memorySession struct {
	admin     Admin
	expiresAt time.Time
}

func NewMemorySessionStore(clk clock.Clock) SessionStore {
	return &memorySessionStore{
		clk:      clk,
		sessions: make(map[string]memorySession),
	}
}

func (s *memorySessionStore) Save(_ context.Context, token string, admin Admin, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionKey(token)] = memorySession{
		admin:     admin,
		expiresAt: s.clk.Now().Add(ttl),
	}
	return nil
}

func (s *memorySessionStore) Validate(_ context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionKey(token)]
	if !ok {
		return false, nil
	}
	if s.clk.Now().After(session.expiresAt) {
		delete(s.sessions, sessionKey(token))
		return false, nil
	}
	return true, nil
}

func (s *memorySessionStore) Get(_ context.Context, token string) (*Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionKey(token)]
	if !ok || s.clk.Now().After(session.expiresAt) {
		return nil, nil
	}
	admin := session.admin
	return &admin, nil
}

func (s *memorySessionStore) Clear(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionKey(token))
	return nil
}
