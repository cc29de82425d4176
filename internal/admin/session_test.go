package admin

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/pkg/clock"
)

var testNow = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin-1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestSessionTTLFromJWTExpiry(t *testing.T) {
	clk := clock.NewFixed(testNow)
	token := signedToken(t, testNow.Add(2*time.Hour))

	ttl := SessionTTL(token, 24*time.Hour, clk)
	assert.Equal(t, 2*time.Hour, ttl)
}

func TestSessionTTLFallsBackForOpaqueToken(t *testing.T) {
	clk := clock.NewFixed(testNow)
	assert.Equal(t, 24*time.Hour, SessionTTL("not-a-jwt", 24*time.Hour, clk))
}

func TestSessionTTLFallsBackForExpiredJWT(t *testing.T) {
	clk := clock.NewFixed(testNow)
	token := signedToken(t, testNow.Add(-time.Hour))
	assert.Equal(t, 24*time.Hour, SessionTTL(token, 24*time.Hour, clk))
}

func TestMemorySessionStoreLifecycle(t *testing.T) {
	clk := clock.NewFixed(testNow)
	store := NewMemorySessionStore(clk)
	ctx := context.Background()

	ok, err := store.Validate(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, ok)

	admin := Admin{ID: "admin-1", Email: "ops@example.com", Name: "Ops"}
	require.NoError(t, store.Save(ctx, "tok-1", admin, time.Hour))

	ok, err = store.Validate(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ops@example.com", got.Email)

	require.NoError(t, store.Clear(ctx, "tok-1"))
	ok, err = store.Validate(ctx, "tok-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	store := NewMemorySessionStore(clock.NewFixed(testNow))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok-1", Admin{ID: "a"}, time.Minute))

	// Re-create the store view at a later instant.
	later := store.(*memorySessionStore)
	later.clk = clock.NewFixed(testNow.Add(2 * time.Minute))

	ok, err := store.Validate(ctx, "tok-1")
	require.NoError(t, err)
	assert.False(t, ok, "expired sessions are rejected")
}

func TestEmptyTokenNeverValid(t *testing.T) {
	store := NewMemorySessionStore(clock.NewFixed(testNow))
	ok, err := store.Validate(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
}
