package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAP-F-2025/course-service/internal/repositories"
)

func newTestStore(t *testing.T) (*TokenRedis, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewTokenRedis(client), mr
}

func TestTokenRedis_StoreLookupRevoke(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Store(ctx, "digest-a", 42, 0))

	userID, err := store.Lookup(ctx, "digest-a")
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)

	require.NoError(t, store.Revoke(ctx, "digest-a"))

	_, err = store.Lookup(ctx, "digest-a")
	assert.True(t, repositories.IsNotFoundError(err))

	// revoking twice reports the missing session
	assert.True(t, repositories.IsNotFoundError(store.Revoke(ctx, "digest-a")))
}

func TestTokenRedis_UnknownToken(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Lookup(context.Background(), "never-issued")
	assert.True(t, repositories.IsNotFoundError(err))
}

func TestTokenRedis_TTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Store(ctx, "short-lived", 7, time.Minute))
	assert.Equal(t, time.Minute, mr.TTL(sessionKey("short-lived")))

	mr.FastForward(2 * time.Minute)

	_, err := store.Lookup(ctx, "short-lived")
	assert.True(t, repositories.IsNotFoundError(err))
}

func TestTokenRedis_RevokeAllForUser(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Store(ctx, "laptop", 1, 0))
	require.NoError(t, store.Store(ctx, "phone", 1, 0))
	require.NoError(t, store.Store(ctx, "other-user", 2, 0))

	require.NoError(t, store.RevokeAllForUser(ctx, 1))

	for _, h := range []string{"laptop", "phone"} {
		_, err := store.Lookup(ctx, h)
		assert.True(t, repositories.IsNotFoundError(err), h)
	}
	assert.False(t, mr.Exists(userSessionsKey(1)))

	userID, err := store.Lookup(ctx, "other-user")
	require.NoError(t, err)
	assert.Equal(t, uint(2), userID)
}
