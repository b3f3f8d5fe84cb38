package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, limit int) (*RedisRateLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRateLimiter(client, "test", limit, time.Hour), mr
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	l, _ := newTestLimiter(t, 2)
	ctx := context.Background()

	for i, want := range []bool{true, true, false, false} {
		ok, err := l.Allow(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, want, ok, "call %d", i)
	}

	ok, err := l.Allow(ctx, "user-2")
	require.NoError(t, err)
	assert.True(t, ok, "limits are per key")
}

func TestRedisRateLimiter_WindowResets(t *testing.T) {
	l, mr := newTestLimiter(t, 1)
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 15, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	ok, _ := l.Allow(ctx, "u")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "u")
	assert.False(t, ok)

	now = now.Add(time.Hour)
	mr.FastForward(time.Hour)
	ok, err := l.Allow(ctx, "u")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisRateLimiter_KeyExpires(t *testing.T) {
	l, mr := newTestLimiter(t, 5)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	_, err := l.Allow(context.Background(), "u")
	require.NoError(t, err)

	key := "test:llm:u:" + "1748772000"
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Hour, mr.TTL(key))
}

func TestRedisRateLimiter_Disabled(t *testing.T) {
	l, mr := newTestLimiter(t, 0)

	ok, err := l.Allow(context.Background(), "u")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, mr.Keys())
}

func TestRedisRateLimiter_RedisDown(t *testing.T) {
	l, mr := newTestLimiter(t, 1)
	mr.Close()

	_, err := l.Allow(context.Background(), "u")
	assert.Error(t, err)
}
