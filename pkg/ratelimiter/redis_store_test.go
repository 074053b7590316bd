package ratelimiter_test

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/beacon/pkg/ratelimiter"
)

func TestRedisStore_Unavailable(t *testing.T) {
	t.Parallel()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	client := redis.NewClient(&redis.Options{Addr: addr, MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	defer client.Close()

	store := ratelimiter.NewRedisStore(client)
	cfg := ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second}

	_, _, err = store.ConsumeTokens(context.Background(), "ip", 1, cfg)
	assert.ErrorIs(t, err, ratelimiter.ErrStoreUnavailable)
	assert.ErrorIs(t, store.Reset(context.Background(), "ip"), ratelimiter.ErrStoreUnavailable)
}

// TestRedisStore_Integration runs against a real server when REDIS_URL is set.
func TestRedisStore_Integration(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	defer client.Close()

	ctx := context.Background()
	store := ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix("beacon-test:"+t.Name()+":"))
	cfg := ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Hour}

	require.NoError(t, store.Reset(ctx, "ip"))
	defer func() { _ = store.Reset(ctx, "ip") }()

	for _, want := range []int{1, 0, -1} {
		remaining, resetAt, err := store.ConsumeTokens(ctx, "ip", 1, cfg)
		require.NoError(t, err)
		assert.Equal(t, want, remaining)
		assert.WithinDuration(t, time.Now().Add(time.Hour), resetAt, time.Minute)
	}

	remaining, _, err := store.ConsumeTokens(ctx, "ip", 0, cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining, "denied request consumed nothing")
}
