package redis

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	port, err := strconv.Atoi(server.Port())
	require.NoError(t, err)

	client := NewClient(NewRedisConfig().WithHost(server.Host()).WithPort(port))
	t.Cleanup(func() { _ = client.Close() })
	return client, server
}

type forecast struct {
	Adm4  string    `json:"adm4"`
	Temps []float64 `json:"temps"`
}

func TestClient_GetReportsMiss(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	_, found, err := client.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, client.Set(ctx, "empty", "", 0))
	value, found, err := client.Get(ctx, "empty")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "", value)
}

func TestCache_RoundTripUsesNamedTTL(t *testing.T) {
	client, server := newTestClient(t)
	client.GetConfig().WithCacheTTL("bmkg", 10*time.Minute)
	cache := NewCache(client, NewCacheOptions().WithCacheName("bmkg"))
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "33.07.09.1020", forecast{Adm4: "33.07.09.1020", Temps: []float64{21, 23}}))
	assert.Equal(t, 10*time.Minute, server.TTL("bmkg::33.07.09.1020"))

	var got forecast
	found, err := cache.Get(ctx, "33.07.09.1020", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []float64{21, 23}, got.Temps)

	found, err = cache.Get(ctx, "other", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_Clear(t *testing.T) {
	client, server := newTestClient(t)
	cache := NewCache(client, NewCacheOptions().WithCacheName("c"))
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", 1))
	require.NoError(t, cache.Set(ctx, "b", 2))
	require.NoError(t, client.Set(ctx, "keep", "x", 0))

	require.NoError(t, cache.Clear(ctx))
	assert.False(t, server.Exists("c::a"))
	assert.False(t, server.Exists("c::b"))
	assert.True(t, server.Exists("keep"))
}

func TestGetOrLoad_LoadsOnceThenServesCache(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewCache(client, NewCacheOptions().WithCacheName("load"))
	ctx := context.Background()

	calls := 0
	load := func(context.Context) (forecast, error) {
		calls++
		return forecast{Adm4: "x"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := GetOrLoad(ctx, cache, "k", load, nil)
		require.NoError(t, err)
		assert.Equal(t, "x", got.Adm4)
	}
	assert.Equal(t, 1, calls)
}

func TestGetOrLoad_FallsThroughWhenRedisIsDown(t *testing.T) {
	client, server := newTestClient(t)
	cache := NewCache(client, NewCacheOptions().WithCacheName("load"))
	server.Close()

	var cacheErrs int
	got, err := GetOrLoad(context.Background(), cache, "k", func(context.Context) (int, error) {
		return 7, nil
	}, func(error) { cacheErrs++ })

	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Equal(t, 2, cacheErrs)
}

func TestGetOrLoad_PropagatesLoadError(t *testing.T) {
	client, server := newTestClient(t)
	cache := NewCache(client, NewCacheOptions().WithCacheName("load"))

	_, err := GetOrLoad(context.Background(), cache, "k", func(context.Context) (int, error) {
		return 0, errors.New("upstream down")
	}, nil)

	require.EqualError(t, err, "upstream down")
	assert.False(t, server.Exists("load::k"))
}

func TestLock_ExclusiveUntilUnlocked(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()
	opts := NewLockOptions().WithTTL(time.Minute).WithLockNamespace("market")

	first := NewLock(client, "sync", opts)
	second := NewLock(client, "sync", opts)

	require.NoError(t, first.Lock(ctx))
	err := second.Lock(ctx)
	require.ErrorIs(t, err, ErrLockNotAcquired)

	assert.Error(t, second.Unlock(ctx))
	require.NoError(t, first.Refresh(ctx))
	require.NoError(t, first.Unlock(ctx))
	require.NoError(t, second.Lock(ctx))
}

func TestLockWithFunc_ReleasesAfterRun(t *testing.T) {
	client, server := newTestClient(t)
	ctx := context.Background()

	ran := false
	err := LockWithFunc(ctx, client, "job", NewLockOptions(), func() error {
		ran = true
		assert.True(t, server.Exists("job"))
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
	assert.False(t, server.Exists("job"))
}

func TestFixedWindowLimiter(t *testing.T) {
	client, server := newTestClient(t)
	limiter := NewFixedWindowLimiter(client, "login", 2, time.Minute)
	ctx := context.Background()

	first, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, first.Allowed)
	assert.Equal(t, int64(1), first.Remaining)

	second, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, second.Allowed)
	assert.Equal(t, int64(0), second.Remaining)

	third, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, third.Allowed)
	assert.Greater(t, third.RetryAfter, time.Duration(0))

	other, err := limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, other.Allowed)

	server.FastForward(time.Minute + time.Second)
	again, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, again.Allowed)
}

func TestHealthChecker(t *testing.T) {
	client, server := newTestClient(t)
	checker := NewHealthChecker(client)

	up := checker.HealthCheck(context.Background())
	assert.Equal(t, StatusUp, up.Status)
	assert.Contains(t, up.Details, "ping_latency")

	server.Close()
	down := checker.HealthCheck(context.Background())
	assert.Equal(t, StatusDown, down.Status)
	assert.NotEmpty(t, down.Details["message"])
}
