package redis

import (
	"context"
	"fmt"
	"time"
)

const fixedWindowScript = `
	local count = redis.call("INCR", KEYS[1])
	if count == 1 then
		redis.call("PEXPIRE", KEYS[1], ARGV[1])
	end
	return {count, redis.call("PTTL", KEYS[1])}
`

// FixedWindowLimiter counts hits per key inside fixed windows. The window
// starts with the first hit and is not extended by later ones.
type FixedWindowLimiter struct {
	client    *Client
	namespace string
	limit     int64
	window    time.Duration
}

// RateLimitResult describes one Allow decision
type RateLimitResult struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// NewFixedWindowLimiter allows up to limit hits per key per window
func NewFixedWindowLimiter(client *Client, namespace string, limit int, window time.Duration) *FixedWindowLimiter {
	if limit <= 0 {
		panic(fmt.Sprintf("invalid limit: %d, must be positive", limit))
	}
	if window <= 0 {
		panic(fmt.Sprintf("invalid window: %v, must be positive", window))
	}
	return &FixedWindowLimiter{client: client, namespace: namespace, limit: int64(limit), window: window}
}

// Allow records one hit for key and reports whether it fits the window
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (RateLimitResult, error) {
	fullKey := l.namespace + "::" + key

	values, err := l.client.GetClient().Eval(ctx, fixedWindowScript, []string{fullKey}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to record hit: %w", err)
	}

	count, ttl := values[0], time.Duration(values[1])*time.Millisecond
	if count > l.limit {
		return RateLimitResult{Allowed: false, RetryAfter: ttl}, nil
	}
	return RateLimitResult{Allowed: true, Remaining: l.limit - count}, nil
}
