// Package ratelimit implements a sliding-window request limiter on Redis sorted sets.
//
// Each key maps to a ZSET whose members are individual requests scored by their
// timestamp in microseconds. A Lua script trims entries older than the window,
// counts what remains and records the request only when under the limit, so the
// check is atomic across instances and rejected requests do not extend a lockout.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const keyPrefix = "agrisetu:ratelimit:"

// slidingWindowScript trims, counts and records in one atomic step.
// KEYS[1] key; ARGV now, window start (both microseconds), limit, member, ttl in ms.
// Returns {1} when recorded, else {0, score of the oldest entry}.
// Scores travel as strings so Lua number formatting cannot lose precision.
var slidingWindowScript = redis.NewScript(`
redis.call('ZREMRANGEBYSCORE', KEYS[1], '-inf', '(' .. ARGV[2])
if redis.call('ZCARD', KEYS[1]) < tonumber(ARGV[3]) then
	redis.call('ZADD', KEYS[1], ARGV[1], ARGV[4])
	redis.call('PEXPIRE', KEYS[1], ARGV[5])
	return {1}
end
local oldest = redis.call('ZRANGE', KEYS[1], 0, 0, 'WITHSCORES')
return {0, oldest[2]}
`)

// RedisLimiter allows at most limit requests per key within window
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewClient parses a redis:// URL and verifies the server is reachable
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// NewRedisLimiter creates a limiter over an existing client
func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: limit, window: window, now: time.Now}
}

// Allow records a request for key if the window has room. When the request is
// rejected, retryAfter is the time until the oldest recorded request leaves the window.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	now := l.now()
	res, err := slidingWindowScript.Run(ctx, l.client, []string{keyPrefix + key},
		strconv.FormatInt(now.UnixMicro(), 10),
		strconv.FormatInt(now.Add(-l.window).UnixMicro(), 10),
		l.limit,
		uuid.NewString(),
		(2 * l.window).Milliseconds(),
	).Slice()
	if err != nil {
		return false, 0, fmt.Errorf("failed to run rate limit script: %w", err)
	}
	if len(res) == 0 {
		return false, 0, fmt.Errorf("empty rate limit script reply")
	}

	if allowed, _ := res[0].(int64); allowed == 1 {
		return true, 0, nil
	}
	return false, l.retryAfter(res, now), nil
}

func (l *RedisLimiter) retryAfter(res []interface{}, now time.Time) time.Duration {
	if len(res) < 2 {
		return l.window
	}
	raw, _ := res[1].(string)
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return l.window
	}
	expires := time.UnixMicro(int64(score)).Add(l.window)
	if wait := expires.Sub(now); wait > time.Second {
		return wait
	}
	return time.Second
}
