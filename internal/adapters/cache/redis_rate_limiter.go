package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter implements fixed-window counters in Redis, keyed by
// route class and client address. Counting in Redis keeps the limit shared
// across API replicas.
type RedisRateLimiter struct {
	client *redis.Client
	window time.Duration
	limits map[string]int
}

// NewRedisRateLimiter creates a limiter with per-class thresholds over a
// shared window.
func NewRedisRateLimiter(client *redis.Client, window time.Duration, limits map[string]int) *RedisRateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &RedisRateLimiter{
		client: client,
		window: window,
		limits: limits,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, class, key string) (bool, error) {
	limit, ok := l.limits[class]
	if !ok || limit <= 0 {
		return true, nil
	}

	redisKey := "ratelimit:" + class + ":" + key
	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		// First hit in the window starts its TTL; the window resets when
		// the key expires.
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(limit), nil
}
