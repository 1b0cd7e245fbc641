package ports

import "context"

// RateLimiter bounds request volume per client key within a fixed window.
// Route classes (login, signup) carry their own thresholds so brute-force
// cost is capped before any hashing work happens.
type RateLimiter interface {
	// Allow reports whether one more request for class/key fits the window.
	Allow(ctx context.Context, class, key string) (bool, error)
}
