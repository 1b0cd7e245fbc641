package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/waytopg/accommodation-service/internal/ports"
)

// TokenSweeper periodically removes session tokens older than the token TTL.
// The verifier already rejects stale tokens by issue time, so the sweep only
// keeps the user_tokens table from growing without bound.
type TokenSweeper struct {
	logger   *slog.Logger
	users    ports.UserRepository
	interval time.Duration
	ttl      time.Duration
}

// NewTokenSweeper constructs the sweep loop with sane defaults.
func NewTokenSweeper(logger *slog.Logger, users ports.UserRepository, interval, ttl time.Duration) *TokenSweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenSweeper{
		logger:   logger,
		users:    users,
		interval: interval,
		ttl:      ttl,
	}
}

// Run executes the periodic sweep until context cancellation.
func (w *TokenSweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if err := w.sweepOnce(ctx); err != nil {
			w.logger.ErrorContext(ctx, "token sweep failed",
				"module", "maintenance.token_sweeper",
				"layer", "adapter",
				"operation", "token_sweep_once",
				"outcome", "failure",
				"error", err,
			)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (w *TokenSweeper) sweepOnce(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-w.ttl)
	removed, err := w.users.DeleteTokensIssuedBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	if removed > 0 {
		w.logger.InfoContext(ctx, "expired tokens removed",
			"module", "maintenance.token_sweeper",
			"layer", "adapter",
			"operation", "token_sweep_once",
			"outcome", "success",
			"removed", removed,
		)
	}
	return nil
}
