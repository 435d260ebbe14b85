package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Guard is a fixed-window admission counter backed by the cache layer's
// atomic increment. It admits bursts at window boundaries; callers who
// need smoother admission compose windows themselves.
type Guard struct {
	cache LinkCacheInterface
}

// NewGuard creates a new Guard
func NewGuard(cache LinkCacheInterface) *Guard {
	return &Guard{cache: cache}
}

// Allow increments the window counter for key and reports whether the
// post-increment count is within the limit. A cache failure admits the
// request; admission control never takes the service down with it.
func (g *Guard) Allow(ctx context.Context, key string, limit int, window time.Duration) bool {
	count, err := g.cache.IncrementWindow(ctx, key, window)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Rate limit counter unavailable, admitting request")
		return true
	}
	return count <= int64(limit)
}
