package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"relink/internal/config"
	"relink/internal/model"
	"relink/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	// ErrLinkNotFound is returned when no link exists for a short code
	ErrLinkNotFound = errors.New("link not found")
	// ErrLinkInactive is returned when a link exists but is disabled, expired or exhausted
	ErrLinkInactive = errors.New("link inactive")
)

// Resolver resolves short codes to links, cache first with the store as
// fallback. Cache failures degrade to store-only reads; store failures on
// a miss surface to the caller.
type Resolver struct {
	store       LinkStoreInterface
	cache       LinkCacheInterface
	accountant  AccountantInterface
	linkTTL     time.Duration
	negativeTTL time.Duration
	now         func() time.Time
}

// NewResolver creates a new Resolver
func NewResolver(
	store LinkStoreInterface,
	cache LinkCacheInterface,
	accountant AccountantInterface,
	cfg *config.CacheConfig,
) *Resolver {
	return &Resolver{
		store:       store,
		cache:       cache,
		accountant:  accountant,
		linkTTL:     cfg.LinkTTL,
		negativeTTL: cfg.NegativeTTL,
		now:         time.Now,
	}
}

// Resolve returns the link for a short code if it may redirect. Validity
// is evaluated against the snapshot actually obtained (cache or store),
// not re-read, so a link that just became invalid may redirect once more
// within the cache TTL. A valid resolution enqueues a visit without
// waiting for it.
func (r *Resolver) Resolve(ctx context.Context, shortCode string) (*model.Link, error) {
	link, err := r.cache.GetLink(ctx, shortCode)
	switch {
	case err == nil:
		// cache hit
	case errors.Is(err, repository.ErrNegativeEntry):
		return nil, ErrLinkNotFound
	case errors.Is(err, repository.ErrCacheMiss):
		link = nil
	default:
		log.Warn().Err(err).Str("short_code", shortCode).Msg("Cache unavailable, degrading to store-only read")
		link = nil
	}

	if link == nil {
		link, err = r.store.GetLinkByCode(ctx, shortCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if r.negativeTTL > 0 {
					if err := r.cache.SaveNegative(ctx, shortCode, r.negativeTTL); err != nil {
						log.Warn().Err(err).Str("short_code", shortCode).Msg("Failed to cache negative entry")
					}
				}
				return nil, ErrLinkNotFound
			}
			return nil, fmt.Errorf("failed to read link from store: %w", err)
		}

		if err := r.cache.SaveLink(ctx, link, r.linkTTL); err != nil {
			log.Warn().Err(err).Str("short_code", shortCode).Msg("Failed to repopulate cache")
		}
	}

	if !link.Valid(r.now()) {
		return nil, ErrLinkInactive
	}

	if r.accountant != nil {
		r.accountant.Record(model.Visit{
			ShortCode: link.ShortCode,
			MaxClicks: link.MaxClicks,
		})
	}

	return link, nil
}
