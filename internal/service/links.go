package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"time"

	"relink/internal/config"
	"relink/internal/model"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	// ErrInvalidURL is returned when the destination URL is not an absolute http(s) URL
	ErrInvalidURL = errors.New("invalid URL")
	// ErrInvalidCode is returned when a requested short code is empty or not URL-safe
	ErrInvalidCode = errors.New("invalid short code")
	// ErrCodeTaken is returned when a requested short code is already in use
	ErrCodeTaken = errors.New("short code already in use")
	// ErrForbidden is returned when a link belongs to a different owner
	ErrForbidden = errors.New("link owned by another user")
	// ErrCodeSpaceExhausted is returned when code generation keeps colliding
	ErrCodeSpaceExhausted = errors.New("exhausted attempts to generate a unique short code")
)

// codePattern matches URL-safe short codes, 1 to 32 characters
var codePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)

// LinkService handles link creation, mutation and listing. Mutations of
// validity fields invalidate the cached snapshot after the store write
// has committed.
type LinkService struct {
	store       LinkStoreInterface
	cache       LinkCacheInterface
	linkTTL     time.Duration
	recentTTL   time.Duration
	codeLength  int
	maxAttempts int
}

// NewLinkService creates a new LinkService
func NewLinkService(
	store LinkStoreInterface,
	cache LinkCacheInterface,
	cacheCfg *config.CacheConfig,
	codeCfg *config.ShortCodeConfig,
) *LinkService {
	return &LinkService{
		store:       store,
		cache:       cache,
		linkTTL:     cacheCfg.LinkTTL,
		recentTTL:   cacheCfg.RecentTTL,
		codeLength:  codeCfg.Length,
		maxAttempts: codeCfg.MaxAttempts,
	}
}

// CreateLink validates the request, allocates a short code and stores the
// link. A user-supplied code that collides fails immediately with
// ErrCodeTaken; generated codes are retried up to the attempt budget. The
// new snapshot is pre-warmed into the cache so the first redirect hits.
func (s *LinkService) CreateLink(ctx context.Context, ownerID int64, req *model.CreateLinkRequest) (*model.Link, error) {
	if !validDestination(req.URL) {
		return nil, ErrInvalidURL
	}

	var expiresAt *time.Time
	if req.ExpiresAt != "" {
		t, err := time.Parse(time.RFC3339, req.ExpiresAt)
		if err != nil {
			return nil, fmt.Errorf("invalid expires_at format: %w", err)
		}
		expiresAt = &t
	}

	if req.MaxClicks != nil && *req.MaxClicks < 0 {
		return nil, fmt.Errorf("max_clicks must be non-negative")
	}

	link := &model.Link{
		OriginalURL: req.URL,
		OwnerID:     ownerID,
		Active:      true,
		ExpiresAt:   expiresAt,
		MaxClicks:   req.MaxClicks,
	}

	if req.ShortCode != "" {
		if !codePattern.MatchString(req.ShortCode) {
			return nil, ErrInvalidCode
		}
		link.ShortCode = req.ShortCode
		if err := s.store.CreateLink(ctx, link); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrCodeTaken
			}
			return nil, fmt.Errorf("failed to create link: %w", err)
		}
	} else if err := s.createWithGeneratedCode(ctx, link); err != nil {
		return nil, err
	}

	// Pre-warm so the first redirect is a cache hit
	if err := s.cache.SaveLink(ctx, link, s.linkTTL); err != nil {
		log.Warn().Err(err).Str("short_code", link.ShortCode).Msg("Failed to pre-warm cache")
	}
	if err := s.cache.DeleteRecent(ctx, ownerID); err != nil {
		log.Warn().Err(err).Int64("owner_id", ownerID).Msg("Failed to invalidate recent list")
	}

	return link, nil
}

// createWithGeneratedCode allocates a random URL-safe code, retrying on
// collision against the unique index. The attempt budget keeps a run of
// collisions from turning into an unbounded loop.
func (s *LinkService) createWithGeneratedCode(ctx context.Context, link *model.Link) error {
	for i := 0; i < s.maxAttempts; i++ {
		code, err := gonanoid.New(s.codeLength)
		if err != nil {
			return fmt.Errorf("failed to generate short code: %w", err)
		}

		link.ShortCode = code
		err = s.store.CreateLink(ctx, link)
		if err == nil {
			return nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Debug().Str("short_code", code).Msg("Short code collision, retrying")
			continue
		}
		return fmt.Errorf("failed to create link: %w", err)
	}
	return ErrCodeSpaceExhausted
}

// UpdateLink applies a partial update to a link's validity fields and
// invalidates the cached snapshot. The cache delete runs only after the
// store write has committed, so a concurrent miss cannot repopulate the
// pre-update row after the invalidation.
func (s *LinkService) UpdateLink(ctx context.Context, ownerID, linkID int64, req *model.UpdateLinkRequest) (*model.Link, error) {
	link, err := s.store.GetLinkByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to read link: %w", err)
	}
	if link.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	fields := make(map[string]interface{})
	if req.Active != nil {
		fields["active"] = *req.Active
	}
	if req.ExpiresAt != nil {
		if *req.ExpiresAt == "" {
			fields["expires_at"] = nil
		} else {
			t, err := time.Parse(time.RFC3339, *req.ExpiresAt)
			if err != nil {
				return nil, fmt.Errorf("invalid expires_at format: %w", err)
			}
			fields["expires_at"] = t
		}
	}
	if req.MaxClicks != nil {
		if *req.MaxClicks < 0 {
			return nil, fmt.Errorf("max_clicks must be non-negative")
		}
		fields["max_clicks"] = *req.MaxClicks
	}

	if len(fields) == 0 {
		return link, nil
	}

	updated, err := s.store.UpdateLinkFields(ctx, linkID, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update link: %w", err)
	}

	if err := s.cache.DeleteLink(ctx, link.ShortCode); err != nil {
		log.Warn().Err(err).Str("short_code", link.ShortCode).Msg("Failed to invalidate cached link")
	}
	if err := s.cache.DeleteRecent(ctx, ownerID); err != nil {
		log.Warn().Err(err).Int64("owner_id", ownerID).Msg("Failed to invalidate recent list")
	}

	return updated, nil
}

// RecentLinks returns an owner's newest links, cache-aside with a short TTL
func (s *LinkService) RecentLinks(ctx context.Context, ownerID int64, limit int) ([]model.Link, error) {
	if links, err := s.cache.GetRecent(ctx, ownerID); err == nil {
		if limit > 0 && len(links) > limit {
			links = links[:limit]
		}
		return links, nil
	}

	links, err := s.store.RecentLinks(ctx, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent links: %w", err)
	}

	if len(links) > 0 {
		if err := s.cache.SaveRecent(ctx, ownerID, links, s.recentTTL); err != nil {
			log.Warn().Err(err).Int64("owner_id", ownerID).Msg("Failed to cache recent list")
		}
	}

	return links, nil
}

// validDestination reports whether the destination is an absolute http(s) URL
func validDestination(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
