package service

import (
	"context"
	"time"

	"relink/internal/model"
)

// LinkStoreInterface defines the store operations used by services (for testing)
type LinkStoreInterface interface {
	CreateLink(ctx context.Context, link *model.Link) error
	GetLinkByCode(ctx context.Context, shortCode string) (*model.Link, error)
	GetLinkByID(ctx context.Context, id int64) (*model.Link, error)
	UpdateLinkFields(ctx context.Context, id int64, fields map[string]interface{}) (*model.Link, error)
	IncrementVisits(ctx context.Context, shortCode string) (int64, error)
	RecentLinks(ctx context.Context, ownerID int64, limit int) ([]model.Link, error)
}

// LinkCacheInterface defines the cache operations used by services (for testing)
type LinkCacheInterface interface {
	SaveLink(ctx context.Context, link *model.Link, ttl time.Duration) error
	GetLink(ctx context.Context, shortCode string) (*model.Link, error)
	SaveNegative(ctx context.Context, shortCode string, ttl time.Duration) error
	DeleteLink(ctx context.Context, shortCode string) error
	SaveRecent(ctx context.Context, ownerID int64, links []model.Link, ttl time.Duration) error
	GetRecent(ctx context.Context, ownerID int64) ([]model.Link, error)
	DeleteRecent(ctx context.Context, ownerID int64) error
	IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}

// ResolverInterface defines the redirect resolution operation
type ResolverInterface interface {
	Resolve(ctx context.Context, shortCode string) (*model.Link, error)
}

// LinkServiceInterface defines the link management operations
type LinkServiceInterface interface {
	CreateLink(ctx context.Context, ownerID int64, req *model.CreateLinkRequest) (*model.Link, error)
	UpdateLink(ctx context.Context, ownerID, linkID int64, req *model.UpdateLinkRequest) (*model.Link, error)
	RecentLinks(ctx context.Context, ownerID int64, limit int) ([]model.Link, error)
}

// AccountantInterface defines the fire-and-forget visit recording operation
type AccountantInterface interface {
	Record(v model.Visit) bool
}

// GuardInterface defines the fixed-window admission check
type GuardInterface interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) bool
}
