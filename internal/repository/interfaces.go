package repository

import (
	"context"
	"time"

	"relink/internal/model"
)

// LinkStoreInterface defines the interface for MySQL operations
type LinkStoreInterface interface {
	GetDB() interface{}
	CreateLink(ctx context.Context, link *model.Link) error
	GetLinkByCode(ctx context.Context, shortCode string) (*model.Link, error)
	GetLinkByID(ctx context.Context, id int64) (*model.Link, error)
	UpdateLinkFields(ctx context.Context, id int64, fields map[string]interface{}) (*model.Link, error)
	IncrementVisits(ctx context.Context, shortCode string) (int64, error)
	RecentLinks(ctx context.Context, ownerID int64, limit int) ([]model.Link, error)
	SaveClickEvent(ctx context.Context, event *model.ClickEvent) error
	GetClickEvents(ctx context.Context, shortCode string, limit int) ([]model.ClickEvent, error)
	Close() error
}

// LinkCacheInterface defines the interface for Redis operations
type LinkCacheInterface interface {
	GetClient() interface{}
	SaveLink(ctx context.Context, link *model.Link, ttl time.Duration) error
	GetLink(ctx context.Context, shortCode string) (*model.Link, error)
	SaveNegative(ctx context.Context, shortCode string, ttl time.Duration) error
	DeleteLink(ctx context.Context, shortCode string) error
	SaveRecent(ctx context.Context, ownerID int64, links []model.Link, ttl time.Duration) error
	GetRecent(ctx context.Context, ownerID int64) ([]model.Link, error)
	DeleteRecent(ctx context.Context, ownerID int64) error
	IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, error)
	Close() error
}
