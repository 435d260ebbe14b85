package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"relink/internal/config"
	"relink/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Redis key prefixes
	LinkKeyPrefix      = "url:"
	RecentKeyPrefix    = "recent:"
	RateLimitKeyPrefix = "rl:"

	// negativeSentinel marks a cached not-found. A distinct marker keeps
	// "miss" and "known absent" apart; an empty string would conflate them.
	negativeSentinel = "__nil__"
)

var (
	// ErrCacheMiss is returned when the key is absent or the entry cannot
	// be decoded. Callers fall through to the store.
	ErrCacheMiss = errors.New("cache miss")
	// ErrNegativeEntry is returned when the key holds a cached not-found marker
	ErrNegativeEntry = errors.New("cached negative entry")
)

// RedisRepository handles Redis operations
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// SaveLink stores a serialized link snapshot with the given TTL
func (r *RedisRepository) SaveLink(ctx context.Context, link *model.Link, ttl time.Duration) error {
	data, err := json.Marshal(link)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.linkKey(link.ShortCode), data, ttl).Err()
}

// GetLink retrieves a link snapshot. ErrCacheMiss means the caller should
// read the store; a corrupt entry is treated the same way. ErrNegativeEntry
// means the code is known absent.
func (r *RedisRepository) GetLink(ctx context.Context, shortCode string) (*model.Link, error) {
	data, err := r.client.Get(ctx, r.linkKey(shortCode)).Result()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	if data == negativeSentinel {
		return nil, ErrNegativeEntry
	}

	var link model.Link
	if err := json.Unmarshal([]byte(data), &link); err != nil {
		log.Warn().Err(err).Str("short_code", shortCode).Msg("Corrupt cache entry, treating as miss")
		return nil, ErrCacheMiss
	}
	return &link, nil
}

// SaveNegative stores a not-found marker for a short code
func (r *RedisRepository) SaveNegative(ctx context.Context, shortCode string, ttl time.Duration) error {
	return r.client.Set(ctx, r.linkKey(shortCode), negativeSentinel, ttl).Err()
}

// DeleteLink removes the cached snapshot for a short code
func (r *RedisRepository) DeleteLink(ctx context.Context, shortCode string) error {
	return r.client.Del(ctx, r.linkKey(shortCode)).Err()
}

// SaveRecent stores an owner's recent link list
func (r *RedisRepository) SaveRecent(ctx context.Context, ownerID int64, links []model.Link, ttl time.Duration) error {
	data, err := json.Marshal(links)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.recentKey(ownerID), data, ttl).Err()
}

// GetRecent retrieves an owner's recent link list
func (r *RedisRepository) GetRecent(ctx context.Context, ownerID int64) ([]model.Link, error) {
	data, err := r.client.Get(ctx, r.recentKey(ownerID)).Result()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var links []model.Link
	if err := json.Unmarshal([]byte(data), &links); err != nil {
		return nil, ErrCacheMiss
	}
	return links, nil
}

// DeleteRecent removes an owner's cached recent list
func (r *RedisRepository) DeleteRecent(ctx context.Context, ownerID int64) error {
	return r.client.Del(ctx, r.recentKey(ownerID)).Err()
}

// IncrementWindow increments a fixed-window counter and returns the new
// count. The first increment in a window sets the TTL, so the counter
// expires with the window.
func (r *RedisRepository) IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	fullKey := RateLimitKeyPrefix + key
	count, err := r.client.Incr(ctx, fullKey).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		r.client.Expire(ctx, fullKey, window)
	}
	return count, nil
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

// Helper functions to build Redis keys

func (r *RedisRepository) linkKey(shortCode string) string {
	return LinkKeyPrefix + shortCode
}

func (r *RedisRepository) recentKey(ownerID int64) string {
	return RecentKeyPrefix + strconv.FormatInt(ownerID, 10)
}
