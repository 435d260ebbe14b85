package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"relink/internal/config"
	"relink/internal/model"
	"relink/internal/repository"
)

// memStore is an in-memory LinkStoreInterface for wiring the real cache,
// resolver and accountant together without a database.
type memStore struct {
	mu     sync.Mutex
	nextID int64
	byCode map[string]*model.Link
	byID   map[int64]*model.Link
	reads  int
}

func newMemStore() *memStore {
	return &memStore{
		byCode: make(map[string]*model.Link),
		byID:   make(map[int64]*model.Link),
	}
}

func (m *memStore) CreateLink(_ context.Context, link *model.Link) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byCode[link.ShortCode]; ok {
		return gorm.ErrDuplicatedKey
	}
	m.nextID++
	link.ID = m.nextID
	link.CreatedAt = time.Now()
	cp := *link
	m.byCode[link.ShortCode] = &cp
	m.byID[link.ID] = &cp
	return nil
}

func (m *memStore) GetLinkByCode(_ context.Context, shortCode string) (*model.Link, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	link, ok := m.byCode[shortCode]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *link
	return &cp, nil
}

func (m *memStore) GetLinkByID(_ context.Context, id int64) (*model.Link, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	link, ok := m.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *link
	return &cp, nil
}

func (m *memStore) UpdateLinkFields(_ context.Context, id int64, fields map[string]interface{}) (*model.Link, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	link, ok := m.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "active":
			link.Active = v.(bool)
		case "expires_at":
			if v == nil {
				link.ExpiresAt = nil
			} else {
				t := v.(time.Time)
				link.ExpiresAt = &t
			}
		case "max_clicks":
			mc := v.(int64)
			link.MaxClicks = &mc
		}
	}
	cp := *link
	return &cp, nil
}

func (m *memStore) IncrementVisits(_ context.Context, shortCode string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	link, ok := m.byCode[shortCode]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	link.Visits++
	return link.Visits, nil
}

func (m *memStore) RecentLinks(_ context.Context, ownerID int64, limit int) ([]model.Link, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var links []model.Link
	for id := m.nextID; id > 0 && len(links) < limit; id-- {
		if link, ok := m.byID[id]; ok && link.OwnerID == ownerID {
			links = append(links, *link)
		}
	}
	return links, nil
}

func (m *memStore) storeReads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads
}

type scenario struct {
	store      *memStore
	cache      *repository.RedisRepository
	accountant *Accountant
	resolver   *Resolver
	links      *LinkService
}

func newScenario(t *testing.T) *scenario {
	mr := miniredis.RunT(t)
	cache := repository.NewRedisRepository(&config.RedisConfig{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	store := newMemStore()
	accountant := NewAccountant(store, cache, 256)
	t.Cleanup(accountant.Close)

	cacheCfg := testCacheConfig()
	return &scenario{
		store:      store,
		cache:      cache,
		accountant: accountant,
		resolver:   NewResolver(store, cache, accountant, cacheCfg),
		links:      NewLinkService(store, cache, cacheCfg, testShortCodeConfig()),
	}
}

func TestScenario_ColdAndWarmResolveAgree(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()

	link, err := s.links.CreateLink(ctx, 7, &model.CreateLinkRequest{URL: "https://example.com/page"})
	require.NoError(t, err)

	// The create pre-warmed the cache; evict to force a cold read.
	require.NoError(t, s.cache.DeleteLink(ctx, link.ShortCode))

	cold, err := s.resolver.Resolve(ctx, link.ShortCode)
	require.NoError(t, err)
	warm, err := s.resolver.Resolve(ctx, link.ShortCode)
	require.NoError(t, err)

	assert.Equal(t, cold.OriginalURL, warm.OriginalURL)
	assert.Equal(t, cold.ShortCode, warm.ShortCode)
	assert.Equal(t, 1, s.store.storeReads())
}

func TestScenario_CreatePreWarmsTheCache(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()

	link, err := s.links.CreateLink(ctx, 7, &model.CreateLinkRequest{URL: "https://example.com"})
	require.NoError(t, err)

	_, err = s.resolver.Resolve(ctx, link.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, 0, s.store.storeReads())
}

func TestScenario_DisableTakesEffectImmediately(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()

	link, err := s.links.CreateLink(ctx, 7, &model.CreateLinkRequest{URL: "https://example.com"})
	require.NoError(t, err)

	_, err = s.resolver.Resolve(ctx, link.ShortCode)
	require.NoError(t, err)

	inactive := false
	_, err = s.links.UpdateLink(ctx, 7, link.ID, &model.UpdateLinkRequest{Active: &inactive})
	require.NoError(t, err)

	// The invalidation beat the TTL; the next resolve re-reads the store
	// and sees the disabled row.
	_, err = s.resolver.Resolve(ctx, link.ShortCode)
	assert.ErrorIs(t, err, ErrLinkInactive)
}

func TestScenario_CapExhaustion(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()

	cap := int64(2)
	link, err := s.links.CreateLink(ctx, 7, &model.CreateLinkRequest{
		URL:       "https://example.com",
		MaxClicks: &cap,
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := s.resolver.Resolve(ctx, link.ShortCode)
		require.NoError(t, err)
	}

	// The second visit reaches the cap; once the accountant has applied
	// it and invalidated the snapshot, resolves report inactive.
	require.Eventually(t, func() bool {
		_, err := s.resolver.Resolve(ctx, link.ShortCode)
		return err == ErrLinkInactive
	}, 2*time.Second, 10*time.Millisecond)
}

func TestScenario_ConcurrentVisitsCountExactly(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()

	link, err := s.links.CreateLink(ctx, 7, &model.CreateLinkRequest{URL: "https://example.com"})
	require.NoError(t, err)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.resolver.Resolve(ctx, link.ShortCode)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Eventually(t, func() bool {
		got, err := s.store.GetLinkByCode(ctx, link.ShortCode)
		return err == nil && got.Visits == int64(n)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestScenario_UnknownCodeNegativeCaching(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := repository.NewRedisRepository(&config.RedisConfig{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	store := newMemStore()
	cfg := testCacheConfig()
	cfg.NegativeTTL = 30 * time.Second
	resolver := NewResolver(store, cache, nil, cfg)

	ctx := context.Background()
	_, err := resolver.Resolve(ctx, "nowhere1")
	require.ErrorIs(t, err, ErrLinkNotFound)
	require.Equal(t, 1, store.storeReads())

	// The second miss is answered by the sentinel without a store read.
	_, err = resolver.Resolve(ctx, "nowhere1")
	require.ErrorIs(t, err, ErrLinkNotFound)
	assert.Equal(t, 1, store.storeReads())

	// Creating the code afterwards overwrites the sentinel.
	links := NewLinkService(store, cache, cfg, testShortCodeConfig())
	_, err = links.CreateLink(ctx, 7, &model.CreateLinkRequest{
		URL:       "https://example.com",
		ShortCode: "nowhere1",
	})
	require.NoError(t, err)

	got, err := resolver.Resolve(ctx, "nowhere1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got.OriginalURL)
}

func TestScenario_RecentLinksReflectNewCreates(t *testing.T) {
	s := newScenario(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.links.CreateLink(ctx, 7, &model.CreateLinkRequest{
			URL: fmt.Sprintf("https://example.com/%d", i),
		})
		require.NoError(t, err)
	}

	links, err := s.links.RecentLinks(ctx, 7, 5)
	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.Equal(t, "https://example.com/2", links[0].OriginalURL)

	// A new create invalidates the cached list.
	_, err = s.links.CreateLink(ctx, 7, &model.CreateLinkRequest{URL: "https://example.com/3"})
	require.NoError(t, err)

	links, err = s.links.RecentLinks(ctx, 7, 5)
	require.NoError(t, err)
	require.Len(t, links, 4)
	assert.Equal(t, "https://example.com/3", links[0].OriginalURL)
}
