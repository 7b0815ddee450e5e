package usecase

import (
	"context"
	"testing"
	"time"

	domainCache "github.com/alien2112/menu-rwad-sub005/domains/cache"
	domainCategory "github.com/alien2112/menu-rwad-sub005/domains/category"
	"github.com/alien2112/menu-rwad-sub005/infrastructure/memcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	values map[string]string
}

func (f *fakeSettingsRepo) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeSettingsRepo) Set(_ context.Context, key, value string) error {
	f.values[key] = value
	return nil
}

func (f *fakeSettingsRepo) All(_ context.Context) (map[string]string, error) {
	return f.values, nil
}

// ttlSpyStore records the TTL passed to Set so tests can observe which
// lifetime a read-through write used.
type ttlSpyStore struct {
	domainCache.Store
	lastTTL time.Duration
}

func (s *ttlSpyStore) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	s.lastTTL = ttl
	s.Store.Set(ctx, key, value, ttl)
}

type listOnlyCategoryRepo struct {
	categories []domainCategory.Category
}

func (r *listOnlyCategoryRepo) Create(_ context.Context, _ *domainCategory.Category) error {
	return nil
}

func (r *listOnlyCategoryRepo) GetByID(_ context.Context, _ string) (*domainCategory.Category, error) {
	return nil, domainCategory.ErrNotFound
}

func (r *listOnlyCategoryRepo) List(_ context.Context) ([]domainCategory.Category, error) {
	return r.categories, nil
}

func (r *listOnlyCategoryRepo) Update(_ context.Context, _ *domainCategory.Category) error {
	return nil
}

func (r *listOnlyCategoryRepo) Delete(_ context.Context, _ string) error { return nil }

func restoreTTLs(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		domainCache.SetTTLs(domainCache.TTLFiveMinutes, domainCache.TTLOneDay)
	})
}

func TestSaveSettingsAppliesTTLs(t *testing.T) {
	restoreTTLs(t)

	store := memcache.New()
	settings := &fakeSettingsRepo{values: map[string]string{}}
	svc := NewCacheService(store, "memory", settings, NewInvalidationRegistry(store, nil))
	ctx := context.Background()

	err := svc.SaveSettings(ctx, domainCache.CacheSettings{
		Enabled:           true,
		DefaultTTLSeconds: 60,
		ImageTTLSeconds:   3600,
	})
	require.NoError(t, err)

	assert.Equal(t, time.Minute, domainCache.DefaultTTL())
	assert.Equal(t, time.Hour, domainCache.ImageTTL())

	// and the persisted copy round-trips
	loaded, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60, loaded.DefaultTTLSeconds)
	assert.Equal(t, 3600, loaded.ImageTTLSeconds)
}

func TestSavedTTLReachesReadThroughWrites(t *testing.T) {
	restoreTTLs(t)

	spy := &ttlSpyStore{Store: memcache.New()}
	settings := &fakeSettingsRepo{values: map[string]string{}}
	cacheSvc := NewCacheService(spy, "memory", settings, NewInvalidationRegistry(spy, nil))
	categorySvc := NewCategoryService(
		&listOnlyCategoryRepo{categories: []domainCategory.Category{{ID: "c1", Name: "Hot"}}},
		spy,
		NewInvalidationRegistry(spy, nil),
	)
	ctx := context.Background()

	_, err := categorySvc.List(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, domainCache.TTLFiveMinutes, spy.lastTTL)

	require.NoError(t, cacheSvc.SaveSettings(ctx, domainCache.CacheSettings{
		Enabled:           true,
		DefaultTTLSeconds: 30,
	}))
	spy.Store.Flush(ctx)

	_, err = categorySvc.List(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, spy.lastTTL, "reads must store entries with the configured TTL")
}
