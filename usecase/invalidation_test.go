package usecase

import (
	"context"
	"testing"

	domainCache "github.com/alien2112/menu-rwad-sub005/domains/cache"
	"github.com/alien2112/menu-rwad-sub005/infrastructure/memcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRevalidator struct {
	paths [][]string
	tags  [][]string
}

func (r *recordingRevalidator) InvalidatePaths(_ context.Context, paths ...string) {
	r.paths = append(r.paths, paths)
}

func (r *recordingRevalidator) InvalidateTags(_ context.Context, tags ...string) {
	r.tags = append(r.tags, tags)
}

func TestInvalidationClearsWholeFamily(t *testing.T) {
	ctx := context.Background()
	store := memcache.New()
	registry := NewInvalidationRegistry(store, nil)

	store.Set(ctx, domainCache.KeyOffersAll, "stale list", domainCache.TTLFiveMinutes)
	store.Set(ctx, domainCache.KeyOffer("o1"), "stale offer", domainCache.TTLFiveMinutes)
	store.Set(ctx, domainCache.KeyCategoriesAll, "untouched", domainCache.TTLFiveMinutes)

	registry.Offers(ctx)

	_, found := store.Get(ctx, domainCache.KeyOffersAll)
	assert.False(t, found, "list key must be gone after invalidation")
	_, found = store.Get(ctx, domainCache.KeyOffer("o1"))
	assert.False(t, found, "per-id key must be gone after invalidation")
	_, found = store.Get(ctx, domainCache.KeyCategoriesAll)
	assert.True(t, found, "unrelated family must stay cached")
}

func TestInvalidationReadYourWrites(t *testing.T) {
	ctx := context.Background()
	store := memcache.New()
	registry := NewInvalidationRegistry(store, nil)

	store.Set(ctx, domainCache.KeyOffersAll, []string{"old"}, domainCache.TTLFiveMinutes)

	// The write has committed; invalidation runs before the response goes
	// out, so the very next read must re-query.
	registry.Offers(ctx)

	queried := 0
	got, hit, err := domainCache.Read(ctx, store, domainCache.KeyOffersAll, domainCache.TTLFiveMinutes, func(context.Context) ([]string, error) {
		queried++
		return []string{"new"}, nil
	})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 1, queried)
	assert.Equal(t, []string{"new"}, got)
}

func TestInvalidationItemsAlsoClearsCategories(t *testing.T) {
	ctx := context.Background()
	store := memcache.New()
	registry := NewInvalidationRegistry(store, nil)

	store.Set(ctx, domainCache.KeyItemsAll, "items", domainCache.TTLFiveMinutes)
	store.Set(ctx, domainCache.KeyItemsByCategory("c1"), "by category", domainCache.TTLFiveMinutes)
	store.Set(ctx, domainCache.KeyCategoriesAll, "categories with counts", domainCache.TTLFiveMinutes)

	registry.Items(ctx)

	for _, key := range []string{
		domainCache.KeyItemsAll,
		domainCache.KeyItemsByCategory("c1"),
		domainCache.KeyCategoriesAll,
	} {
		_, found := store.Get(ctx, key)
		assert.False(t, found, "key %q must be gone", key)
	}
}

func TestInvalidationMenuItemReviewsScopedToItem(t *testing.T) {
	ctx := context.Background()
	store := memcache.New()
	registry := NewInvalidationRegistry(store, nil)

	store.Set(ctx, domainCache.KeyMenuItemReviews("i1"), "reviews 1", domainCache.TTLFiveMinutes)
	store.Set(ctx, domainCache.KeyMenuItemReviews("i2"), "reviews 2", domainCache.TTLFiveMinutes)

	registry.MenuItemReviews(ctx, "i1")

	_, found := store.Get(ctx, domainCache.KeyMenuItemReviews("i1"))
	assert.False(t, found)
	_, found = store.Get(ctx, domainCache.KeyMenuItemReviews("i2"))
	assert.True(t, found, "other items' review caches stay warm")
}

func TestInvalidationFiresRevalidationSignals(t *testing.T) {
	ctx := context.Background()
	store := memcache.New()
	rec := &recordingRevalidator{}
	registry := NewInvalidationRegistry(store, rec)

	registry.Offers(ctx)

	require.Len(t, rec.paths, 1)
	assert.Equal(t, []string{"/", "/offers"}, rec.paths[0])
	require.Len(t, rec.tags, 1)
	assert.Equal(t, []string{"homepage", "offers"}, rec.tags[0])
}

func TestInvalidationImageClearsEveryVariant(t *testing.T) {
	ctx := context.Background()
	store := memcache.New()
	registry := NewInvalidationRegistry(store, nil)

	store.Set(ctx, domainCache.KeyImage("img1", 100, 100, 80, "webp"), "a", domainCache.TTLOneDay)
	store.Set(ctx, domainCache.KeyImage("img1", 400, 0, 75, "jpeg"), "b", domainCache.TTLOneDay)
	store.Set(ctx, domainCache.KeyImage("img2", 100, 100, 80, "webp"), "c", domainCache.TTLOneDay)

	registry.Image(ctx, "img1")

	_, found := store.Get(ctx, domainCache.KeyImage("img1", 100, 100, 80, "webp"))
	assert.False(t, found)
	_, found = store.Get(ctx, domainCache.KeyImage("img1", 400, 0, 75, "jpeg"))
	assert.False(t, found)
	_, found = store.Get(ctx, domainCache.KeyImage("img2", 100, 100, 80, "webp"))
	assert.True(t, found)
}
