package usecase

import (
	"context"
	"sort"

	domainCache "github.com/alien2112/menu-rwad-sub005/domains/cache"
	"github.com/alien2112/menu-rwad-sub005/infrastructure/revalidate"
	"github.com/sirupsen/logrus"
)

// family groups the cache-key prefixes owned by one resource family with the
// edge paths/tags that must be refreshed when it changes. Every cached query
// shape gets its prefix listed here, so a new cached read only needs a one
// line addition to stay covered by invalidation.
type family struct {
	name     string
	prefixes []string
	paths    []string
	tags     []string
}

var (
	familyCategories = family{
		name:     "categories",
		prefixes: []string{domainCache.PrefixCategories},
		paths:    []string{"/"},
		tags:     []string{"homepage"},
	}
	familyItems = family{
		name:     "items",
		prefixes: []string{domainCache.PrefixItems},
		paths:    []string{"/"},
		tags:     []string{"homepage"},
	}
	familyOffers = family{
		name:     "offers",
		prefixes: []string{domainCache.PrefixOffers},
		paths:    []string{"/", "/offers"},
		tags:     []string{"homepage", "offers"},
	}
	familySignatureDrinks = family{
		name:     "signature-drinks",
		prefixes: []string{domainCache.PrefixSignatureDrinks},
		paths:    []string{"/"},
		tags:     []string{"homepage", "signature-drinks"},
	}
	familyReviews = family{
		name:     "reviews",
		prefixes: []string{domainCache.PrefixReviews},
		paths:    []string{"/"},
		tags:     []string{"homepage"},
	}
	familyIngredients = family{
		name:     "ingredients",
		prefixes: []string{domainCache.PrefixIngredients},
	}
	familyLocations = family{
		name:     "locations",
		prefixes: []string{domainCache.PrefixLocations},
	}
	familyBackgrounds = family{
		name:     "backgrounds",
		prefixes: []string{domainCache.PrefixBackgrounds},
		paths:    []string{"/"},
		tags:     []string{"homepage"},
	}
	familyMenuItemReviews = family{
		name:     "menu-item-reviews",
		prefixes: []string{domainCache.PrefixMenuItemReviews},
	}
	familySettings = family{
		name:     "settings",
		prefixes: []string{domainCache.PrefixSettings},
		paths:    []string{"/"},
		tags:     []string{"homepage"},
	}
)

// InvalidationRegistry deletes every server cache key a resource family
// could have produced and fires the matching edge revalidation signal.
// Mutation services call it after their write commits and before they
// return, which gives read-your-writes on the same process instance.
// Other instances keep their own caches and converge by TTL.
type InvalidationRegistry struct {
	store       domainCache.Store
	revalidator revalidate.Revalidator
}

func NewInvalidationRegistry(store domainCache.Store, rev revalidate.Revalidator) *InvalidationRegistry {
	if rev == nil {
		rev = revalidate.Noop{}
	}
	return &InvalidationRegistry{store: store, revalidator: rev}
}

func (r *InvalidationRegistry) invalidate(ctx context.Context, f family) {
	removed := 0
	for _, prefix := range f.prefixes {
		removed += r.store.DeletePrefix(ctx, prefix)
	}

	logrus.WithFields(logrus.Fields{
		"family":  f.name,
		"removed": removed,
	}).Debug("[CACHE] invalidated")

	if len(f.paths) > 0 {
		r.revalidator.InvalidatePaths(ctx, f.paths...)
	}
	if len(f.tags) > 0 {
		r.revalidator.InvalidateTags(ctx, f.tags...)
	}
}

func (r *InvalidationRegistry) Categories(ctx context.Context) {
	r.invalidate(ctx, familyCategories)
}

// Items also clears categories: category item counts and per-category item
// lists both embed item data.
func (r *InvalidationRegistry) Items(ctx context.Context) {
	r.invalidate(ctx, familyItems)
	r.invalidate(ctx, familyCategories)
}

func (r *InvalidationRegistry) Offers(ctx context.Context) {
	r.invalidate(ctx, familyOffers)
}

func (r *InvalidationRegistry) SignatureDrinks(ctx context.Context) {
	r.invalidate(ctx, familySignatureDrinks)
}

func (r *InvalidationRegistry) Reviews(ctx context.Context) {
	r.invalidate(ctx, familyReviews)
}

func (r *InvalidationRegistry) Ingredients(ctx context.Context) {
	r.invalidate(ctx, familyIngredients)
}

func (r *InvalidationRegistry) Locations(ctx context.Context) {
	r.invalidate(ctx, familyLocations)
}

func (r *InvalidationRegistry) Backgrounds(ctx context.Context) {
	r.invalidate(ctx, familyBackgrounds)
}

// MenuItemReviews clears the per-item review list for one item only; other
// items' review caches stay warm.
func (r *InvalidationRegistry) MenuItemReviews(ctx context.Context, itemID string) {
	removed := r.store.DeletePrefix(ctx, domainCache.KeyMenuItemReviews(itemID))

	logrus.WithFields(logrus.Fields{
		"family":  familyMenuItemReviews.name,
		"item_id": itemID,
		"removed": removed,
	}).Debug("[CACHE] invalidated")
}

func (r *InvalidationRegistry) Settings(ctx context.Context) {
	r.invalidate(ctx, familySettings)
}

// Image clears every rendered variant of one source image (all the
// width/height/quality/format combinations).
func (r *InvalidationRegistry) Image(ctx context.Context, imageID string) {
	removed := r.store.DeletePrefix(ctx, domainCache.KeyImagePrefix(imageID))

	logrus.WithFields(logrus.Fields{
		"family":   "images",
		"image_id": imageID,
		"removed":  removed,
	}).Debug("[CACHE] invalidated")
}

// All flushes the whole server cache and refreshes every registered edge
// path and tag.
func (r *InvalidationRegistry) All(ctx context.Context) {
	r.store.Flush(ctx)

	paths := map[string]struct{}{}
	tags := map[string]struct{}{}
	for _, f := range []family{
		familyCategories, familyItems, familyOffers, familySignatureDrinks,
		familyReviews, familyIngredients, familyLocations, familyBackgrounds,
		familyMenuItemReviews, familySettings,
	} {
		for _, p := range f.paths {
			paths[p] = struct{}{}
		}
		for _, t := range f.tags {
			tags[t] = struct{}{}
		}
	}

	r.revalidator.InvalidatePaths(ctx, sortedKeys(paths)...)
	r.revalidator.InvalidateTags(ctx, sortedKeys(tags)...)

	logrus.Info("[CACHE] full flush")
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
