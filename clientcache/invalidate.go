package clientcache

import (
	"strings"

	domainCache "github.com/alien2112/menu-rwad-sub005/domains/cache"
	"github.com/sirupsen/logrus"
)

// Registry removes local entries after admin actions, mirroring the server
// side invalidation families. Removal is local to this process; other
// processes watching the same directory pick it up through the watcher.
type Registry struct {
	store Store
}

func NewRegistry(store Store) *Registry {
	return &Registry{store: store}
}

// ClearByPattern removes every key containing the substring and reports how
// many were removed.
func (r *Registry) ClearByPattern(substring string) int {
	removed := 0
	for _, key := range r.store.Keys() {
		if strings.Contains(key, substring) {
			r.store.Remove(key)
			removed++
		}
	}

	logrus.WithFields(logrus.Fields{
		"pattern": substring,
		"removed": removed,
	}).Debug("[CLIENTCACHE] cleared")
	return removed
}

// ClearAll removes every entry. Recovery hatch for schema migrations.
func (r *Registry) ClearAll() int {
	removed := 0
	for _, key := range r.store.Keys() {
		r.store.Remove(key)
		removed++
	}
	return removed
}

func (r *Registry) Categories() int {
	return r.ClearByPattern(domainCache.PrefixCategories)
}

// Items clears categories too; cached category payloads embed item counts.
func (r *Registry) Items() int {
	return r.ClearByPattern(domainCache.PrefixItems) + r.Categories()
}

func (r *Registry) Offers() int {
	return r.ClearByPattern(domainCache.PrefixOffers)
}

func (r *Registry) SignatureDrinks() int {
	return r.ClearByPattern(domainCache.PrefixSignatureDrinks)
}

func (r *Registry) Reviews() int {
	return r.ClearByPattern(domainCache.PrefixReviews)
}

func (r *Registry) MenuItemReviews(itemID string) int {
	return r.ClearByPattern(domainCache.KeyMenuItemReviews(itemID))
}

func (r *Registry) Ingredients() int {
	return r.ClearByPattern(domainCache.PrefixIngredients)
}

func (r *Registry) Locations() int {
	return r.ClearByPattern(domainCache.PrefixLocations)
}

func (r *Registry) Backgrounds() int {
	return r.ClearByPattern(domainCache.PrefixBackgrounds)
}

func (r *Registry) Settings() int {
	return r.ClearByPattern(domainCache.PrefixSettings)
}
