package clientcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seedStore() *MemoryStore {
	store := NewMemoryStore()
	for _, key := range []string{
		"categories:all",
		"categories:c1",
		"items:all",
		"items:category:c1",
		"offers:all",
		"menu-item-reviews:item:i1",
		"menu-item-reviews:item:i2",
	} {
		store.Write(key, []byte(`{}`))
	}
	return store
}

func TestClearByPattern(t *testing.T) {
	store := seedStore()
	registry := NewRegistry(store)

	removed := registry.ClearByPattern("offers:")
	assert.Equal(t, 1, removed)

	_, ok := store.Read("offers:all")
	assert.False(t, ok)
	_, ok = store.Read("categories:all")
	assert.True(t, ok)
}

func TestItemsClearsCategoriesToo(t *testing.T) {
	store := seedStore()
	registry := NewRegistry(store)

	removed := registry.Items()
	assert.Equal(t, 4, removed)

	for _, key := range []string{"items:all", "items:category:c1", "categories:all", "categories:c1"} {
		_, ok := store.Read(key)
		assert.False(t, ok, "key %q must be gone", key)
	}
}

func TestMenuItemReviewsScoped(t *testing.T) {
	store := seedStore()
	registry := NewRegistry(store)

	registry.MenuItemReviews("i1")

	_, ok := store.Read("menu-item-reviews:item:i1")
	assert.False(t, ok)
	_, ok = store.Read("menu-item-reviews:item:i2")
	assert.True(t, ok)
}

func TestClearAll(t *testing.T) {
	store := seedStore()
	registry := NewRegistry(store)

	removed := registry.ClearAll()
	assert.Equal(t, 7, removed)
	assert.Empty(t, store.Keys())

	// clearing an empty store is a no-op, not an error
	assert.Equal(t, 0, registry.ClearAll())
}
