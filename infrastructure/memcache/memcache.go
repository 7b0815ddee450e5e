// Package memcache is the default, in-process cache backend. Each server
// instance owns its own map; there is no coordination between instances, so
// cross-instance staleness is bounded only by each entry's TTL. That is a
// deliberate trade-off, not a bug to fix here.
package memcache

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alien2112/menu-rwad-sub005/domains/cache"
)

type entry struct {
	value    any
	storedAt time.Time
	ttl      time.Duration
}

func (e entry) live(now time.Time) bool {
	return now.Sub(e.storedAt) < e.ttl
}

// Cache is an in-memory key/value store with per-entry TTL and lazy expiry.
// Expired entries are dropped on the next read that touches them; there is
// no background sweeper.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	enabled atomic.Bool

	// nowFunc is replaceable in tests
	nowFunc func() time.Time
}

var _ cache.Store = (*Cache)(nil)
var _ cache.Toggleable = (*Cache)(nil)

func New() *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		nowFunc: time.Now,
	}
	c.enabled.Store(true)
	return c
}

func (c *Cache) Get(_ context.Context, key string) (any, bool) {
	if !c.enabled.Load() {
		return nil, false
	}

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !e.live(c.nowFunc()) {
		// Lazy expiry: drop the dead entry so the map does not grow without
		// bound, but re-check under the write lock in case it was replaced.
		c.mu.Lock()
		if cur, still := c.entries[key]; still && !cur.live(c.nowFunc()) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (c *Cache) Set(_ context.Context, key string, value any, ttl time.Duration) {
	if !c.enabled.Load() || ttl <= 0 {
		return
	}

	c.mu.Lock()
	c.entries[key] = entry{value: value, storedAt: c.nowFunc(), ttl: ttl}
	c.mu.Unlock()
}

func (c *Cache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *Cache) DeletePrefix(_ context.Context, prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Keys returns every live key; dead entries are skipped but left for lazy
// removal.
func (c *Cache) Keys(_ context.Context) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.nowFunc()
	keys := make([]string, 0, len(c.entries))
	for key, e := range c.entries {
		if e.live(now) {
			keys = append(keys, key)
		}
	}
	return keys
}

func (c *Cache) Flush(_ context.Context) {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

func (c *Cache) SetEnabled(enabled bool) {
	c.enabled.Store(enabled)
	if !enabled {
		c.Flush(context.Background())
	}
}

func (c *Cache) IsEnabled() bool {
	return c.enabled.Load()
}
