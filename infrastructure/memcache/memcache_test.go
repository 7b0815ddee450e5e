package memcache

import (
	"context"
	"testing"
	"time"

	"github.com/alien2112/menu-rwad-sub005/domains/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// advance gives a cache a controllable clock and returns the shift function.
func advance(c *Cache) func(d time.Duration) {
	base := time.Now()
	offset := time.Duration(0)
	c.nowFunc = func() time.Time { return base.Add(offset) }
	return func(d time.Duration) { offset += d }
}

func TestGet_LivenessInvariant(t *testing.T) {
	ctx := context.Background()
	c := New()
	shift := advance(c)

	c.Set(ctx, "offers:all", []string{"summer"}, time.Second)

	v, ok := c.Get(ctx, "offers:all")
	require.True(t, ok, "entry must be live immediately after Set")
	assert.Equal(t, []string{"summer"}, v)

	// One tick short of the TTL: still live.
	shift(time.Second - time.Millisecond)
	_, ok = c.Get(ctx, "offers:all")
	assert.True(t, ok)

	// At the TTL boundary now - storedAt == ttl, which is no longer live.
	shift(time.Millisecond)
	_, ok = c.Get(ctx, "offers:all")
	assert.False(t, ok, "expired entry must be treated as absent")

	// The expired entry was lazily removed.
	assert.Empty(t, c.Keys(ctx))
}

func TestSet_OverwritesUnconditionally(t *testing.T) {
	ctx := context.Background()
	c := New()

	c.Set(ctx, "k", 1, time.Minute)
	c.Set(ctx, "k", 2, time.Minute)

	v, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestSet_ReviveAfterExpiry(t *testing.T) {
	ctx := context.Background()
	c := New()
	shift := advance(c)

	c.Set(ctx, "k", "old", time.Second)
	shift(2 * time.Second)
	_, ok := c.Get(ctx, "k")
	require.False(t, ok)

	c.Set(ctx, "k", "new", time.Second)
	v, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestDelete_Idempotent(t *testing.T) {
	ctx := context.Background()
	c := New()

	c.Set(ctx, "k", 1, time.Minute)
	c.Delete(ctx, "k")
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)

	// Deleting again, and deleting a key that never existed, must not panic
	// and must leave the same post-state.
	assert.NotPanics(t, func() {
		c.Delete(ctx, "k")
		c.Delete(ctx, "never-existed")
	})
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestDeletePrefix(t *testing.T) {
	ctx := context.Background()
	c := New()

	c.Set(ctx, "categories:all", 1, time.Minute)
	c.Set(ctx, "categories:c1", 2, time.Minute)
	c.Set(ctx, "offers:all", 3, time.Minute)

	removed := c.DeletePrefix(ctx, "categories:")
	assert.Equal(t, 2, removed)

	_, ok := c.Get(ctx, "categories:all")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "categories:c1")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "offers:all")
	assert.True(t, ok, "unrelated family must survive")
}

func TestFlush(t *testing.T) {
	ctx := context.Background()
	c := New()

	c.Set(ctx, "a", 1, time.Minute)
	c.Set(ctx, "b", 2, time.Minute)
	c.Flush(ctx)

	assert.Empty(t, c.Keys(ctx))
}

func TestDisabledStoreAlwaysMisses(t *testing.T) {
	ctx := context.Background()
	c := New()

	c.Set(ctx, "k", 1, time.Minute)
	c.SetEnabled(false)

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)

	c.Set(ctx, "k2", 2, time.Minute)
	c.SetEnabled(true)
	_, ok = c.Get(ctx, "k2")
	assert.False(t, ok, "writes while disabled must be dropped")
}

func TestReadThrough(t *testing.T) {
	ctx := context.Background()
	c := New()

	queries := 0
	query := func(context.Context) ([]string, error) {
		queries++
		return []string{"tea"}, nil
	}

	v, hit, err := cache.Read(ctx, c, cache.KeyCategoriesAll, time.Minute, query)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, []string{"tea"}, v)
	assert.Equal(t, 1, queries)

	v, hit, err = cache.Read(ctx, c, cache.KeyCategoriesAll, time.Minute, query)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"tea"}, v)
	assert.Equal(t, 1, queries, "hit must not touch the source of truth")
}

func TestReadThrough_ErrorNotCached(t *testing.T) {
	ctx := context.Background()
	c := New()

	queries := 0
	failing := func(context.Context) (string, error) {
		queries++
		return "", assert.AnError
	}

	_, _, err := cache.Read(ctx, c, "k", time.Minute, failing)
	require.Error(t, err)
	_, _, err = cache.Read(ctx, c, "k", time.Minute, failing)
	require.Error(t, err)
	assert.Equal(t, 2, queries, "failures must never be cached")

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}
