package clientcache

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherFiresOncePerRemoval(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	watcher, err := NewWatcher(store)
	require.NoError(t, err)
	defer watcher.Close()

	store.Write("offers:all", []byte(`{"stored_at":"2026-01-01T00:00:00Z","value":[]}`))

	var fired atomic.Int32
	watcher.Watch("offers:all", func() { fired.Add(1) })

	store.Remove("offers:all")

	assert.Eventually(t, func() bool {
		return fired.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)

	// duplicate removal events must not re-fire
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestWatcherReArmsAfterRewrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	watcher, err := NewWatcher(store)
	require.NoError(t, err)
	defer watcher.Close()

	var fired atomic.Int32
	watcher.Watch("k", func() { fired.Add(1) })

	store.Write("k", []byte(`{}`))
	store.Remove("k")

	assert.Eventually(t, func() bool { return fired.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	// writing the key again re-arms the removal trigger
	store.Write("k", []byte(`{}`))
	assert.Eventually(t, func() bool {
		store.Remove("k")
		return fired.Load() == 2
	}, 2*time.Second, 50*time.Millisecond)
}

func TestWatcherIgnoresUnwatchedKeys(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	watcher, err := NewWatcher(store)
	require.NoError(t, err)
	defer watcher.Close()

	var fired atomic.Int32
	watcher.Watch("watched", func() { fired.Add(1) })

	store.Write("other", []byte(`{}`))
	store.Remove("other")

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}
