package clientcache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	A int `json:"a"`
}

func TestFetcherServesFromStorageWithinTTL(t *testing.T) {
	store := NewMemoryStore()
	calls := 0
	fetch := func(context.Context) (payload, error) {
		calls++
		return payload{A: 1}, nil
	}

	first := NewFetcher(store, "k", 10*time.Second, fetch)
	v, cached, err := first.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, payload{A: 1}, v)
	require.Equal(t, 1, calls)

	// a fresh consumer within the TTL resolves from storage alone
	second := NewFetcher(store, "k", 10*time.Second, fetch)
	v, cached, err = second.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, payload{A: 1}, v)
	assert.Equal(t, 1, calls, "fetcher must not run on a live entry")
}

func TestFetcherExpiredEntryRefetches(t *testing.T) {
	store := NewMemoryStore()
	calls := 0
	f := NewFetcher(store, "k", 50*time.Millisecond, func(context.Context) (payload, error) {
		calls++
		return payload{A: calls}, nil
	})

	_, _, err := f.Get(context.Background())
	require.NoError(t, err)

	now := time.Now()
	f.nowFunc = func() time.Time { return now.Add(time.Second) }

	v, cached, err := f.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 2, calls)
	assert.Equal(t, payload{A: 2}, v)
}

func TestFetcherCorruptEntryRecovers(t *testing.T) {
	store := NewMemoryStore()
	store.Write("k", []byte("{not json"))

	calls := 0
	f := NewFetcher(store, "k", 10*time.Second, func(context.Context) (payload, error) {
		calls++
		return payload{A: 7}, nil
	})

	v, cached, err := f.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 1, calls)
	assert.Equal(t, payload{A: 7}, v)

	// the bad entry was overwritten with a valid one
	data, ok := store.Read("k")
	require.True(t, ok)
	var entry Entry
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.False(t, entry.StoredAt.IsZero())
}

func TestFetcherErrorKeepsStaleEntry(t *testing.T) {
	store := NewMemoryStore()
	healthy := NewFetcher(store, "k", time.Nanosecond, func(context.Context) (payload, error) {
		return payload{A: 1}, nil
	})
	_, err := healthy.Refetch(context.Background())
	require.NoError(t, err)

	broken := NewFetcher(store, "k", time.Nanosecond, func(context.Context) (payload, error) {
		return payload{}, errors.New("network down")
	})

	_, _, err = broken.Get(context.Background())
	assert.Error(t, err)

	_, ok := store.Read("k")
	assert.True(t, ok, "a failed fetch must not clear the stored entry")
}

func TestFetcherRefetchBypassesLiveEntry(t *testing.T) {
	store := NewMemoryStore()
	calls := 0
	f := NewFetcher(store, "k", 10*time.Second, func(context.Context) (payload, error) {
		calls++
		return payload{A: calls}, nil
	})

	_, _, err := f.Get(context.Background())
	require.NoError(t, err)

	v, err := f.Refetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, payload{A: 2}, v)
}

func TestFetcherInvalidateForcesRefetch(t *testing.T) {
	store := NewMemoryStore()
	calls := 0
	f := NewFetcher(store, "k", 10*time.Second, func(context.Context) (payload, error) {
		calls++
		return payload{A: calls}, nil
	})

	_, _, err := f.Get(context.Background())
	require.NoError(t, err)

	f.Invalidate()

	_, cached, err := f.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 2, calls)

	// a successful refetch re-arms the cache
	_, cached, err = f.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, 2, calls)
}

func TestFetcherSlowFetchDoesNotClobberNewer(t *testing.T) {
	store := NewMemoryStore()

	slowStarted := make(chan struct{})
	slowRelease := make(chan struct{})
	results := make(chan payload, 2)
	first := true

	f := NewFetcher(store, "k", 10*time.Second, func(context.Context) (payload, error) {
		if first {
			first = false
			close(slowStarted)
			<-slowRelease
			return payload{A: 1}, nil
		}
		return payload{A: 2}, nil
	})

	go func() {
		v, _ := f.Refetch(context.Background())
		results <- v
	}()
	<-slowStarted

	// a newer fetch starts and completes while the first is still in flight
	_, err := f.Refetch(context.Background())
	require.NoError(t, err)

	close(slowRelease)
	<-results

	data, ok := store.Read("k")
	require.True(t, ok)
	var entry Entry
	require.NoError(t, json.Unmarshal(data, &entry))
	var v payload
	require.NoError(t, json.Unmarshal(entry.Value, &v))
	assert.Equal(t, payload{A: 2}, v, "the older result must be discarded")
}
