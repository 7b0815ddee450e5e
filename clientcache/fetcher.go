package clientcache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Entry is the canonical stored shape. StoredAt drives the liveness check;
// Value stays raw until a typed consumer decodes it.
type Entry struct {
	StoredAt time.Time       `json:"stored_at"`
	Value    json.RawMessage `json:"value"`
}

// Fetcher is a read-through TTL cache over one key. Get serves the stored
// value while it is live and otherwise calls fetch; a fetch failure
// surfaces the error and leaves any stored value in place, stale data being
// preferable to an empty view on a transient outage.
type Fetcher[T any] struct {
	store Store
	key   string
	ttl   time.Duration
	fetch func(ctx context.Context) (T, error)

	mu          sync.Mutex
	nextSeq     uint64
	appliedSeq  uint64
	invalidated bool

	nowFunc func() time.Time
}

func NewFetcher[T any](store Store, key string, ttl time.Duration, fetch func(ctx context.Context) (T, error)) *Fetcher[T] {
	return &Fetcher[T]{
		store:   store,
		key:     key,
		ttl:     ttl,
		fetch:   fetch,
		nowFunc: time.Now,
	}
}

// Get returns the value and whether it was served from storage. A corrupt
// stored entry is removed and treated as a miss, so schema changes between
// versions degrade to one refetch instead of a permanent error.
func (f *Fetcher[T]) Get(ctx context.Context) (T, bool, error) {
	if v, ok := f.cached(); ok {
		return v, true, nil
	}

	v, err := f.refetch(ctx)
	return v, false, err
}

// Refetch bypasses storage unconditionally and re-persists on success.
func (f *Fetcher[T]) Refetch(ctx context.Context) (T, error) {
	return f.refetch(ctx)
}

// Invalidate marks the stored value stale; the next Get refetches. The
// watcher calls this when another process removes the key.
func (f *Fetcher[T]) Invalidate() {
	f.mu.Lock()
	f.invalidated = true
	f.mu.Unlock()
}

// StartPolling refreshes the value in the background on the given interval
// until ctx is cancelled. Poll failures are logged and the stored value
// stays; a poll result that lost the race to a newer fetch is discarded.
func (f *Fetcher[T]) StartPolling(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := f.refetch(ctx); err != nil {
					logrus.WithError(err).WithField("key", f.key).Debug("[CLIENTCACHE] poll failed")
				}
			}
		}
	}()
}

func (f *Fetcher[T]) cached() (T, bool) {
	var zero T

	f.mu.Lock()
	invalidated := f.invalidated
	f.mu.Unlock()
	if invalidated {
		return zero, false
	}

	data, ok := f.store.Read(f.key)
	if !ok {
		return zero, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		f.store.Remove(f.key)
		return zero, false
	}

	if f.nowFunc().Sub(entry.StoredAt) >= f.ttl {
		return zero, false
	}

	var v T
	if err := json.Unmarshal(entry.Value, &v); err != nil {
		f.store.Remove(f.key)
		return zero, false
	}
	return v, true
}

func (f *Fetcher[T]) refetch(ctx context.Context) (T, error) {
	f.mu.Lock()
	f.nextSeq++
	seq := f.nextSeq
	f.mu.Unlock()

	v, err := f.fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	// a slower fetch that started earlier must not clobber a newer result
	if seq < f.appliedSeq {
		return v, nil
	}
	f.appliedSeq = seq
	f.invalidated = false

	raw, err := json.Marshal(v)
	if err != nil {
		return v, nil
	}
	data, err := json.Marshal(Entry{StoredAt: f.nowFunc(), Value: raw})
	if err != nil {
		return v, nil
	}
	f.store.Write(f.key, data)

	return v, nil
}
