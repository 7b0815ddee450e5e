package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Named TTL tiers. The stores themselves are duration-agnostic; these exist
// for call-site clarity only.
const (
	TTLOneMinute   = time.Minute
	TTLFiveMinutes = 5 * time.Minute
	TTLOneHour     = time.Hour
	TTLOneDay      = 24 * time.Hour
)

// Store is the contract every cache backend implements. The cache is
// advisory only: a Get miss (absent, expired, or backend failure) falls
// through to the source-of-truth query, never to wrong data.
//
// Get returns the live value or (nil, false). An entry is live iff
// now - storedAt < ttl; an expired entry is treated identically to absence.
// Set overwrites unconditionally, there are no merge semantics.
// Delete is idempotent; deleting an absent key is a no-op.
type Store interface {
	Get(ctx context.Context, key string) (any, bool)
	Set(ctx context.Context, key string, value any, ttl time.Duration)
	Delete(ctx context.Context, key string)
	DeletePrefix(ctx context.Context, prefix string) int
	Keys(ctx context.Context) []string
	Flush(ctx context.Context)
}

// Toggleable is implemented by stores that support a runtime on/off switch.
// A disabled store always misses and drops writes.
type Toggleable interface {
	SetEnabled(enabled bool)
	IsEnabled() bool
}

// Read is the read-through path shared by every cached endpoint. On a hit it
// returns (value, true, nil) without calling query. On a miss it calls query
// and, only on success, stores the result under key with the given ttl.
// Query errors propagate unchanged and are never cached.
//
// The in-process store hands back the stored value as-is; the Valkey store
// hands back json.RawMessage, which is decoded here. A raw entry that fails
// to decode is removed and treated as a miss.
func Read[T any](ctx context.Context, store Store, key string, ttl time.Duration, query func(context.Context) (T, error)) (T, bool, error) {
	if v, ok := store.Get(ctx, key); ok {
		switch stored := v.(type) {
		case T:
			return stored, true, nil
		case json.RawMessage:
			var out T
			if err := json.Unmarshal(stored, &out); err == nil {
				return out, true, nil
			}
			store.Delete(ctx, key)
		}
	}

	out, err := query(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}
	store.Set(ctx, key, out, ttl)
	return out, false, nil
}

// CacheStats is the payload of the cache stats admin endpoint.
type CacheStats struct {
	Backend    string `json:"backend"`
	Enabled    bool   `json:"enabled"`
	Entries    int    `json:"entries"`
	ImageBytes int64  `json:"image_bytes"`
	HumanSize  string `json:"human_size"`
}

// CacheSettings is persisted in the settings table and applied at runtime.
type CacheSettings struct {
	Enabled           bool `json:"enabled"`
	DefaultTTLSeconds int  `json:"default_ttl_seconds"`
	ImageTTLSeconds   int  `json:"image_ttl_seconds"`
}

type ICacheUsecase interface {
	GetStats(ctx context.Context) (CacheStats, error)
	ClearAll(ctx context.Context) error
	GetSettings(ctx context.Context) (CacheSettings, error)
	SaveSettings(ctx context.Context, settings CacheSettings) error
}
