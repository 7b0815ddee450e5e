package valkey

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/alien2112/menu-rwad-sub005/domains/cache"
	"github.com/sirupsen/logrus"
)

// CacheStore implements cache.Store on top of Valkey so multiple server
// instances can share one cache. Values are stored as JSON; Get hands back
// json.RawMessage, which cache.Read decodes into the caller's type.
//
// The cache is advisory: any Valkey error is logged and reported as a miss
// (for reads) or dropped (for writes), never surfaced to the request path.
type CacheStore struct {
	client  *Client
	prefix  string
	enabled atomic.Bool
}

var _ cache.Store = (*CacheStore)(nil)
var _ cache.Toggleable = (*CacheStore)(nil)

// NewCacheStore creates a store namespaced under <keyprefix>cache:.
func NewCacheStore(client *Client) *CacheStore {
	s := &CacheStore{
		client: client,
		prefix: client.Key("cache") + ":",
	}
	s.enabled.Store(true)
	return s
}

func (s *CacheStore) fullKey(key string) string {
	return s.prefix + key
}

func (s *CacheStore) Get(ctx context.Context, key string) (any, bool) {
	if !s.enabled.Load() {
		return nil, false
	}

	inner := s.client.Inner()
	data, err := inner.Do(ctx, inner.B().Get().Key(s.fullKey(key)).Build()).AsBytes()
	if err != nil {
		if !IsNil(err) {
			logrus.Warnf("[CACHE] Valkey GET %s failed: %v", key, err)
		}
		return nil, false
	}
	return json.RawMessage(data), true
}

func (s *CacheStore) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if !s.enabled.Load() || ttl <= 0 {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		logrus.Warnf("[CACHE] Failed to marshal value for %s: %v", key, err)
		return
	}

	inner := s.client.Inner()
	cmd := inner.B().Set().Key(s.fullKey(key)).Value(string(data)).ExSeconds(int64(ttl.Seconds())).Build()
	if err := inner.Do(ctx, cmd).Error(); err != nil {
		logrus.Warnf("[CACHE] Valkey SET %s failed: %v", key, err)
	}
}

func (s *CacheStore) Delete(ctx context.Context, key string) {
	inner := s.client.Inner()
	if err := inner.Do(ctx, inner.B().Del().Key(s.fullKey(key)).Build()).Error(); err != nil {
		logrus.Warnf("[CACHE] Valkey DEL %s failed: %v", key, err)
	}
}

func (s *CacheStore) DeletePrefix(ctx context.Context, prefix string) int {
	keys := s.scan(ctx, s.fullKey(prefix)+"*")
	if len(keys) == 0 {
		return 0
	}

	inner := s.client.Inner()
	if err := inner.Do(ctx, inner.B().Del().Key(keys...).Build()).Error(); err != nil {
		logrus.Warnf("[CACHE] Valkey DEL prefix %s failed: %v", prefix, err)
		return 0
	}
	return len(keys)
}

func (s *CacheStore) Keys(ctx context.Context) []string {
	full := s.scan(ctx, s.prefix+"*")
	keys := make([]string, 0, len(full))
	for _, k := range full {
		keys = append(keys, k[len(s.prefix):])
	}
	return keys
}

func (s *CacheStore) Flush(ctx context.Context) {
	s.DeletePrefix(ctx, "")
}

func (s *CacheStore) SetEnabled(enabled bool) {
	s.enabled.Store(enabled)
	if !enabled {
		s.Flush(context.Background())
	}
}

func (s *CacheStore) IsEnabled() bool {
	return s.enabled.Load()
}

// scan walks the keyspace with SCAN to avoid blocking the server the way
// KEYS would.
func (s *CacheStore) scan(ctx context.Context, match string) []string {
	inner := s.client.Inner()

	var keys []string
	var cursor uint64
	for {
		resp, err := inner.Do(ctx, inner.B().Scan().Cursor(cursor).Match(match).Count(200).Build()).AsScanEntry()
		if err != nil {
			logrus.Warnf("[CACHE] Valkey SCAN %s failed: %v", match, err)
			return keys
		}
		keys = append(keys, resp.Elements...)
		cursor = resp.Cursor
		if cursor == 0 {
			break
		}
	}
	return keys
}
