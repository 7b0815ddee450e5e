package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/alien2112/menu-rwad-sub005/domains/health"
	"github.com/alien2112/menu-rwad-sub005/infrastructure/memcache"
	"github.com/stretchr/testify/assert"
)

// missStore always misses and is not toggleable, so a probe miss means the
// backend is broken.
type missStore struct{}

func (missStore) Get(_ context.Context, _ string) (any, bool)             { return nil, false }
func (missStore) Set(_ context.Context, _ string, _ any, _ time.Duration) {}
func (missStore) Delete(_ context.Context, _ string)                      {}
func (missStore) DeletePrefix(_ context.Context, _ string) int            { return 0 }
func (missStore) Keys(_ context.Context) []string                         { return nil }
func (missStore) Flush(_ context.Context)                                 {}

func TestCacheProbeEnabledStore(t *testing.T) {
	s := &healthService{cache: memcache.New()}
	assert.Equal(t, health.StatusOk, s.cacheStatus(context.Background()))
}

func TestCacheProbeDisabledStoreIsNotAFailure(t *testing.T) {
	store := memcache.New()
	store.SetEnabled(false)

	s := &healthService{cache: store}
	assert.Equal(t, health.StatusOk, s.cacheStatus(context.Background()))
}

func TestCacheProbeBrokenBackend(t *testing.T) {
	s := &healthService{cache: missStore{}}
	assert.Equal(t, health.StatusError, s.cacheStatus(context.Background()))
}
