package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	domainCache "github.com/alien2112/menu-rwad-sub005/domains/cache"
	domainImage "github.com/alien2112/menu-rwad-sub005/domains/image"
	domainSettings "github.com/alien2112/menu-rwad-sub005/domains/settings"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

const settingKeyCache = "cache"

type cacheService struct {
	store    domainCache.Store
	backend  string
	settings domainSettings.ISettingsRepository
	inv      *InvalidationRegistry
}

func NewCacheService(store domainCache.Store, backend string, settings domainSettings.ISettingsRepository, inv *InvalidationRegistry) domainCache.ICacheUsecase {
	return &cacheService{store: store, backend: backend, settings: settings, inv: inv}
}

func (s *cacheService) GetStats(ctx context.Context) (domainCache.CacheStats, error) {
	keys := s.store.Keys(ctx)

	var imageBytes int64
	for _, key := range keys {
		if !strings.HasPrefix(key, domainCache.PrefixImages) {
			continue
		}
		if v, ok := s.store.Get(ctx, key); ok {
			imageBytes += renderedSize(v)
		}
	}

	enabled := true
	if t, ok := s.store.(domainCache.Toggleable); ok {
		enabled = t.IsEnabled()
	}

	return domainCache.CacheStats{
		Backend:    s.backend,
		Enabled:    enabled,
		Entries:    len(keys),
		ImageBytes: imageBytes,
		HumanSize:  humanize.Bytes(uint64(imageBytes)),
	}, nil
}

func renderedSize(v any) int64 {
	switch stored := v.(type) {
	case *domainImage.Rendered:
		return int64(len(stored.Data))
	case domainImage.Rendered:
		return int64(len(stored.Data))
	case json.RawMessage:
		return int64(len(stored))
	}
	return 0
}

func (s *cacheService) ClearAll(ctx context.Context) error {
	s.inv.All(ctx)
	return nil
}

func (s *cacheService) GetSettings(ctx context.Context) (domainCache.CacheSettings, error) {
	settings := domainCache.CacheSettings{
		Enabled:           true,
		DefaultTTLSeconds: int(domainCache.DefaultTTL().Seconds()),
		ImageTTLSeconds:   int(domainCache.ImageTTL().Seconds()),
	}

	raw, found, err := s.settings.Get(ctx, settingKeyCache)
	if err != nil {
		return settings, err
	}
	if found {
		_ = json.Unmarshal([]byte(raw), &settings)
	}
	return settings, nil
}

func (s *cacheService) SaveSettings(ctx context.Context, settings domainCache.CacheSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	if err := s.settings.Set(ctx, settingKeyCache, string(raw)); err != nil {
		return err
	}

	if t, ok := s.store.(domainCache.Toggleable); ok {
		t.SetEnabled(settings.Enabled)
		if !settings.Enabled {
			// a disabled cache must not keep serving old entries once
			// re-enabled
			s.store.Flush(ctx)
		}
	}

	// new TTLs apply to entries stored from now on; existing entries keep
	// the lifetime they were stored with
	domainCache.SetTTLs(
		time.Duration(settings.DefaultTTLSeconds)*time.Second,
		time.Duration(settings.ImageTTLSeconds)*time.Second,
	)

	logrus.WithFields(logrus.Fields{
		"enabled":     settings.Enabled,
		"default_ttl": settings.DefaultTTLSeconds,
		"image_ttl":   settings.ImageTTLSeconds,
	}).Info("[CACHE] settings saved")
	return nil
}
