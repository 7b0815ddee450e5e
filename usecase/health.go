package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/alien2112/menu-rwad-sub005/core/config"
	domainCache "github.com/alien2112/menu-rwad-sub005/domains/cache"
	"github.com/alien2112/menu-rwad-sub005/domains/health"
	"gorm.io/gorm"
)

type healthService struct {
	db    *gorm.DB
	cache domainCache.Store
}

func NewHealthService(db *gorm.DB, cache domainCache.Store) health.IHealthUsecase {
	return &healthService{db: db, cache: cache}
}

func (s *healthService) Check(ctx context.Context) health.Report {
	report := health.Report{
		Status:   health.StatusOk,
		Version:  config.Global.App.Version,
		Database: health.StatusOk,
		Cache:    health.StatusOk,
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if sqlDB, err := s.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		report.Database = health.StatusError
		report.Status = health.StatusError
		report.Detail = "database unreachable"
	}

	report.Cache = s.cacheStatus(ctx)

	return report
}

// cacheStatus round-trips a probe key; a broken backend degrades to miss,
// which is harmless but worth surfacing. A store an admin turned off always
// misses by design and is not a failure.
func (s *healthService) cacheStatus(ctx context.Context) health.Status {
	if t, ok := s.cache.(domainCache.Toggleable); ok && !t.IsEnabled() {
		return health.StatusOk
	}

	probe := fmt.Sprintf("health:probe:%d", time.Now().UnixNano())
	s.cache.Set(ctx, probe, "ok", domainCache.TTLOneMinute)
	defer s.cache.Delete(ctx, probe)

	if _, ok := s.cache.Get(ctx, probe); !ok {
		return health.StatusError
	}
	return health.StatusOk
}
