package usecase

import (
	"context"

	domainBackground "github.com/alien2112/menu-rwad-sub005/domains/background"
	domainCache "github.com/alien2112/menu-rwad-sub005/domains/cache"
	"github.com/alien2112/menu-rwad-sub005/validations"
)

type backgroundService struct {
	repo  domainBackground.IBackgroundRepository
	cache domainCache.Store
	inv   *InvalidationRegistry
}

func NewBackgroundService(repo domainBackground.IBackgroundRepository, cache domainCache.Store, inv *InvalidationRegistry) domainBackground.IBackgroundUsecase {
	return &backgroundService{repo: repo, cache: cache, inv: inv}
}

func (s *backgroundService) List(ctx context.Context, admin bool) ([]domainBackground.Background, error) {
	if admin {
		return s.repo.List(ctx)
	}

	out, _, err := domainCache.Read(ctx, s.cache, domainCache.KeyPageBackgroundsAll, domainCache.TTLOneHour, s.repo.List)
	return out, err
}

func (s *backgroundService) Upsert(ctx context.Context, req domainBackground.UpsertRequest) (*domainBackground.Background, error) {
	if err := validations.ValidateUpsertBackground(ctx, req); err != nil {
		return nil, err
	}

	b := &domainBackground.Background{
		Page:    req.Page,
		ImageID: req.ImageID,
		Overlay: req.Overlay,
		Active:  boolOrDefault(req.Active, true),
	}
	if err := s.repo.Upsert(ctx, b); err != nil {
		return nil, err
	}

	s.inv.Backgrounds(ctx)
	return b, nil
}

func (s *backgroundService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.inv.Backgrounds(ctx)
	return nil
}
