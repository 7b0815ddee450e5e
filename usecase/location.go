package usecase

import (
	"context"

	domainCache "github.com/alien2112/menu-rwad-sub005/domains/cache"
	domainLocation "github.com/alien2112/menu-rwad-sub005/domains/location"
	"github.com/alien2112/menu-rwad-sub005/validations"
)

type locationService struct {
	repo  domainLocation.ILocationRepository
	cache domainCache.Store
	inv   *InvalidationRegistry
}

func NewLocationService(repo domainLocation.ILocationRepository, cache domainCache.Store, inv *InvalidationRegistry) domainLocation.ILocationUsecase {
	return &locationService{repo: repo, cache: cache, inv: inv}
}

func (s *locationService) List(ctx context.Context, admin bool) ([]domainLocation.Location, error) {
	if admin {
		return s.repo.List(ctx)
	}

	out, _, err := domainCache.Read(ctx, s.cache, domainCache.KeyLocationsAll, domainCache.TTLOneHour, s.repo.List)
	return out, err
}

func (s *locationService) Create(ctx context.Context, req domainLocation.CreateRequest) (*domainLocation.Location, error) {
	if err := validations.ValidateCreateLocation(ctx, req); err != nil {
		return nil, err
	}

	l := &domainLocation.Location{
		Name:    req.Name,
		NameAr:  req.NameAr,
		Address: req.Address,
		Phone:   req.Phone,
		MapURL:  req.MapURL,
		Hours:   req.Hours,
		Active:  boolOrDefault(req.Active, true),
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	s.inv.Locations(ctx)
	return l, nil
}

func (s *locationService) Update(ctx context.Context, id string, req domainLocation.UpdateRequest) (*domainLocation.Location, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&l.Name, req.Name)
	applyString(&l.NameAr, req.NameAr)
	applyString(&l.Address, req.Address)
	applyString(&l.Phone, req.Phone)
	applyString(&l.MapURL, req.MapURL)
	applyString(&l.Hours, req.Hours)
	applyBool(&l.Active, req.Active)

	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}

	s.inv.Locations(ctx)
	return l, nil
}

func (s *locationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.inv.Locations(ctx)
	return nil
}
