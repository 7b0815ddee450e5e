package usecase

import (
	"context"

	domainCache "github.com/alien2112/menu-rwad-sub005/domains/cache"
	domainDrink "github.com/alien2112/menu-rwad-sub005/domains/drink"
	"github.com/alien2112/menu-rwad-sub005/validations"
)

type drinkService struct {
	repo  domainDrink.IDrinkRepository
	cache domainCache.Store
	inv   *InvalidationRegistry
}

func NewDrinkService(repo domainDrink.IDrinkRepository, cache domainCache.Store, inv *InvalidationRegistry) domainDrink.IDrinkUsecase {
	return &drinkService{repo: repo, cache: cache, inv: inv}
}

// ListActive is the homepage strip; it is the hot path and the only cached
// drink read.
func (s *drinkService) ListActive(ctx context.Context, admin bool) ([]domainDrink.Drink, error) {
	if admin {
		return s.repo.ListActive(ctx)
	}

	out, _, err := domainCache.Read(ctx, s.cache, domainCache.KeySignatureDrinksLive, domainCache.DefaultTTL(), s.repo.ListActive)
	return out, err
}

func (s *drinkService) List(ctx context.Context) ([]domainDrink.Drink, error) {
	return s.repo.List(ctx)
}

func (s *drinkService) Create(ctx context.Context, req domainDrink.CreateRequest) (*domainDrink.Drink, error) {
	if err := validations.ValidateCreateDrink(ctx, req); err != nil {
		return nil, err
	}

	d := &domainDrink.Drink{
		Name:        req.Name,
		NameAr:      req.NameAr,
		Description: req.Description,
		Price:       req.Price,
		ImageID:     req.ImageID,
		SortOrder:   req.SortOrder,
		Active:      boolOrDefault(req.Active, true),
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	s.inv.SignatureDrinks(ctx)
	return d, nil
}

func (s *drinkService) Update(ctx context.Context, id string, req domainDrink.UpdateRequest) (*domainDrink.Drink, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&d.Name, req.Name)
	applyString(&d.NameAr, req.NameAr)
	applyString(&d.Description, req.Description)
	applyFloat(&d.Price, req.Price)
	applyString(&d.ImageID, req.ImageID)
	applyInt(&d.SortOrder, req.SortOrder)
	applyBool(&d.Active, req.Active)

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}

	s.inv.SignatureDrinks(ctx)
	return d, nil
}

func (s *drinkService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.inv.SignatureDrinks(ctx)
	return nil
}
