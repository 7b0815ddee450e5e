package usecase

import (
	"context"

	domainCache "github.com/alien2112/menu-rwad-sub005/domains/cache"
	domainIngredient "github.com/alien2112/menu-rwad-sub005/domains/ingredient"
	"github.com/alien2112/menu-rwad-sub005/validations"
	"github.com/sirupsen/logrus"
)

type ingredientService struct {
	repo  domainIngredient.IIngredientRepository
	cache domainCache.Store
	inv   *InvalidationRegistry
}

func NewIngredientService(repo domainIngredient.IIngredientRepository, cache domainCache.Store, inv *InvalidationRegistry) domainIngredient.IIngredientUsecase {
	return &ingredientService{repo: repo, cache: cache, inv: inv}
}

func (s *ingredientService) List(ctx context.Context, admin bool) ([]domainIngredient.Ingredient, error) {
	if admin {
		return s.repo.List(ctx)
	}

	out, _, err := domainCache.Read(ctx, s.cache, domainCache.KeyIngredientsAll, domainCache.DefaultTTL(), s.repo.List)
	return out, err
}

func (s *ingredientService) Get(ctx context.Context, id string) (*domainIngredient.Ingredient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ingredientService) Create(ctx context.Context, req domainIngredient.CreateRequest) (*domainIngredient.Ingredient, error) {
	if err := validations.ValidateCreateIngredient(ctx, req); err != nil {
		return nil, err
	}

	i := &domainIngredient.Ingredient{
		Name:     req.Name,
		NameAr:   req.NameAr,
		Unit:     req.Unit,
		Stock:    req.Stock,
		LowStock: req.LowStock,
		Active:   boolOrDefault(req.Active, true),
	}
	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}

	s.inv.Ingredients(ctx)
	return i, nil
}

func (s *ingredientService) Update(ctx context.Context, id string, req domainIngredient.UpdateRequest) (*domainIngredient.Ingredient, error) {
	i, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&i.Name, req.Name)
	applyString(&i.NameAr, req.NameAr)
	applyString(&i.Unit, req.Unit)
	applyInt(&i.Stock, req.Stock)
	applyInt(&i.LowStock, req.LowStock)
	applyBool(&i.Active, req.Active)

	if err := s.repo.Update(ctx, i); err != nil {
		return nil, err
	}

	s.inv.Ingredients(ctx)
	return i, nil
}

func (s *ingredientService) AdjustStock(ctx context.Context, id string, delta int) error {
	if err := s.repo.AdjustStock(ctx, id, delta); err != nil {
		return err
	}

	if i, err := s.repo.GetByID(ctx, id); err == nil && i.Stock <= i.LowStock {
		logrus.WithFields(logrus.Fields{
			"ingredient": i.Name,
			"stock":      i.Stock,
		}).Warn("[INVENTORY] low stock")
	}

	s.inv.Ingredients(ctx)
	return nil
}

func (s *ingredientService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.inv.Ingredients(ctx)
	return nil
}
