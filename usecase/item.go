package usecase

import (
	"context"

	domainCache "github.com/alien2112/menu-rwad-sub005/domains/cache"
	domainItem "github.com/alien2112/menu-rwad-sub005/domains/item"
	"github.com/alien2112/menu-rwad-sub005/validations"
)

type itemService struct {
	repo  domainItem.IItemRepository
	cache domainCache.Store
	inv   *InvalidationRegistry
}

func NewItemService(repo domainItem.IItemRepository, cache domainCache.Store, inv *InvalidationRegistry) domainItem.IItemUsecase {
	return &itemService{repo: repo, cache: cache, inv: inv}
}

func (s *itemService) List(ctx context.Context, admin bool) ([]domainItem.Item, error) {
	if admin {
		return s.repo.List(ctx)
	}

	out, _, err := domainCache.Read(ctx, s.cache, domainCache.KeyItemsAll, domainCache.DefaultTTL(), s.repo.List)
	return out, err
}

func (s *itemService) ListByCategory(ctx context.Context, categoryID string, admin bool) ([]domainItem.Item, error) {
	if admin {
		return s.repo.ListByCategory(ctx, categoryID)
	}

	out, _, err := domainCache.Read(ctx, s.cache, domainCache.KeyItemsByCategory(categoryID), domainCache.DefaultTTL(),
		func(ctx context.Context) ([]domainItem.Item, error) {
			return s.repo.ListByCategory(ctx, categoryID)
		})
	return out, err
}

func (s *itemService) Get(ctx context.Context, id string, admin bool) (*domainItem.Item, error) {
	if admin {
		return s.repo.GetByID(ctx, id)
	}

	out, _, err := domainCache.Read(ctx, s.cache, domainCache.KeyItem(id), domainCache.DefaultTTL(),
		func(ctx context.Context) (*domainItem.Item, error) {
			return s.repo.GetByID(ctx, id)
		})
	return out, err
}

func (s *itemService) Create(ctx context.Context, req domainItem.CreateRequest) (*domainItem.Item, error) {
	if err := validations.ValidateCreateItem(ctx, req); err != nil {
		return nil, err
	}

	i := &domainItem.Item{
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		NameAr:        req.NameAr,
		Description:   req.Description,
		Price:         req.Price,
		ImageID:       req.ImageID,
		IngredientIDs: req.IngredientIDs,
		Calories:      req.Calories,
		SortOrder:     req.SortOrder,
		Available:     boolOrDefault(req.Available, true),
	}
	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}

	s.inv.Items(ctx)
	return i, nil
}

func (s *itemService) Update(ctx context.Context, id string, req domainItem.UpdateRequest) (*domainItem.Item, error) {
	i, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&i.CategoryID, req.CategoryID)
	applyString(&i.Name, req.Name)
	applyString(&i.NameAr, req.NameAr)
	applyString(&i.Description, req.Description)
	applyFloat(&i.Price, req.Price)
	applyString(&i.ImageID, req.ImageID)
	applyStrings(&i.IngredientIDs, req.IngredientIDs)
	applyInt(&i.Calories, req.Calories)
	applyInt(&i.SortOrder, req.SortOrder)
	applyBool(&i.Available, req.Available)

	if err := s.repo.Update(ctx, i); err != nil {
		return nil, err
	}

	s.inv.Items(ctx)
	return i, nil
}

func (s *itemService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.inv.Items(ctx)
	return nil
}
