package usecase

import (
	"context"

	domainCache "github.com/alien2112/menu-rwad-sub005/domains/cache"
	domainCategory "github.com/alien2112/menu-rwad-sub005/domains/category"
	"github.com/alien2112/menu-rwad-sub005/validations"
)

type categoryService struct {
	repo  domainCategory.ICategoryRepository
	cache domainCache.Store
	inv   *InvalidationRegistry
}

func NewCategoryService(repo domainCategory.ICategoryRepository, cache domainCache.Store, inv *InvalidationRegistry) domainCategory.ICategoryUsecase {
	return &categoryService{repo: repo, cache: cache, inv: inv}
}

func (s *categoryService) List(ctx context.Context, admin bool) ([]domainCategory.Category, error) {
	if admin {
		return s.repo.List(ctx)
	}

	out, _, err := domainCache.Read(ctx, s.cache, domainCache.KeyCategoriesAll, domainCache.DefaultTTL(), s.repo.List)
	return out, err
}

func (s *categoryService) Get(ctx context.Context, id string, admin bool) (*domainCategory.Category, error) {
	if admin {
		return s.repo.GetByID(ctx, id)
	}

	out, _, err := domainCache.Read(ctx, s.cache, domainCache.KeyCategory(id), domainCache.DefaultTTL(),
		func(ctx context.Context) (*domainCategory.Category, error) {
			return s.repo.GetByID(ctx, id)
		})
	return out, err
}

func (s *categoryService) Create(ctx context.Context, req domainCategory.CreateRequest) (*domainCategory.Category, error) {
	if err := validations.ValidateCreateCategory(ctx, req); err != nil {
		return nil, err
	}

	c := &domainCategory.Category{
		Name:        req.Name,
		NameAr:      req.NameAr,
		Description: req.Description,
		ImageID:     req.ImageID,
		Color:       req.Color,
		SortOrder:   req.SortOrder,
		Active:      boolOrDefault(req.Active, true),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.inv.Categories(ctx)
	return c, nil
}

func (s *categoryService) Update(ctx context.Context, id string, req domainCategory.UpdateRequest) (*domainCategory.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&c.Name, req.Name)
	applyString(&c.NameAr, req.NameAr)
	applyString(&c.Description, req.Description)
	applyString(&c.ImageID, req.ImageID)
	applyString(&c.Color, req.Color)
	applyInt(&c.SortOrder, req.SortOrder)
	applyBool(&c.Active, req.Active)

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.inv.Categories(ctx)
	return c, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// items reference the category, so their caches go too
	s.inv.Items(ctx)
	return nil
}
