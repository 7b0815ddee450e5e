package usecase

import (
	"context"

	domainCache "github.com/alien2112/menu-rwad-sub005/domains/cache"
	domainOffer "github.com/alien2112/menu-rwad-sub005/domains/offer"
	"github.com/alien2112/menu-rwad-sub005/validations"
)

type offerService struct {
	repo  domainOffer.IOfferRepository
	cache domainCache.Store
	inv   *InvalidationRegistry
}

func NewOfferService(repo domainOffer.IOfferRepository, cache domainCache.Store, inv *InvalidationRegistry) domainOffer.IOfferUsecase {
	return &offerService{repo: repo, cache: cache, inv: inv}
}

func (s *offerService) List(ctx context.Context, admin bool) ([]domainOffer.Offer, error) {
	if admin {
		return s.repo.List(ctx)
	}

	out, _, err := domainCache.Read(ctx, s.cache, domainCache.KeyOffersAll, domainCache.DefaultTTL(), s.repo.List)
	return out, err
}

func (s *offerService) Get(ctx context.Context, id string, admin bool) (*domainOffer.Offer, error) {
	if admin {
		return s.repo.GetByID(ctx, id)
	}

	out, _, err := domainCache.Read(ctx, s.cache, domainCache.KeyOffer(id), domainCache.DefaultTTL(),
		func(ctx context.Context) (*domainOffer.Offer, error) {
			return s.repo.GetByID(ctx, id)
		})
	return out, err
}

func (s *offerService) Create(ctx context.Context, req domainOffer.CreateRequest) (*domainOffer.Offer, error) {
	if err := validations.ValidateCreateOffer(ctx, req); err != nil {
		return nil, err
	}

	o := &domainOffer.Offer{
		Title:           req.Title,
		TitleAr:         req.TitleAr,
		Description:     req.Description,
		ImageID:         req.ImageID,
		DiscountPercent: req.DiscountPercent,
		ItemIDs:         req.ItemIDs,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		Active:          boolOrDefault(req.Active, true),
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	s.inv.Offers(ctx)
	return o, nil
}

func (s *offerService) Update(ctx context.Context, id string, req domainOffer.UpdateRequest) (*domainOffer.Offer, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&o.Title, req.Title)
	applyString(&o.TitleAr, req.TitleAr)
	applyString(&o.Description, req.Description)
	applyString(&o.ImageID, req.ImageID)
	applyFloat(&o.DiscountPercent, req.DiscountPercent)
	applyStrings(&o.ItemIDs, req.ItemIDs)
	if req.StartsAt != nil {
		o.StartsAt = req.StartsAt
	}
	if req.EndsAt != nil {
		o.EndsAt = req.EndsAt
	}
	applyBool(&o.Active, req.Active)

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	s.inv.Offers(ctx)
	return o, nil
}

func (s *offerService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.inv.Offers(ctx)
	return nil
}
