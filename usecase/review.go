package usecase

import (
	"context"

	domainCache "github.com/alien2112/menu-rwad-sub005/domains/cache"
	domainReview "github.com/alien2112/menu-rwad-sub005/domains/review"
	"github.com/alien2112/menu-rwad-sub005/validations"
)

type reviewService struct {
	repo  domainReview.IReviewRepository
	cache domainCache.Store
	inv   *InvalidationRegistry
}

func NewReviewService(repo domainReview.IReviewRepository, cache domainCache.Store, inv *InvalidationRegistry) domainReview.IReviewUsecase {
	return &reviewService{repo: repo, cache: cache, inv: inv}
}

func (s *reviewService) ListApproved(ctx context.Context, admin bool) ([]domainReview.Review, error) {
	if admin {
		return s.repo.ListApproved(ctx)
	}

	out, _, err := domainCache.Read(ctx, s.cache, domainCache.KeyReviewsApproved, domainCache.DefaultTTL(), s.repo.ListApproved)
	return out, err
}

func (s *reviewService) ListByItem(ctx context.Context, itemID string, admin bool) ([]domainReview.Review, error) {
	if admin {
		return s.repo.ListApprovedByItem(ctx, itemID)
	}

	out, _, err := domainCache.Read(ctx, s.cache, domainCache.KeyMenuItemReviews(itemID), domainCache.DefaultTTL(),
		func(ctx context.Context) ([]domainReview.Review, error) {
			return s.repo.ListApprovedByItem(ctx, itemID)
		})
	return out, err
}

func (s *reviewService) ListAll(ctx context.Context) ([]domainReview.Review, error) {
	return s.repo.ListAll(ctx)
}

// Submit stores the review unapproved. Nothing public is cached for it yet,
// so no invalidation runs here; approval is the moment a review becomes
// publicly visible.
func (s *reviewService) Submit(ctx context.Context, req domainReview.SubmitRequest) (*domainReview.Review, error) {
	if err := validations.ValidateSubmitReview(ctx, req); err != nil {
		return nil, err
	}

	r := &domainReview.Review{
		ItemID:   req.ItemID,
		Author:   req.Author,
		Rating:   req.Rating,
		Comment:  req.Comment,
		Approved: false,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *reviewService) Approve(ctx context.Context, id string) (*domainReview.Review, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.Approved = true
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}

	s.invalidateFor(ctx, r)
	return r, nil
}

func (s *reviewService) Delete(ctx context.Context, id string) error {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateFor(ctx, r)
	return nil
}

// invalidateFor picks the right family: per-item reviews only clear that
// item's list, restaurant-level reviews clear the homepage set.
func (s *reviewService) invalidateFor(ctx context.Context, r *domainReview.Review) {
	if r.ItemID != "" {
		s.inv.MenuItemReviews(ctx, r.ItemID)
		return
	}
	s.inv.Reviews(ctx)
}
