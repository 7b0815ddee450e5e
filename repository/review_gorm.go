package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alien2112/menu-rwad-sub005/domains/review"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reviewModel struct {
	ID        string `gorm:"primaryKey"`
	ItemID    string `gorm:"index:idx_reviews_item"`
	Author    string `gorm:"not null"`
	Rating    int    `gorm:"not null"`
	Comment   string
	Approved  bool      `gorm:"default:false;index:idx_reviews_approved"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (reviewModel) TableName() string {
	return "reviews"
}

type ReviewGormRepository struct {
	db *gorm.DB
}

var _ review.IReviewRepository = (*ReviewGormRepository)(nil)

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) Create(ctx context.Context, rev *review.Review) error {
	if rev.ID == "" {
		rev.ID = uuid.New().String()
	}
	now := time.Now()
	if rev.CreatedAt.IsZero() {
		rev.CreatedAt = now
	}
	rev.UpdatedAt = now

	return r.db.WithContext(ctx).Create(toReviewModel(rev)).Error
}

func (r *ReviewGormRepository) GetByID(ctx context.Context, id string) (*review.Review, error) {
	var m reviewModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, review.ErrNotFound
		}
		return nil, err
	}
	return fromReviewModel(m), nil
}

func (r *ReviewGormRepository) ListApproved(ctx context.Context) ([]review.Review, error) {
	return r.list(r.db.WithContext(ctx).Where("approved = ? AND item_id = ''", true))
}

func (r *ReviewGormRepository) ListApprovedByItem(ctx context.Context, itemID string) ([]review.Review, error) {
	return r.list(r.db.WithContext(ctx).Where("approved = ? AND item_id = ?", true, itemID))
}

func (r *ReviewGormRepository) ListAll(ctx context.Context) ([]review.Review, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *ReviewGormRepository) list(tx *gorm.DB) ([]review.Review, error) {
	var models []reviewModel
	if err := tx.Order("created_at desc").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]review.Review, 0, len(models))
	for _, m := range models {
		out = append(out, *fromReviewModel(m))
	}
	return out, nil
}

func (r *ReviewGormRepository) Update(ctx context.Context, rev *review.Review) error {
	rev.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Model(&reviewModel{}).Where("id = ?", rev.ID).Select("*").Omit("created_at").Updates(toReviewModel(rev))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return review.ErrNotFound
	}
	return nil
}

func (r *ReviewGormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&reviewModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return review.ErrNotFound
	}
	return nil
}

func toReviewModel(rev *review.Review) *reviewModel {
	return &reviewModel{
		ID:        rev.ID,
		ItemID:    rev.ItemID,
		Author:    rev.Author,
		Rating:    rev.Rating,
		Comment:   rev.Comment,
		Approved:  rev.Approved,
		CreatedAt: rev.CreatedAt,
		UpdatedAt: rev.UpdatedAt,
	}
}

func fromReviewModel(m reviewModel) *review.Review {
	return &review.Review{
		ID:        m.ID,
		ItemID:    m.ItemID,
		Author:    m.Author,
		Rating:    m.Rating,
		Comment:   m.Comment,
		Approved:  m.Approved,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
