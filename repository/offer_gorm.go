package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alien2112/menu-rwad-sub005/domains/offer"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type offerModel struct {
	ID              string `gorm:"primaryKey"`
	Title           string `gorm:"not null"`
	TitleAr         string
	Description     string
	ImageID         string
	DiscountPercent float64
	ItemIDs         string `gorm:"type:text;default:'[]'"` // JSON
	StartsAt        *time.Time
	EndsAt          *time.Time
	Active          bool      `gorm:"default:true"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

func (offerModel) TableName() string {
	return "offers"
}

type OfferGormRepository struct {
	db *gorm.DB
}

var _ offer.IOfferRepository = (*OfferGormRepository)(nil)

func NewOfferGormRepository(db *gorm.DB) *OfferGormRepository {
	return &OfferGormRepository{db: db}
}

func (r *OfferGormRepository) Create(ctx context.Context, o *offer.Offer) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	now := time.Now()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now

	return r.db.WithContext(ctx).Create(toOfferModel(o)).Error
}

func (r *OfferGormRepository) GetByID(ctx context.Context, id string) (*offer.Offer, error) {
	var m offerModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, offer.ErrNotFound
		}
		return nil, err
	}
	return fromOfferModel(m), nil
}

func (r *OfferGormRepository) List(ctx context.Context) ([]offer.Offer, error) {
	var models []offerModel
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]offer.Offer, 0, len(models))
	for _, m := range models {
		out = append(out, *fromOfferModel(m))
	}
	return out, nil
}

func (r *OfferGormRepository) Update(ctx context.Context, o *offer.Offer) error {
	o.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Model(&offerModel{}).Where("id = ?", o.ID).Select("*").Omit("created_at").Updates(toOfferModel(o))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return offer.ErrNotFound
	}
	return nil
}

func (r *OfferGormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&offerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return offer.ErrNotFound
	}
	return nil
}

func toOfferModel(o *offer.Offer) *offerModel {
	return &offerModel{
		ID:              o.ID,
		Title:           o.Title,
		TitleAr:         o.TitleAr,
		Description:     o.Description,
		ImageID:         o.ImageID,
		DiscountPercent: o.DiscountPercent,
		ItemIDs:         marshalJSON(o.ItemIDs),
		StartsAt:        o.StartsAt,
		EndsAt:          o.EndsAt,
		Active:          o.Active,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func fromOfferModel(m offerModel) *offer.Offer {
	return &offer.Offer{
		ID:              m.ID,
		Title:           m.Title,
		TitleAr:         m.TitleAr,
		Description:     m.Description,
		ImageID:         m.ImageID,
		DiscountPercent: m.DiscountPercent,
		ItemIDs:         unmarshalStrings(m.ItemIDs),
		StartsAt:        m.StartsAt,
		EndsAt:          m.EndsAt,
		Active:          m.Active,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
