package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alien2112/menu-rwad-sub005/domains/background"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type backgroundModel struct {
	ID        string `gorm:"primaryKey"`
	Page      string `gorm:"uniqueIndex:idx_backgrounds_page;not null"`
	ImageID   string `gorm:"not null"`
	Overlay   string
	Active    bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (backgroundModel) TableName() string {
	return "page_backgrounds"
}

type BackgroundGormRepository struct {
	db *gorm.DB
}

var _ background.IBackgroundRepository = (*BackgroundGormRepository)(nil)

func NewBackgroundGormRepository(db *gorm.DB) *BackgroundGormRepository {
	return &BackgroundGormRepository{db: db}
}

// Upsert keys on the page name: one background per page.
func (r *BackgroundGormRepository) Upsert(ctx context.Context, b *background.Background) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "page"}},
		DoUpdates: clause.AssignmentColumns([]string{"image_id", "overlay", "active", "updated_at"}),
	}).Create(toBackgroundModel(b)).Error
}

func (r *BackgroundGormRepository) GetByPage(ctx context.Context, page string) (*background.Background, error) {
	var m backgroundModel
	if err := r.db.WithContext(ctx).First(&m, "page = ?", page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, background.ErrNotFound
		}
		return nil, err
	}
	return fromBackgroundModel(m), nil
}

func (r *BackgroundGormRepository) List(ctx context.Context) ([]background.Background, error) {
	var models []backgroundModel
	if err := r.db.WithContext(ctx).Order("page asc").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]background.Background, 0, len(models))
	for _, m := range models {
		out = append(out, *fromBackgroundModel(m))
	}
	return out, nil
}

func (r *BackgroundGormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&backgroundModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return background.ErrNotFound
	}
	return nil
}

func toBackgroundModel(b *background.Background) *backgroundModel {
	return &backgroundModel{
		ID:        b.ID,
		Page:      b.Page,
		ImageID:   b.ImageID,
		Overlay:   b.Overlay,
		Active:    b.Active,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func fromBackgroundModel(m backgroundModel) *background.Background {
	return &background.Background{
		ID:        m.ID,
		Page:      m.Page,
		ImageID:   m.ImageID,
		Overlay:   m.Overlay,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
