package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alien2112/menu-rwad-sub005/domains/image"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type imageModel struct {
	ID          string    `gorm:"primaryKey"`
	FileName    string    `gorm:"not null"`
	ContentType string    `gorm:"not null"`
	SizeBytes   int64     `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (imageModel) TableName() string {
	return "images"
}

type ImageGormRepository struct {
	db *gorm.DB
}

var _ image.IImageRepository = (*ImageGormRepository)(nil)

func NewImageGormRepository(db *gorm.DB) *ImageGormRepository {
	return &ImageGormRepository{db: db}
}

func (r *ImageGormRepository) Create(ctx context.Context, rec *image.Record) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	now := time.Now()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	return r.db.WithContext(ctx).Create(toImageModel(rec)).Error
}

func (r *ImageGormRepository) GetByID(ctx context.Context, id string) (*image.Record, error) {
	var m imageModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, image.ErrNotFound
		}
		return nil, err
	}
	return fromImageModel(m), nil
}

func (r *ImageGormRepository) List(ctx context.Context) ([]image.Record, error) {
	var models []imageModel
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]image.Record, 0, len(models))
	for _, m := range models {
		out = append(out, *fromImageModel(m))
	}
	return out, nil
}

func (r *ImageGormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&imageModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return image.ErrNotFound
	}
	return nil
}

func toImageModel(rec *image.Record) *imageModel {
	return &imageModel{
		ID:          rec.ID,
		FileName:    rec.FileName,
		ContentType: rec.ContentType,
		SizeBytes:   rec.SizeBytes,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

func fromImageModel(m imageModel) *image.Record {
	return &image.Record{
		ID:          m.ID,
		FileName:    m.FileName,
		ContentType: m.ContentType,
		SizeBytes:   m.SizeBytes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
