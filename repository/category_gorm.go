package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alien2112/menu-rwad-sub005/domains/category"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type categoryModel struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null;index:idx_categories_name"`
	NameAr      string
	Description string
	ImageID     string
	Color       string
	SortOrder   int       `gorm:"default:0;index:idx_categories_sort"`
	Active      bool      `gorm:"default:true"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (categoryModel) TableName() string {
	return "categories"
}

type CategoryGormRepository struct {
	db *gorm.DB
}

var _ category.ICategoryRepository = (*CategoryGormRepository)(nil)

func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

func (r *CategoryGormRepository) Create(ctx context.Context, c *category.Category) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	return r.db.WithContext(ctx).Create(toCategoryModel(c)).Error
}

func (r *CategoryGormRepository) GetByID(ctx context.Context, id string) (*category.Category, error) {
	var m categoryModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrNotFound
		}
		return nil, err
	}
	return fromCategoryModel(m), nil
}

func (r *CategoryGormRepository) List(ctx context.Context) ([]category.Category, error) {
	var models []categoryModel
	if err := r.db.WithContext(ctx).Order("sort_order asc, name asc").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]category.Category, 0, len(models))
	for _, m := range models {
		out = append(out, *fromCategoryModel(m))
	}
	return out, nil
}

func (r *CategoryGormRepository) Update(ctx context.Context, c *category.Category) error {
	c.UpdatedAt = time.Now()
	// Select("*") forces zero values (false, 0, "") to be written too.
	result := r.db.WithContext(ctx).Model(&categoryModel{}).Where("id = ?", c.ID).Select("*").Omit("created_at").Updates(toCategoryModel(c))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return category.ErrNotFound
	}
	return nil
}

func (r *CategoryGormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&categoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return category.ErrNotFound
	}
	return nil
}

func toCategoryModel(c *category.Category) *categoryModel {
	return &categoryModel{
		ID:          c.ID,
		Name:        c.Name,
		NameAr:      c.NameAr,
		Description: c.Description,
		ImageID:     c.ImageID,
		Color:       c.Color,
		SortOrder:   c.SortOrder,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func fromCategoryModel(m categoryModel) *category.Category {
	return &category.Category{
		ID:          m.ID,
		Name:        m.Name,
		NameAr:      m.NameAr,
		Description: m.Description,
		ImageID:     m.ImageID,
		Color:       m.Color,
		SortOrder:   m.SortOrder,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
