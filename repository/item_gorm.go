package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alien2112/menu-rwad-sub005/domains/item"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type itemModel struct {
	ID            string `gorm:"primaryKey"`
	CategoryID    string `gorm:"index:idx_items_category;not null"`
	Name          string `gorm:"not null"`
	NameAr        string
	Description   string
	Price         float64 `gorm:"not null"`
	ImageID       string
	IngredientIDs string `gorm:"type:text;default:'[]'"` // JSON
	Calories      int
	SortOrder     int       `gorm:"default:0"`
	Available     bool      `gorm:"default:true"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (itemModel) TableName() string {
	return "menu_items"
}

type ItemGormRepository struct {
	db *gorm.DB
}

var _ item.IItemRepository = (*ItemGormRepository)(nil)

func NewItemGormRepository(db *gorm.DB) *ItemGormRepository {
	return &ItemGormRepository{db: db}
}

func (r *ItemGormRepository) Create(ctx context.Context, i *item.Item) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	i.UpdatedAt = now

	return r.db.WithContext(ctx).Create(toItemModel(i)).Error
}

func (r *ItemGormRepository) GetByID(ctx context.Context, id string) (*item.Item, error) {
	var m itemModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, item.ErrNotFound
		}
		return nil, err
	}
	return fromItemModel(m), nil
}

func (r *ItemGormRepository) List(ctx context.Context) ([]item.Item, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *ItemGormRepository) ListByCategory(ctx context.Context, categoryID string) ([]item.Item, error) {
	return r.list(r.db.WithContext(ctx).Where("category_id = ?", categoryID))
}

func (r *ItemGormRepository) list(tx *gorm.DB) ([]item.Item, error) {
	var models []itemModel
	if err := tx.Order("sort_order asc, name asc").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]item.Item, 0, len(models))
	for _, m := range models {
		out = append(out, *fromItemModel(m))
	}
	return out, nil
}

func (r *ItemGormRepository) Update(ctx context.Context, i *item.Item) error {
	i.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Model(&itemModel{}).Where("id = ?", i.ID).Select("*").Omit("created_at").Updates(toItemModel(i))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return item.ErrNotFound
	}
	return nil
}

func (r *ItemGormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&itemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return item.ErrNotFound
	}
	return nil
}

func toItemModel(i *item.Item) *itemModel {
	return &itemModel{
		ID:            i.ID,
		CategoryID:    i.CategoryID,
		Name:          i.Name,
		NameAr:        i.NameAr,
		Description:   i.Description,
		Price:         i.Price,
		ImageID:       i.ImageID,
		IngredientIDs: marshalJSON(i.IngredientIDs),
		Calories:      i.Calories,
		SortOrder:     i.SortOrder,
		Available:     i.Available,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func fromItemModel(m itemModel) *item.Item {
	return &item.Item{
		ID:            m.ID,
		CategoryID:    m.CategoryID,
		Name:          m.Name,
		NameAr:        m.NameAr,
		Description:   m.Description,
		Price:         m.Price,
		ImageID:       m.ImageID,
		IngredientIDs: unmarshalStrings(m.IngredientIDs),
		Calories:      m.Calories,
		SortOrder:     m.SortOrder,
		Available:     m.Available,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
