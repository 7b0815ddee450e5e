package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alien2112/menu-rwad-sub005/domains/ingredient"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ingredientModel struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	NameAr    string
	Unit      string
	Stock     int       `gorm:"default:0"`
	LowStock  int       `gorm:"default:0"`
	Active    bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (ingredientModel) TableName() string {
	return "ingredients"
}

type IngredientGormRepository struct {
	db *gorm.DB
}

var _ ingredient.IIngredientRepository = (*IngredientGormRepository)(nil)

func NewIngredientGormRepository(db *gorm.DB) *IngredientGormRepository {
	return &IngredientGormRepository{db: db}
}

func (r *IngredientGormRepository) Create(ctx context.Context, i *ingredient.Ingredient) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	i.UpdatedAt = now

	return r.db.WithContext(ctx).Create(toIngredientModel(i)).Error
}

func (r *IngredientGormRepository) GetByID(ctx context.Context, id string) (*ingredient.Ingredient, error) {
	var m ingredientModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ingredient.ErrNotFound
		}
		return nil, err
	}
	return fromIngredientModel(m), nil
}

func (r *IngredientGormRepository) List(ctx context.Context) ([]ingredient.Ingredient, error) {
	var models []ingredientModel
	if err := r.db.WithContext(ctx).Order("name asc").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]ingredient.Ingredient, 0, len(models))
	for _, m := range models {
		out = append(out, *fromIngredientModel(m))
	}
	return out, nil
}

func (r *IngredientGormRepository) Update(ctx context.Context, i *ingredient.Ingredient) error {
	i.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Model(&ingredientModel{}).Where("id = ?", i.ID).Select("*").Omit("created_at").Updates(toIngredientModel(i))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ingredient.ErrNotFound
	}
	return nil
}

// AdjustStock applies the delta in a single guarded UPDATE so concurrent
// order submissions cannot drive stock negative.
func (r *IngredientGormRepository) AdjustStock(ctx context.Context, id string, delta int) error {
	result := r.db.WithContext(ctx).Model(&ingredientModel{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		Updates(map[string]any{
			"stock":      gorm.Expr("stock + ?", delta),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either the row is missing or the guard rejected the delta.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ingredient.ErrInvalidStock
	}
	return nil
}

func (r *IngredientGormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&ingredientModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ingredient.ErrNotFound
	}
	return nil
}

func toIngredientModel(i *ingredient.Ingredient) *ingredientModel {
	return &ingredientModel{
		ID:        i.ID,
		Name:      i.Name,
		NameAr:    i.NameAr,
		Unit:      i.Unit,
		Stock:     i.Stock,
		LowStock:  i.LowStock,
		Active:    i.Active,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func fromIngredientModel(m ingredientModel) *ingredient.Ingredient {
	return &ingredient.Ingredient{
		ID:        m.ID,
		Name:      m.Name,
		NameAr:    m.NameAr,
		Unit:      m.Unit,
		Stock:     m.Stock,
		LowStock:  m.LowStock,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
