package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alien2112/menu-rwad-sub005/domains/drink"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type drinkModel struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	NameAr      string
	Description string
	Price       float64
	ImageID     string
	SortOrder   int       `gorm:"default:0"`
	Active      bool      `gorm:"default:true;index:idx_drinks_active"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (drinkModel) TableName() string {
	return "signature_drinks"
}

type DrinkGormRepository struct {
	db *gorm.DB
}

var _ drink.IDrinkRepository = (*DrinkGormRepository)(nil)

func NewDrinkGormRepository(db *gorm.DB) *DrinkGormRepository {
	return &DrinkGormRepository{db: db}
}

func (r *DrinkGormRepository) Create(ctx context.Context, d *drink.Drink) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	now := time.Now()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now

	return r.db.WithContext(ctx).Create(toDrinkModel(d)).Error
}

func (r *DrinkGormRepository) GetByID(ctx context.Context, id string) (*drink.Drink, error) {
	var m drinkModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, drink.ErrNotFound
		}
		return nil, err
	}
	return fromDrinkModel(m), nil
}

func (r *DrinkGormRepository) List(ctx context.Context) ([]drink.Drink, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *DrinkGormRepository) ListActive(ctx context.Context) ([]drink.Drink, error) {
	return r.list(r.db.WithContext(ctx).Where("active = ?", true))
}

func (r *DrinkGormRepository) list(tx *gorm.DB) ([]drink.Drink, error) {
	var models []drinkModel
	if err := tx.Order("sort_order asc, name asc").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]drink.Drink, 0, len(models))
	for _, m := range models {
		out = append(out, *fromDrinkModel(m))
	}
	return out, nil
}

func (r *DrinkGormRepository) Update(ctx context.Context, d *drink.Drink) error {
	d.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Model(&drinkModel{}).Where("id = ?", d.ID).Select("*").Omit("created_at").Updates(toDrinkModel(d))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return drink.ErrNotFound
	}
	return nil
}

func (r *DrinkGormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&drinkModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return drink.ErrNotFound
	}
	return nil
}

func toDrinkModel(d *drink.Drink) *drinkModel {
	return &drinkModel{
		ID:          d.ID,
		Name:        d.Name,
		NameAr:      d.NameAr,
		Description: d.Description,
		Price:       d.Price,
		ImageID:     d.ImageID,
		SortOrder:   d.SortOrder,
		Active:      d.Active,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func fromDrinkModel(m drinkModel) *drink.Drink {
	return &drink.Drink{
		ID:          m.ID,
		Name:        m.Name,
		NameAr:      m.NameAr,
		Description: m.Description,
		Price:       m.Price,
		ImageID:     m.ImageID,
		SortOrder:   m.SortOrder,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
