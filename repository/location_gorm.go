package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alien2112/menu-rwad-sub005/domains/location"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type locationModel struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	NameAr    string
	Address   string `gorm:"not null"`
	Phone     string
	MapURL    string
	Hours     string
	Active    bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (locationModel) TableName() string {
	return "locations"
}

type LocationGormRepository struct {
	db *gorm.DB
}

var _ location.ILocationRepository = (*LocationGormRepository)(nil)

func NewLocationGormRepository(db *gorm.DB) *LocationGormRepository {
	return &LocationGormRepository{db: db}
}

func (r *LocationGormRepository) Create(ctx context.Context, l *location.Location) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	now := time.Now()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	l.UpdatedAt = now

	return r.db.WithContext(ctx).Create(toLocationModel(l)).Error
}

func (r *LocationGormRepository) GetByID(ctx context.Context, id string) (*location.Location, error) {
	var m locationModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, location.ErrNotFound
		}
		return nil, err
	}
	return fromLocationModel(m), nil
}

func (r *LocationGormRepository) List(ctx context.Context) ([]location.Location, error) {
	var models []locationModel
	if err := r.db.WithContext(ctx).Order("name asc").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]location.Location, 0, len(models))
	for _, m := range models {
		out = append(out, *fromLocationModel(m))
	}
	return out, nil
}

func (r *LocationGormRepository) Update(ctx context.Context, l *location.Location) error {
	l.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Model(&locationModel{}).Where("id = ?", l.ID).Select("*").Omit("created_at").Updates(toLocationModel(l))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return location.ErrNotFound
	}
	return nil
}

func (r *LocationGormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&locationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return location.ErrNotFound
	}
	return nil
}

func toLocationModel(l *location.Location) *locationModel {
	return &locationModel{
		ID:        l.ID,
		Name:      l.Name,
		NameAr:    l.NameAr,
		Address:   l.Address,
		Phone:     l.Phone,
		MapURL:    l.MapURL,
		Hours:     l.Hours,
		Active:    l.Active,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func fromLocationModel(m locationModel) *location.Location {
	return &location.Location{
		ID:        m.ID,
		Name:      m.Name,
		NameAr:    m.NameAr,
		Address:   m.Address,
		Phone:     m.Phone,
		MapURL:    m.MapURL,
		Hours:     m.Hours,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
