package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alien2112/menu-rwad-sub005/domains/staff"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type staffModel struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Role      string `gorm:"not null;index:idx_staff_role"`
	Phone     string
	Email     string
	Active    bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (staffModel) TableName() string {
	return "staff_members"
}

type StaffGormRepository struct {
	db *gorm.DB
}

var _ staff.IStaffRepository = (*StaffGormRepository)(nil)

func NewStaffGormRepository(db *gorm.DB) *StaffGormRepository {
	return &StaffGormRepository{db: db}
}

func (r *StaffGormRepository) Create(ctx context.Context, m *staff.Member) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	return r.db.WithContext(ctx).Create(toStaffModel(m)).Error
}

func (r *StaffGormRepository) GetByID(ctx context.Context, id string) (*staff.Member, error) {
	var m staffModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, staff.ErrNotFound
		}
		return nil, err
	}
	return fromStaffModel(m), nil
}

func (r *StaffGormRepository) List(ctx context.Context) ([]staff.Member, error) {
	var models []staffModel
	if err := r.db.WithContext(ctx).Order("name asc").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]staff.Member, 0, len(models))
	for _, m := range models {
		out = append(out, *fromStaffModel(m))
	}
	return out, nil
}

func (r *StaffGormRepository) Update(ctx context.Context, m *staff.Member) error {
	m.UpdatedAt = time.Now()

	// Select("*") forces zero values (false, 0, "") to be written too.
	result := r.db.WithContext(ctx).Model(&staffModel{}).Where("id = ?", m.ID).
		Select("*").Omit("created_at").Updates(toStaffModel(m))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return staff.ErrNotFound
	}
	return nil
}

func (r *StaffGormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&staffModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return staff.ErrNotFound
	}
	return nil
}

func toStaffModel(m *staff.Member) *staffModel {
	return &staffModel{
		ID:        m.ID,
		Name:      m.Name,
		Role:      string(m.Role),
		Phone:     m.Phone,
		Email:     m.Email,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromStaffModel(m staffModel) *staff.Member {
	return &staff.Member{
		ID:        m.ID,
		Name:      m.Name,
		Role:      staff.Role(m.Role),
		Phone:     m.Phone,
		Email:     m.Email,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
