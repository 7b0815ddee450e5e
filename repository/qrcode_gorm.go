package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alien2112/menu-rwad-sub005/domains/qrcode"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type qrCodeModel struct {
	ID        string    `gorm:"primaryKey"`
	Label     string    `gorm:"not null"`
	TargetURL string    `gorm:"not null"`
	Token     string    `gorm:"index:idx_qr_codes_token"`
	Active    bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (qrCodeModel) TableName() string {
	return "qr_codes"
}

type QRCodeGormRepository struct {
	db *gorm.DB
}

var _ qrcode.IQRCodeRepository = (*QRCodeGormRepository)(nil)

func NewQRCodeGormRepository(db *gorm.DB) *QRCodeGormRepository {
	return &QRCodeGormRepository{db: db}
}

func (r *QRCodeGormRepository) Create(ctx context.Context, c *qrcode.Code) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	return r.db.WithContext(ctx).Create(toQRCodeModel(c)).Error
}

func (r *QRCodeGormRepository) GetByID(ctx context.Context, id string) (*qrcode.Code, error) {
	var m qrCodeModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, qrcode.ErrNotFound
		}
		return nil, err
	}
	return fromQRCodeModel(m), nil
}

func (r *QRCodeGormRepository) List(ctx context.Context) ([]qrcode.Code, error) {
	var models []qrCodeModel
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]qrcode.Code, 0, len(models))
	for _, m := range models {
		out = append(out, *fromQRCodeModel(m))
	}
	return out, nil
}

func (r *QRCodeGormRepository) Update(ctx context.Context, c *qrcode.Code) error {
	c.UpdatedAt = time.Now()

	// Select("*") forces zero values (false, 0, "") to be written too.
	result := r.db.WithContext(ctx).Model(&qrCodeModel{}).Where("id = ?", c.ID).
		Select("*").Omit("created_at").Updates(toQRCodeModel(c))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return qrcode.ErrNotFound
	}
	return nil
}

func (r *QRCodeGormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&qrCodeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return qrcode.ErrNotFound
	}
	return nil
}

func toQRCodeModel(c *qrcode.Code) *qrCodeModel {
	return &qrCodeModel{
		ID:        c.ID,
		Label:     c.Label,
		TargetURL: c.TargetURL,
		Token:     c.Token,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func fromQRCodeModel(m qrCodeModel) *qrcode.Code {
	return &qrcode.Code{
		ID:        m.ID,
		Label:     m.Label,
		TargetURL: m.TargetURL,
		Token:     m.Token,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
