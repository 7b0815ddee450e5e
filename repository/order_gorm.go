package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/alien2112/menu-rwad-sub005/domains/order"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderModel struct {
	ID            string `gorm:"primaryKey"`
	CustomerName  string `gorm:"not null"`
	CustomerPhone string
	TableNumber   string
	Lines         string  `gorm:"type:text;not null"` // JSON
	Subtotal      float64 `gorm:"not null"`
	TaxAmount     float64
	Total         float64 `gorm:"not null"`
	Status        string  `gorm:"index:idx_orders_status;default:'pending'"`
	Notes         string
	CreatedAt     time.Time `gorm:"not null;index:idx_orders_created"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (orderModel) TableName() string {
	return "orders"
}

type OrderGormRepository struct {
	db *gorm.DB
}

var _ order.IOrderRepository = (*OrderGormRepository)(nil)

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, o *order.Order) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	now := time.Now()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now

	return r.db.WithContext(ctx).Create(toOrderModel(o)).Error
}

func (r *OrderGormRepository) GetByID(ctx context.Context, id string) (*order.Order, error) {
	var m orderModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrNotFound
		}
		return nil, err
	}
	return fromOrderModel(m), nil
}

func (r *OrderGormRepository) List(ctx context.Context) ([]order.Order, error) {
	var models []orderModel
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]order.Order, 0, len(models))
	for _, m := range models {
		out = append(out, *fromOrderModel(m))
	}
	return out, nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, id string, status order.Status) error {
	result := r.db.WithContext(ctx).Model(&orderModel{}).Where("id = ?", id).Updates(map[string]any{
		"status":     string(status),
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return order.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&orderModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return order.ErrNotFound
	}
	return nil
}

func toOrderModel(o *order.Order) *orderModel {
	return &orderModel{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		TableNumber:   o.TableNumber,
		Lines:         marshalJSON(o.Lines),
		Subtotal:      o.Subtotal,
		TaxAmount:     o.TaxAmount,
		Total:         o.Total,
		Status:        string(o.Status),
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func fromOrderModel(m orderModel) *order.Order {
	var lines []order.Line
	_ = json.Unmarshal([]byte(m.Lines), &lines)

	return &order.Order{
		ID:            m.ID,
		CustomerName:  m.CustomerName,
		CustomerPhone: m.CustomerPhone,
		TableNumber:   m.TableNumber,
		Lines:         lines,
		Subtotal:      m.Subtotal,
		TaxAmount:     m.TaxAmount,
		Total:         m.Total,
		Status:        order.Status(m.Status),
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
