package order

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrEmptyOrder    = errors.New("order has no lines")
	ErrUnknownItem   = errors.New("order references unknown menu item")
	ErrInvalidStatus = errors.New("invalid order status")
)

// Status is a plain field; there is no transition state machine here.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type Line struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes,omitempty"`
}

type Order struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone,omitempty"`
	TableNumber   string    `json:"table_number,omitempty"`
	Lines         []Line    `json:"lines"`
	Subtotal      float64   `json:"subtotal"`
	TaxAmount     float64   `json:"tax_amount"`
	Total         float64   `json:"total"`
	Status        Status    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type SubmitLine struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

type SubmitRequest struct {
	CustomerName  string       `json:"customer_name"`
	CustomerPhone string       `json:"customer_phone"`
	TableNumber   string       `json:"table_number"`
	Lines         []SubmitLine `json:"lines"`
	Notes         string       `json:"notes"`
}

// SubmitResponse carries the stored order plus the WhatsApp handoff link the
// client opens to finish the submission.
type SubmitResponse struct {
	Order       Order  `json:"order"`
	WhatsappURL string `json:"whatsapp_url"`
}

type IOrderRepository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}

type IOrderUsecase interface {
	Submit(ctx context.Context, req SubmitRequest) (*SubmitResponse, error)
	Get(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Order, error)
	Delete(ctx context.Context, id string) error
}
