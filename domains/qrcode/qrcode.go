// Package qrcode stores the QR code records that map printed table codes to
// menu URLs. Token generation and image rendering happen in an external
// service; this side only keeps the records.
package qrcode

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("qr code not found")

type Code struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	TargetURL string    `json:"target_url"`
	Token     string    `json:"token,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateRequest struct {
	Label     string `json:"label"`
	TargetURL string `json:"target_url"`
	Token     string `json:"token"`
	Active    *bool  `json:"active"`
}

type UpdateRequest struct {
	Label     *string `json:"label"`
	TargetURL *string `json:"target_url"`
	Token     *string `json:"token"`
	Active    *bool   `json:"active"`
}

type IQRCodeRepository interface {
	Create(ctx context.Context, c *Code) error
	GetByID(ctx context.Context, id string) (*Code, error)
	List(ctx context.Context) ([]Code, error)
	Update(ctx context.Context, c *Code) error
	Delete(ctx context.Context, id string) error
}

type IQRCodeUsecase interface {
	List(ctx context.Context) ([]Code, error)
	Create(ctx context.Context, req CreateRequest) (*Code, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Code, error)
	Delete(ctx context.Context, id string) error
}
