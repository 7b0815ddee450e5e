package offer

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("offer not found")

type Offer struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	TitleAr         string     `json:"title_ar,omitempty"`
	Description     string     `json:"description,omitempty"`
	ImageID         string     `json:"image_id,omitempty"`
	DiscountPercent float64    `json:"discount_percent,omitempty"`
	ItemIDs         []string   `json:"item_ids,omitempty"`
	StartsAt        *time.Time `json:"starts_at,omitempty"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
	Active          bool       `json:"active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type CreateRequest struct {
	Title           string     `json:"title"`
	TitleAr         string     `json:"title_ar"`
	Description     string     `json:"description"`
	ImageID         string     `json:"image_id"`
	DiscountPercent float64    `json:"discount_percent"`
	ItemIDs         []string   `json:"item_ids"`
	StartsAt        *time.Time `json:"starts_at"`
	EndsAt          *time.Time `json:"ends_at"`
	Active          *bool      `json:"active"`
}

type UpdateRequest struct {
	Title           *string    `json:"title"`
	TitleAr         *string    `json:"title_ar"`
	Description     *string    `json:"description"`
	ImageID         *string    `json:"image_id"`
	DiscountPercent *float64   `json:"discount_percent"`
	ItemIDs         *[]string  `json:"item_ids"`
	StartsAt        *time.Time `json:"starts_at"`
	EndsAt          *time.Time `json:"ends_at"`
	Active          *bool      `json:"active"`
}

type IOfferRepository interface {
	Create(ctx context.Context, o *Offer) error
	GetByID(ctx context.Context, id string) (*Offer, error)
	List(ctx context.Context) ([]Offer, error)
	Update(ctx context.Context, o *Offer) error
	Delete(ctx context.Context, id string) error
}

type IOfferUsecase interface {
	List(ctx context.Context, admin bool) ([]Offer, error)
	Get(ctx context.Context, id string, admin bool) (*Offer, error)
	Create(ctx context.Context, req CreateRequest) (*Offer, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Offer, error)
	Delete(ctx context.Context, id string) error
}
