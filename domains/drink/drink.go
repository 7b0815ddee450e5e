// Package drink covers the "signature drinks" strip shown on the homepage.
package drink

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("signature drink not found")

type Drink struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	NameAr      string    `json:"name_ar,omitempty"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	ImageID     string    `json:"image_id,omitempty"`
	SortOrder   int       `json:"sort_order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateRequest struct {
	Name        string  `json:"name"`
	NameAr      string  `json:"name_ar"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageID     string  `json:"image_id"`
	SortOrder   int     `json:"sort_order"`
	Active      *bool   `json:"active"`
}

type UpdateRequest struct {
	Name        *string  `json:"name"`
	NameAr      *string  `json:"name_ar"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageID     *string  `json:"image_id"`
	SortOrder   *int     `json:"sort_order"`
	Active      *bool    `json:"active"`
}

type IDrinkRepository interface {
	Create(ctx context.Context, d *Drink) error
	GetByID(ctx context.Context, id string) (*Drink, error)
	List(ctx context.Context) ([]Drink, error)
	ListActive(ctx context.Context) ([]Drink, error)
	Update(ctx context.Context, d *Drink) error
	Delete(ctx context.Context, id string) error
}

type IDrinkUsecase interface {
	ListActive(ctx context.Context, admin bool) ([]Drink, error)
	List(ctx context.Context) ([]Drink, error)
	Create(ctx context.Context, req CreateRequest) (*Drink, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Drink, error)
	Delete(ctx context.Context, id string) error
}
