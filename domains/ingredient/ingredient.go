package ingredient

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("ingredient not found")
	ErrOutOfStock   = errors.New("ingredient out of stock")
	ErrInvalidStock = errors.New("stock adjustment below zero")
)

type Ingredient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NameAr    string    `json:"name_ar,omitempty"`
	Unit      string    `json:"unit,omitempty"`
	Stock     int       `json:"stock"`
	LowStock  int       `json:"low_stock"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateRequest struct {
	Name     string `json:"name"`
	NameAr   string `json:"name_ar"`
	Unit     string `json:"unit"`
	Stock    int    `json:"stock"`
	LowStock int    `json:"low_stock"`
	Active   *bool  `json:"active"`
}

type UpdateRequest struct {
	Name     *string `json:"name"`
	NameAr   *string `json:"name_ar"`
	Unit     *string `json:"unit"`
	Stock    *int    `json:"stock"`
	LowStock *int    `json:"low_stock"`
	Active   *bool   `json:"active"`
}

type IIngredientRepository interface {
	Create(ctx context.Context, i *Ingredient) error
	GetByID(ctx context.Context, id string) (*Ingredient, error)
	List(ctx context.Context) ([]Ingredient, error)
	Update(ctx context.Context, i *Ingredient) error
	// AdjustStock applies a delta atomically; it fails with ErrInvalidStock
	// when the result would go negative.
	AdjustStock(ctx context.Context, id string, delta int) error
	Delete(ctx context.Context, id string) error
}

type IIngredientUsecase interface {
	List(ctx context.Context, admin bool) ([]Ingredient, error)
	Get(ctx context.Context, id string) (*Ingredient, error)
	Create(ctx context.Context, req CreateRequest) (*Ingredient, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Ingredient, error)
	AdjustStock(ctx context.Context, id string, delta int) error
	Delete(ctx context.Context, id string) error
}
