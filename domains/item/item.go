package item

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("menu item not found")

type Item struct {
	ID            string    `json:"id"`
	CategoryID    string    `json:"category_id"`
	Name          string    `json:"name"`
	NameAr        string    `json:"name_ar,omitempty"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price"`
	ImageID       string    `json:"image_id,omitempty"`
	IngredientIDs []string  `json:"ingredient_ids,omitempty"`
	Calories      int       `json:"calories,omitempty"`
	SortOrder     int       `json:"sort_order"`
	Available     bool      `json:"available"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateRequest struct {
	CategoryID    string   `json:"category_id"`
	Name          string   `json:"name"`
	NameAr        string   `json:"name_ar"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	ImageID       string   `json:"image_id"`
	IngredientIDs []string `json:"ingredient_ids"`
	Calories      int      `json:"calories"`
	SortOrder     int      `json:"sort_order"`
	Available     *bool    `json:"available"`
}

type UpdateRequest struct {
	CategoryID    *string   `json:"category_id"`
	Name          *string   `json:"name"`
	NameAr        *string   `json:"name_ar"`
	Description   *string   `json:"description"`
	Price         *float64  `json:"price"`
	ImageID       *string   `json:"image_id"`
	IngredientIDs *[]string `json:"ingredient_ids"`
	Calories      *int      `json:"calories"`
	SortOrder     *int      `json:"sort_order"`
	Available     *bool     `json:"available"`
}

type IItemRepository interface {
	Create(ctx context.Context, i *Item) error
	GetByID(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context) ([]Item, error)
	ListByCategory(ctx context.Context, categoryID string) ([]Item, error)
	Update(ctx context.Context, i *Item) error
	Delete(ctx context.Context, id string) error
}

type IItemUsecase interface {
	List(ctx context.Context, admin bool) ([]Item, error)
	ListByCategory(ctx context.Context, categoryID string, admin bool) ([]Item, error)
	Get(ctx context.Context, id string, admin bool) (*Item, error)
	Create(ctx context.Context, req CreateRequest) (*Item, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Item, error)
	Delete(ctx context.Context, id string) error
}
