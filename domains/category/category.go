package category

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("category not found")

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	NameAr      string    `json:"name_ar,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageID     string    `json:"image_id,omitempty"`
	Color       string    `json:"color,omitempty"`
	SortOrder   int       `json:"sort_order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateRequest struct {
	Name        string `json:"name"`
	NameAr      string `json:"name_ar"`
	Description string `json:"description"`
	ImageID     string `json:"image_id"`
	Color       string `json:"color"`
	SortOrder   int    `json:"sort_order"`
	Active      *bool  `json:"active"`
}

type UpdateRequest struct {
	Name        *string `json:"name"`
	NameAr      *string `json:"name_ar"`
	Description *string `json:"description"`
	ImageID     *string `json:"image_id"`
	Color       *string `json:"color"`
	SortOrder   *int    `json:"sort_order"`
	Active      *bool   `json:"active"`
}

type ICategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id string) error
}

// admin reads bypass the cache so the back office always reflects the
// database.
type ICategoryUsecase interface {
	List(ctx context.Context, admin bool) ([]Category, error)
	Get(ctx context.Context, id string, admin bool) (*Category, error)
	Create(ctx context.Context, req CreateRequest) (*Category, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Category, error)
	Delete(ctx context.Context, id string) error
}
