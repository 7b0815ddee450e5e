package location

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("location not found")

type Location struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NameAr    string    `json:"name_ar,omitempty"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone,omitempty"`
	MapURL    string    `json:"map_url,omitempty"`
	Hours     string    `json:"hours,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateRequest struct {
	Name    string `json:"name"`
	NameAr  string `json:"name_ar"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	MapURL  string `json:"map_url"`
	Hours   string `json:"hours"`
	Active  *bool  `json:"active"`
}

type UpdateRequest struct {
	Name    *string `json:"name"`
	NameAr  *string `json:"name_ar"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	MapURL  *string `json:"map_url"`
	Hours   *string `json:"hours"`
	Active  *bool   `json:"active"`
}

type ILocationRepository interface {
	Create(ctx context.Context, l *Location) error
	GetByID(ctx context.Context, id string) (*Location, error)
	List(ctx context.Context) ([]Location, error)
	Update(ctx context.Context, l *Location) error
	Delete(ctx context.Context, id string) error
}

type ILocationUsecase interface {
	List(ctx context.Context, admin bool) ([]Location, error)
	Create(ctx context.Context, req CreateRequest) (*Location, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Location, error)
	Delete(ctx context.Context, id string) error
}
