// Package background manages the per-page hero/background artwork the
// public site renders behind each section.
package background

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("page background not found")

type Background struct {
	ID        string    `json:"id"`
	Page      string    `json:"page"` // e.g. "home", "menu", "offers"
	ImageID   string    `json:"image_id"`
	Overlay   string    `json:"overlay,omitempty"` // CSS color overlay
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpsertRequest struct {
	Page    string `json:"page"`
	ImageID string `json:"image_id"`
	Overlay string `json:"overlay"`
	Active  *bool  `json:"active"`
}

type IBackgroundRepository interface {
	Upsert(ctx context.Context, b *Background) error
	GetByPage(ctx context.Context, page string) (*Background, error)
	List(ctx context.Context) ([]Background, error)
	Delete(ctx context.Context, id string) error
}

type IBackgroundUsecase interface {
	List(ctx context.Context, admin bool) ([]Background, error)
	Upsert(ctx context.Context, req UpsertRequest) (*Background, error)
	Delete(ctx context.Context, id string) error
}
