// Package review holds both restaurant reviews and per-menu-item reviews.
// Public submissions land unapproved; only approved reviews are cached and
// served to public readers.
package review

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("review not found")

type Review struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id,omitempty"` // empty for restaurant-level reviews
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SubmitRequest struct {
	ItemID  string `json:"item_id"`
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type IReviewRepository interface {
	Create(ctx context.Context, r *Review) error
	GetByID(ctx context.Context, id string) (*Review, error)
	ListApproved(ctx context.Context) ([]Review, error)
	ListApprovedByItem(ctx context.Context, itemID string) ([]Review, error)
	ListAll(ctx context.Context) ([]Review, error)
	Update(ctx context.Context, r *Review) error
	Delete(ctx context.Context, id string) error
}

type IReviewUsecase interface {
	ListApproved(ctx context.Context, admin bool) ([]Review, error)
	ListByItem(ctx context.Context, itemID string, admin bool) ([]Review, error)
	ListAll(ctx context.Context) ([]Review, error)
	Submit(ctx context.Context, req SubmitRequest) (*Review, error)
	Approve(ctx context.Context, id string) (*Review, error)
	Delete(ctx context.Context, id string) error
}
