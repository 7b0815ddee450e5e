package image

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("image not found")
	ErrBadDimensions = errors.New("invalid resize dimensions")
	ErrBadFormat     = errors.New("unsupported output format")
)

// Record is the stored metadata for one uploaded source image.
type Record struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RenderOptions parameterize a resize. Every field participates in the
// cache key: two requests differing in any field yield different bytes.
type RenderOptions struct {
	Width   int
	Height  int
	Quality int
	Format  string // "jpeg", "png", "gif" or "webp"
}

// Rendered is a resized result. Data is base64-encoded by encoding/json,
// which keeps the value JSON-serializable for the Valkey cache backend.
type Rendered struct {
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

type IImageRepository interface {
	Create(ctx context.Context, r *Record) error
	GetByID(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context) ([]Record, error)
	Delete(ctx context.Context, id string) error
}

type IImageUsecase interface {
	Upload(ctx context.Context, fileName, contentType string, data []byte) (*Record, error)
	List(ctx context.Context) ([]Record, error)
	// Render resizes the stored source and caches the result under a key
	// derived from id plus every render option.
	Render(ctx context.Context, id string, opts RenderOptions) (*Rendered, error)
	Delete(ctx context.Context, id string) error
}
