package staff

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("staff member not found")

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleWaiter  Role = "waiter"
	RoleKitchen Role = "kitchen"
)

type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateRequest struct {
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Active *bool  `json:"active"`
}

type UpdateRequest struct {
	Name   *string `json:"name"`
	Role   *Role   `json:"role"`
	Phone  *string `json:"phone"`
	Email  *string `json:"email"`
	Active *bool   `json:"active"`
}

type IStaffRepository interface {
	Create(ctx context.Context, m *Member) error
	GetByID(ctx context.Context, id string) (*Member, error)
	List(ctx context.Context) ([]Member, error)
	Update(ctx context.Context, m *Member) error
	Delete(ctx context.Context, id string) error
}

type IStaffUsecase interface {
	List(ctx context.Context) ([]Member, error)
	Create(ctx context.Context, req CreateRequest) (*Member, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Member, error)
	Delete(ctx context.Context, id string) error
}
