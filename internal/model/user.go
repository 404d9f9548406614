package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines store operations for user accounts. Every operation is
// transactional on a single name; implementations are not required to be
// safe for concurrent use.
type UserStore interface {
	GetByName(ctx context.Context, name string) (User, error)
	Create(ctx context.Context, user User) (User, error)
	SetVerified(ctx context.Context, name string) (User, error)
	UpdatePassword(ctx context.Context, name, oldPassword, newPassword string) (User, error)
	Delete(ctx context.Context, name string) error
}

// User represents a stored user account. Name is the unique key.
type User struct {
	ID        uuid.UUID
	Name      string
	Password  string
	Verified  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
