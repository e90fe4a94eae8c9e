// Package repository declares the storage interfaces the services
// depend on. Implementations live under internal/infra/persistence.
package repository

import (
	"context"
	"time"

	"github.com/MaxwellLZH/data-science-interview-problems/internal/domain"
)

// UserRepository stores and retrieves user accounts.
type UserRepository interface {
	// FindByUsername looks a user up by exact, case-sensitive username.
	// Returns ErrUserNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindByID returns ErrUserNotFound when no such user exists.
	FindByID(ctx context.Context, id uint) (*domain.User, error)

	// Save creates the user when ID is zero, updates otherwise.
	// Returns ErrDuplicateEntry on a username collision.
	Save(ctx context.Context, user *domain.User) error

	// UpdateLastSeen sets the user's last-seen timestamp without
	// touching any other column.
	UpdateLastSeen(ctx context.Context, userID uint, at time.Time) error
}
