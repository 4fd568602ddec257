package ports

import (
	"context"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user entities.
// Users are managed outside the delivery lifecycle; the core only needs
// to store and look them up for assignment and ownership checks.
type UserRepository interface {
	// Add persists a new user entity to storage.
	Add(ctx context.Context, user *account.User) error

	// Get retrieves a user by its unique identifier.
	// Returns an ObjectNotFoundError when no such user exists.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)
}
