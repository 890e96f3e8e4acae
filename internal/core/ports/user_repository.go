package ports

import (
	"context"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Create persists a new user and returns the stored aggregate with its
	// assigned identifier. Duplicate email, document or phone surface as a
	// conflict error with a stable code.
	Create(ctx context.Context, aggregate *user.User) (*user.User, error)

	// FindByID retrieves a user by identifier. Returns (nil, nil) when no
	// user matches.
	FindByID(ctx context.Context, id kernel.ID) (*user.User, error)

	// FindByEmail retrieves a user by normalized e-mail address.
	// Returns (nil, nil) when no user matches.
	FindByEmail(ctx context.Context, email kernel.Email) (*user.User, error)

	// FindByDocument retrieves a user by identity document number.
	// Returns (nil, nil) when no user matches.
	FindByDocument(ctx context.Context, documentNumber kernel.DocumentNumber) (*user.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Delete removes a user by identifier.
	Delete(ctx context.Context, id kernel.ID) error

	// FindAll retrieves one page of users.
	FindAll(ctx context.Context, request PageRequest) (Page[*user.User], error)
}
