package repository

import (
	"context"

	"docshare/internal/model"
)

// UserRepository defines data access for users using SQL queries only.
// No business logic here — strictly persistence operations.
type UserRepository interface {
	// Create inserts a new user record and returns the stored row.
	// A unique-constraint violation on username or email surfaces as the
	// driver's error; the service layer maps it.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByID returns a user by ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.User, error)

	// FindByEmail returns a user by email, or sql.ErrNoRows.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// FindByUsername returns a user by username, or sql.ErrNoRows.
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// Update persists mutable fields (username, email, profile image,
	// profile attributes) for an existing user.
	Update(ctx context.Context, u *model.User) (*model.User, error)
}
