package user

import "context"

// Repository defines the interface for account data operations.
type Repository interface {
	// Create creates a new account.
	Create(ctx context.Context, user *User) error

	// GetByID retrieves an account by internal ID.
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByUsername retrieves an account by username.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Update updates an existing account.
	Update(ctx context.Context, user *User) error

	// Delete removes an account by internal ID.
	Delete(ctx context.Context, id uint) error

	// ExistsByUsername checks if an account exists with the given username.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
