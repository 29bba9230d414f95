package storage

import (
	"context"

	"github.com/iudanet/licauth/internal/models"
)

// UserStorage defines read access to user records
type UserStorage interface {
	// GetUserByEmail retrieves user by email
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves user by numeric ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// UserAdmin defines user mutations available to administrative tooling
type UserAdmin interface {
	UserStorage

	// CreateUser hashes the password and stores a new user with the next free ID
	// Returns ErrUserAlreadyExists if email is taken; existing record is never overwritten
	CreateUser(ctx context.Context, email, password string) (*models.User, error)

	// ListUsers returns all users in insertion order
	ListUsers(ctx context.Context) ([]models.User, error)
}
