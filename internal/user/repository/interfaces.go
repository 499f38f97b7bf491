package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/reelmedia/reel/internal/user/domain"
)

// Repository defines the user persistence contract.
type Repository interface {
	// CreateUser inserts a new user
	CreateUser(ctx context.Context, user *domain.User) error

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetUserByUsername retrieves a user by username
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// UserExists checks whether a username is already taken
	UserExists(ctx context.Context, username string) (bool, error)
}
