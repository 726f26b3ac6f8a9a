package interfaces

import (
	"context"

	"github.com/heygogu/car-rental/internal/models"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// CreateUser inserts a new user and fills user.ID and user.CreatedAt.
	// Returns models.ErrUserAlreadyExists if the username is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by their username.
	// Returns models.ErrUserNotFound if the user does not exist.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}
