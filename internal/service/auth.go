package service

import (
	"context"

	"github.com/google/uuid"
)

// AuthService defines signup and login.
type AuthService interface {
	// Signup creates a user and returns its id. Duplicate usernames fail with
	// models.ErrUserAlreadyExists.
	Signup(ctx context.Context, username, password string) (uuid.UUID, error)
	// Login returns a signed token for valid credentials, models.ErrInvalidCredentials otherwise.
	Login(ctx context.Context, username, password string) (string, error)
}

// TokenIssuer signs tokens carrying the identity of a user.
type TokenIssuer interface {
	Issue(userID uuid.UUID, username string) (string, error)
}
