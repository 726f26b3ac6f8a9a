package models

import "errors"

// Application-wide standard errors
var (
	// User & Authentication Errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden") // Authenticated, but not the owner

	// Token Errors
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token has expired")

	// Booking Errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrEmptyPatch       = errors.New("no fields provided to update")
	ErrConflictingQuery = errors.New("cannot use summary and bookingId together")

	// General Request/Server Errors
	ErrInvalidInput   = errors.New("invalid input data")
	ErrUnavailable    = errors.New("service temporarily unavailable")
	ErrInternalServer = errors.New("internal server error")
)
