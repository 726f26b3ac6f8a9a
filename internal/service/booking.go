package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/heygogu/car-rental/internal/models"
)

// CreateBookingInput holds validated fields of a new booking.
type CreateBookingInput struct {
	CarName    string
	Days       int
	RentPerDay float64
}

// ListQuery selects the read mode of BookingService.List.
// Summary and BookingID are mutually exclusive.
type ListQuery struct {
	Summary   bool
	BookingID string
}

// ListMode tells which field of ListResult is populated.
type ListMode int

const (
	ListModeAll ListMode = iota
	ListModeSummary
	ListModeSingle
)

// ListResult is the outcome of BookingService.List.
type ListResult struct {
	Mode     ListMode
	Bookings []models.Booking
	Summary  *models.BookingSummary
	Booking  *models.Booking
}

// BookingService implements booking use cases scoped to the calling user.
type BookingService interface {
	Create(ctx context.Context, ownerID uuid.UUID, input CreateBookingInput) (*models.Booking, error)
	List(ctx context.Context, identity models.AuthIdentity, query ListQuery) (*ListResult, error)
	// Update returns models.ErrBookingNotFound if the booking does not exist and
	// models.ErrForbidden if it belongs to someone else.
	Update(ctx context.Context, bookingID string, ownerID uuid.UUID, patch models.BookingPatch) (*models.Booking, error)
	// Delete follows the same NotFound then Forbidden ordering as Update.
	Delete(ctx context.Context, bookingID string, ownerID uuid.UUID) error
}
