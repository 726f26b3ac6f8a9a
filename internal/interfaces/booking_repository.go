package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/heygogu/car-rental/internal/models"
)

// BookingRepository defines the interface for booking persistence.
type BookingRepository interface {
	// Create inserts a booking and fills its ID, timestamps and default status.
	Create(ctx context.Context, booking *models.Booking) error

	// GetByID retrieves a booking regardless of owner.
	// Returns models.ErrBookingNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)

	// GetByIDForUser retrieves a booking only if it belongs to userID.
	// Returns models.ErrBookingNotFound otherwise.
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Booking, error)

	// ListByUser returns all bookings of userID, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)

	// SummarizeByUser counts bookings of userID with one of the given statuses
	// and sums days*rent_per_day over them.
	SummarizeByUser(ctx context.Context, userID uuid.UUID, statuses []models.BookingStatus) (*models.BookingSummary, error)

	// Update applies the non-nil fields of patch to the booking identified by
	// id and owned by userID, and returns the stored row.
	// Returns models.ErrBookingNotFound if no such row exists.
	Update(ctx context.Context, id, userID uuid.UUID, patch models.BookingPatch) (*models.Booking, error)

	// Delete removes the booking identified by id and owned by userID.
	// Returns models.ErrBookingNotFound if no row was deleted.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
