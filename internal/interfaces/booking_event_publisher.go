package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heygogu/car-rental/internal/models"
)

// BookingEventType names a booking lifecycle event.
type BookingEventType string

const (
	BookingEventCreated BookingEventType = "booking.created"
	BookingEventUpdated BookingEventType = "booking.updated"
	BookingEventDeleted BookingEventType = "booking.deleted"
)

// BookingEvent is published after a booking mutation has been committed.
type BookingEvent struct {
	Type       BookingEventType     `json:"type"`
	BookingID  uuid.UUID            `json:"bookingId"`
	UserID     uuid.UUID            `json:"userId"`
	Status     models.BookingStatus `json:"status,omitempty"`
	TotalCost  float64              `json:"totalCost"`
	OccurredAt time.Time            `json:"occurredAt"`
}

// BookingEventPublisher sends booking events to interested consumers.
type BookingEventPublisher interface {
	PublishBookingEvent(ctx context.Context, event BookingEvent) error
}
