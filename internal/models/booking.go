package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a booking.
// Booked -> Completed and Booked -> Cancelled; transitions are not enforced.
type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "Booked"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// BillableStatuses are counted by the booking summary.
var BillableStatuses = []BookingStatus{BookingStatusBooked, BookingStatusCompleted}

// IsValid reports whether s is one of the known statuses.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusBooked, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is a car rental made by a user.
type Booking struct {
	ID         uuid.UUID     `db:"id" json:"id"`
	UserID     uuid.UUID     `db:"user_id" json:"userId"`
	CarName    string        `db:"car_name" json:"carName"`
	Days       int           `db:"days" json:"days"`
	RentPerDay float64       `db:"rent_per_day" json:"rentPerDay"`
	Status     BookingStatus `db:"status" json:"status"`
	CreatedAt  time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time     `db:"updated_at" json:"updatedAt"`
}

// TotalCost is always derived from days and rentPerDay, never stored.
func (b *Booking) TotalCost() float64 {
	return float64(b.Days) * b.RentPerDay
}

// IsOwnedBy reports whether userID created the booking.
func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.UserID == userID
}

// BookingPatch holds the fields of a partial update. Nil fields are left untouched.
type BookingPatch struct {
	CarName    *string
	Days       *int
	RentPerDay *float64
	Status     *BookingStatus
}

// IsEmpty reports whether the patch carries no fields at all.
func (p BookingPatch) IsEmpty() bool {
	return p.CarName == nil && p.Days == nil && p.RentPerDay == nil && p.Status == nil
}

// BookingSummary aggregates a user's billable bookings.
type BookingSummary struct {
	TotalBookings    int64   `db:"total_bookings"`
	TotalAmountSpent float64 `db:"total_amount_spent"`
}
