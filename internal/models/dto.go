package models

// --- Request schemas. Unknown keys are rejected by the decoder. ---

// CredentialsRequest is the body of signup and login.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,min=2,nonul"`
	Password string `json:"password" validate:"required,min=1"`
}

// CreateBookingRequest is the body of POST /bookings.
type CreateBookingRequest struct {
	CarName    string  `json:"carName" validate:"required,min=2,nonul"`
	Days       int     `json:"days" validate:"required,min=1,max=365"`
	RentPerDay float64 `json:"rentPerDay" validate:"required,gt=0,lte=2000"`
}

// UpdateBookingRequest is the body of PUT /bookings/:bookingId. Every field is optional.
type UpdateBookingRequest struct {
	CarName    *string        `json:"carName,omitempty" validate:"omitempty,min=2,nonul"`
	Days       *int           `json:"days,omitempty" validate:"omitempty,min=1,max=365"`
	RentPerDay *int           `json:"rentPerDay,omitempty" validate:"omitempty,min=1,max=2000"`
	Status     *BookingStatus `json:"status,omitempty" validate:"omitempty,oneof=Booked Completed Cancelled"`
}

// ToPatch converts the request into a BookingPatch.
func (r UpdateBookingRequest) ToPatch() BookingPatch {
	patch := BookingPatch{
		CarName: r.CarName,
		Days:    r.Days,
		Status:  r.Status,
	}
	if r.RentPerDay != nil {
		rent := float64(*r.RentPerDay)
		patch.RentPerDay = &rent
	}
	return patch
}

// --- Response payloads ---

// SignupData is returned by POST /auth/signup.
type SignupData struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// LoginData is returned by POST /auth/login.
type LoginData struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// BookingCreatedData is returned by POST /bookings.
type BookingCreatedData struct {
	Message   string  `json:"message"`
	BookingID string  `json:"bookingId"`
	TotalCost float64 `json:"totalCost"`
}

// BookingView is a full booking record as returned by GET /bookings.
type BookingView struct {
	Booking
	TotalCost float64 `json:"totalCost"`
}

// NewBookingView wraps a booking with its derived total cost.
func NewBookingView(b Booking) BookingView {
	return BookingView{Booking: b, TotalCost: b.TotalCost()}
}

// BookingSummaryData is returned by GET /bookings?summary=1.
type BookingSummaryData struct {
	UserID           string  `json:"userId"`
	Username         string  `json:"username"`
	TotalBookings    int64   `json:"totalBookings"`
	TotalAmountSpend float64 `json:"totalAmountSpend"`
}

// UpdatedBookingProjection is the snake_case projection returned after an update.
type UpdatedBookingProjection struct {
	ID         string        `json:"id"`
	CarName    string        `json:"car_name"`
	Days       int           `json:"days"`
	RentPerDay float64       `json:"rent_per_day"`
	Status     BookingStatus `json:"status"`
	TotalCost  float64       `json:"totalCost"`
}

// BookingUpdatedData is returned by PUT /bookings/:bookingId.
type BookingUpdatedData struct {
	Message string                   `json:"message"`
	Booking UpdatedBookingProjection `json:"booking"`
}
