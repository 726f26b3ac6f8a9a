package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/heygogu/car-rental/internal/interfaces"
	"github.com/heygogu/car-rental/internal/models"
)

// MockUserRepository is a mock type for the UserRepository type
type MockUserRepository struct {
	mock.Mock
}

// CreateUser provides a mock function with given fields: ctx, user
func (_m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	ret := _m.Called(ctx, user)
	if rf, ok := ret.Get(0).(func(context.Context, *models.User) error); ok {
		return rf(ctx, user)
	}
	return ret.Error(0)
}

// GetUserByUsername provides a mock function with given fields: ctx, username
func (_m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	ret := _m.Called(ctx, username)
	var r0 *models.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.User)
	}
	return r0, ret.Error(1)
}

// NewMockUserRepository creates a new instance of MockUserRepository and asserts its expectations on cleanup.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ interfaces.UserRepository = (*MockUserRepository)(nil)

// MockBookingRepository is a mock type for the BookingRepository type
type MockBookingRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, booking
func (_m *MockBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	ret := _m.Called(ctx, booking)
	if rf, ok := ret.Get(0).(func(context.Context, *models.Booking) error); ok {
		return rf(ctx, booking)
	}
	return ret.Error(0)
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	ret := _m.Called(ctx, id)
	return bookingOrNil(ret.Get(0)), ret.Error(1)
}

// GetByIDForUser provides a mock function with given fields: ctx, id, userID
func (_m *MockBookingRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Booking, error) {
	ret := _m.Called(ctx, id, userID)
	return bookingOrNil(ret.Get(0)), ret.Error(1)
}

// ListByUser provides a mock function with given fields: ctx, userID
func (_m *MockBookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	ret := _m.Called(ctx, userID)
	var r0 []models.Booking
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.Booking)
	}
	return r0, ret.Error(1)
}

// SummarizeByUser provides a mock function with given fields: ctx, userID, statuses
func (_m *MockBookingRepository) SummarizeByUser(ctx context.Context, userID uuid.UUID, statuses []models.BookingStatus) (*models.BookingSummary, error) {
	ret := _m.Called(ctx, userID, statuses)
	var r0 *models.BookingSummary
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.BookingSummary)
	}
	return r0, ret.Error(1)
}

// Update provides a mock function with given fields: ctx, id, userID, patch
func (_m *MockBookingRepository) Update(ctx context.Context, id, userID uuid.UUID, patch models.BookingPatch) (*models.Booking, error) {
	ret := _m.Called(ctx, id, userID, patch)
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, models.BookingPatch) (*models.Booking, error)); ok {
		return rf(ctx, id, userID, patch)
	}
	return bookingOrNil(ret.Get(0)), ret.Error(1)
}

// Delete provides a mock function with given fields: ctx, id, userID
func (_m *MockBookingRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	ret := _m.Called(ctx, id, userID)
	return ret.Error(0)
}

// NewMockBookingRepository creates a new instance of MockBookingRepository and asserts its expectations on cleanup.
func NewMockBookingRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBookingRepository {
	m := &MockBookingRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ interfaces.BookingRepository = (*MockBookingRepository)(nil)

// MockBookingEventPublisher is a mock type for the BookingEventPublisher type
type MockBookingEventPublisher struct {
	mock.Mock
}

// PublishBookingEvent provides a mock function with given fields: ctx, event
func (_m *MockBookingEventPublisher) PublishBookingEvent(ctx context.Context, event interfaces.BookingEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

var _ interfaces.BookingEventPublisher = (*MockBookingEventPublisher)(nil)

func bookingOrNil(v interface{}) *models.Booking {
	if v == nil {
		return nil
	}
	return v.(*models.Booking)
}
