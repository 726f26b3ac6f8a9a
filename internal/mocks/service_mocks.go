package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/heygogu/car-rental/internal/models"
	"github.com/heygogu/car-rental/internal/service"
)

// MockAuthService is a mock type for the AuthService type
type MockAuthService struct {
	mock.Mock
}

func (_m *MockAuthService) Signup(ctx context.Context, username, password string) (uuid.UUID, error) {
	ret := _m.Called(ctx, username, password)
	return ret.Get(0).(uuid.UUID), ret.Error(1)
}

func (_m *MockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	ret := _m.Called(ctx, username, password)
	return ret.String(0), ret.Error(1)
}

var _ service.AuthService = (*MockAuthService)(nil)

// MockBookingService is a mock type for the BookingService type
type MockBookingService struct {
	mock.Mock
}

func (_m *MockBookingService) Create(ctx context.Context, ownerID uuid.UUID, input service.CreateBookingInput) (*models.Booking, error) {
	ret := _m.Called(ctx, ownerID, input)
	return bookingOrNil(ret.Get(0)), ret.Error(1)
}

func (_m *MockBookingService) List(ctx context.Context, identity models.AuthIdentity, query service.ListQuery) (*service.ListResult, error) {
	ret := _m.Called(ctx, identity, query)
	var r0 *service.ListResult
	if v := ret.Get(0); v != nil {
		r0 = v.(*service.ListResult)
	}
	return r0, ret.Error(1)
}

func (_m *MockBookingService) Update(ctx context.Context, bookingID string, ownerID uuid.UUID, patch models.BookingPatch) (*models.Booking, error) {
	ret := _m.Called(ctx, bookingID, ownerID, patch)
	return bookingOrNil(ret.Get(0)), ret.Error(1)
}

func (_m *MockBookingService) Delete(ctx context.Context, bookingID string, ownerID uuid.UUID) error {
	ret := _m.Called(ctx, bookingID, ownerID)
	return ret.Error(0)
}

var _ service.BookingService = (*MockBookingService)(nil)

// MockPasswordHasher is a mock type for the PasswordHasher type
type MockPasswordHasher struct {
	mock.Mock
}

func (_m *MockPasswordHasher) Hash(password string) (string, error) {
	ret := _m.Called(password)
	return ret.String(0), ret.Error(1)
}

func (_m *MockPasswordHasher) Check(password, hash string) bool {
	ret := _m.Called(password, hash)
	return ret.Bool(0)
}

var _ service.PasswordHasher = (*MockPasswordHasher)(nil)
