package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/heygogu/car-rental/internal/interfaces"
	"github.com/heygogu/car-rental/internal/mocks"
	"github.com/heygogu/car-rental/internal/models"
	"github.com/heygogu/car-rental/internal/service"
)

func newBookingService(t *testing.T) (service.BookingService, *mocks.MockBookingRepository) {
	t.Helper()
	repo := mocks.NewMockBookingRepository(t)
	return service.NewBookingService(repo, nil, time.Second, zap.NewNop()), repo
}

func sampleBooking(owner uuid.UUID) *models.Booking {
	return &models.Booking{
		ID:         uuid.New(),
		UserID:     owner,
		CarName:    "Honda City",
		Days:       3,
		RentPerDay: 1500,
		Status:     models.BookingStatusBooked,
	}
}

func intPtr(v int) *int { return &v }

func TestCreate_TotalCostAndOwner(t *testing.T) {
	svc, repo := newBookingService(t)
	owner := uuid.New()

	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *models.Booking) bool {
		return b.UserID == owner && b.Status == models.BookingStatusBooked && b.CarName == "Swift"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Booking).ID = uuid.New()
	}).Return(nil).Once()

	b, err := svc.Create(context.Background(), owner, service.CreateBookingInput{CarName: "Swift", Days: 7, RentPerDay: 1999})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, 7*1999.0, b.TotalCost())
}

func TestCreate_PublishesEventBestEffort(t *testing.T) {
	repo := mocks.NewMockBookingRepository(t)
	pub := &mocks.MockBookingEventPublisher{}
	svc := service.NewBookingService(repo, pub, time.Second, zap.NewNop())
	owner := uuid.New()

	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	pub.On("PublishBookingEvent", mock.Anything, mock.MatchedBy(func(e interfaces.BookingEvent) bool {
		return e.Type == interfaces.BookingEventCreated && e.UserID == owner && e.TotalCost == 20
	})).Return(errors.New("broker down")).Once()

	_, err := svc.Create(context.Background(), owner, service.CreateBookingInput{CarName: "Alto", Days: 2, RentPerDay: 10})
	require.NoError(t, err)
	pub.AssertExpectations(t)
}

func TestList_Modes(t *testing.T) {
	identity := models.AuthIdentity{UserID: uuid.New(), Username: "rahul"}

	t.Run("all", func(t *testing.T) {
		svc, repo := newBookingService(t)
		repo.On("ListByUser", mock.Anything, identity.UserID).Return(nil, nil).Once()

		res, err := svc.List(context.Background(), identity, service.ListQuery{})
		require.NoError(t, err)
		assert.Equal(t, service.ListModeAll, res.Mode)
		assert.NotNil(t, res.Bookings)
		assert.Empty(t, res.Bookings)
	})

	t.Run("summary", func(t *testing.T) {
		svc, repo := newBookingService(t)
		summary := &models.BookingSummary{TotalBookings: 2, TotalAmountSpent: 4000}
		repo.On("SummarizeByUser", mock.Anything, identity.UserID, models.BillableStatuses).Return(summary, nil).Once()

		res, err := svc.List(context.Background(), identity, service.ListQuery{Summary: true})
		require.NoError(t, err)
		assert.Equal(t, service.ListModeSummary, res.Mode)
		assert.Equal(t, summary, res.Summary)
	})

	t.Run("single", func(t *testing.T) {
		svc, repo := newBookingService(t)
		b := sampleBooking(identity.UserID)
		repo.On("GetByIDForUser", mock.Anything, b.ID, identity.UserID).Return(b, nil).Once()

		res, err := svc.List(context.Background(), identity, service.ListQuery{BookingID: b.ID.String()})
		require.NoError(t, err)
		assert.Equal(t, service.ListModeSingle, res.Mode)
		assert.Equal(t, b, res.Booking)
	})

	t.Run("single not owned", func(t *testing.T) {
		svc, repo := newBookingService(t)
		id := uuid.New()
		repo.On("GetByIDForUser", mock.Anything, id, identity.UserID).Return(nil, models.ErrBookingNotFound).Once()

		_, err := svc.List(context.Background(), identity, service.ListQuery{BookingID: id.String()})
		assert.ErrorIs(t, err, models.ErrBookingNotFound)
	})

	t.Run("single malformed id", func(t *testing.T) {
		svc, _ := newBookingService(t)
		_, err := svc.List(context.Background(), identity, service.ListQuery{BookingID: "42"})
		assert.ErrorIs(t, err, models.ErrBookingNotFound)
	})

	t.Run("summary and bookingId together", func(t *testing.T) {
		svc, repo := newBookingService(t)
		_, err := svc.List(context.Background(), identity, service.ListQuery{Summary: true, BookingID: uuid.NewString()})
		assert.ErrorIs(t, err, models.ErrConflictingQuery)
		repo.AssertNotCalled(t, "SummarizeByUser", mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "GetByIDForUser", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdate_PartialKeepsOtherFields(t *testing.T) {
	svc, repo := newBookingService(t)
	owner := uuid.New()
	existing := sampleBooking(owner)
	patch := models.BookingPatch{Days: intPtr(10)}

	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil).Once()
	repo.On("Update", mock.Anything, existing.ID, owner, patch).
		Return(func(_ context.Context, _, _ uuid.UUID, p models.BookingPatch) (*models.Booking, error) {
			updated := *existing
			updated.Days = *p.Days
			return &updated, nil
		}).Once()

	updated, err := svc.Update(context.Background(), existing.ID.String(), owner, patch)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.Days)
	assert.Equal(t, "Honda City", updated.CarName)
	assert.Equal(t, 1500.0, updated.RentPerDay)
	assert.Equal(t, 15000.0, updated.TotalCost())
}

func TestUpdate_ForeignBookingIsForbidden(t *testing.T) {
	svc, repo := newBookingService(t)
	owner := uuid.New()
	intruder := uuid.New()
	existing := sampleBooking(owner)

	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil).Once()

	_, err := svc.Update(context.Background(), existing.ID.String(), intruder, models.BookingPatch{Days: intPtr(1)})
	assert.ErrorIs(t, err, models.ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_Errors(t *testing.T) {
	owner := uuid.New()

	t.Run("empty patch", func(t *testing.T) {
		svc, _ := newBookingService(t)
		_, err := svc.Update(context.Background(), uuid.NewString(), owner, models.BookingPatch{})
		assert.ErrorIs(t, err, models.ErrEmptyPatch)
	})

	t.Run("missing booking", func(t *testing.T) {
		svc, repo := newBookingService(t)
		id := uuid.New()
		repo.On("GetByID", mock.Anything, id).Return(nil, models.ErrBookingNotFound).Once()

		_, err := svc.Update(context.Background(), id.String(), owner, models.BookingPatch{Days: intPtr(2)})
		assert.ErrorIs(t, err, models.ErrBookingNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, _ := newBookingService(t)
		_, err := svc.Update(context.Background(), "not-a-uuid", owner, models.BookingPatch{Days: intPtr(2)})
		assert.ErrorIs(t, err, models.ErrBookingNotFound)
	})

	t.Run("store timeout", func(t *testing.T) {
		svc, repo := newBookingService(t)
		id := uuid.New()
		repo.On("GetByID", mock.Anything, id).Return(nil, fmt.Errorf("query: %w", context.DeadlineExceeded)).Once()

		_, err := svc.Update(context.Background(), id.String(), owner, models.BookingPatch{Days: intPtr(2)})
		assert.ErrorIs(t, err, models.ErrUnavailable)
	})
}

func TestDelete_TwiceIsNotFound(t *testing.T) {
	svc, repo := newBookingService(t)
	owner := uuid.New()
	existing := sampleBooking(owner)

	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil).Once()
	repo.On("Delete", mock.Anything, existing.ID, owner).Return(nil).Once()
	repo.On("GetByID", mock.Anything, existing.ID).Return(nil, models.ErrBookingNotFound).Once()

	require.NoError(t, svc.Delete(context.Background(), existing.ID.String(), owner))
	err := svc.Delete(context.Background(), existing.ID.String(), owner)
	assert.ErrorIs(t, err, models.ErrBookingNotFound)
}

func TestDelete_ForeignBookingIsForbidden(t *testing.T) {
	svc, repo := newBookingService(t)
	existing := sampleBooking(uuid.New())

	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil).Once()

	err := svc.Delete(context.Background(), existing.ID.String(), uuid.New())
	assert.ErrorIs(t, err, models.ErrForbidden)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}
