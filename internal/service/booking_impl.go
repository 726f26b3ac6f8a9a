package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/heygogu/car-rental/internal/interfaces"
	"github.com/heygogu/car-rental/internal/models"
)

// Compile-time check to ensure bookingServiceImpl implements BookingService
var _ BookingService = (*bookingServiceImpl)(nil)

const publishTimeout = 2 * time.Second

type bookingServiceImpl struct {
	repo      interfaces.BookingRepository
	publisher interfaces.BookingEventPublisher
	timeout   time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

// NewBookingService creates a new BookingService. publisher may be nil.
func NewBookingService(repo interfaces.BookingRepository, publisher interfaces.BookingEventPublisher, timeout time.Duration, logger *zap.Logger) BookingService {
	return &bookingServiceImpl{
		repo:      repo,
		publisher: publisher,
		timeout:   timeout,
		logger:    logger.Named("BookingService"),
		now:       time.Now,
	}
}

func (s *bookingServiceImpl) Create(ctx context.Context, ownerID uuid.UUID, input CreateBookingInput) (*models.Booking, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	log := s.logger.With(zap.String("userID", ownerID.String()))

	booking := &models.Booking{
		UserID:     ownerID,
		CarName:    input.CarName,
		Days:       input.Days,
		RentPerDay: input.RentPerDay,
		Status:     models.BookingStatusBooked,
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		log.Error("Failed to create booking", zap.Error(err))
		return nil, mapTimeout(fmt.Errorf("create booking: %w", err))
	}

	log.Info("Booking created", zap.String("bookingID", booking.ID.String()), zap.Float64("totalCost", booking.TotalCost()))
	s.publish(ctx, interfaces.BookingEventCreated, booking)
	return booking, nil
}

func (s *bookingServiceImpl) List(ctx context.Context, identity models.AuthIdentity, query ListQuery) (*ListResult, error) {
	if query.Summary && query.BookingID != "" {
		return nil, models.ErrConflictingQuery
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	log := s.logger.With(zap.String("userID", identity.UserID.String()))

	switch {
	case query.Summary:
		summary, err := s.repo.SummarizeByUser(ctx, identity.UserID, models.BillableStatuses)
		if err != nil {
			log.Error("Failed to summarize bookings", zap.Error(err))
			return nil, mapTimeout(fmt.Errorf("summarize bookings: %w", err))
		}
		return &ListResult{Mode: ListModeSummary, Summary: summary}, nil

	case query.BookingID != "":
		bookingID, err := uuid.Parse(query.BookingID)
		if err != nil {
			log.Debug("Malformed bookingId in query", zap.String("bookingId", query.BookingID))
			return nil, models.ErrBookingNotFound
		}
		booking, err := s.repo.GetByIDForUser(ctx, bookingID, identity.UserID)
		if err != nil {
			if errors.Is(err, models.ErrBookingNotFound) {
				return nil, err
			}
			log.Error("Failed to get booking", zap.Error(err), zap.String("bookingID", bookingID.String()))
			return nil, mapTimeout(fmt.Errorf("get booking: %w", err))
		}
		return &ListResult{Mode: ListModeSingle, Booking: booking}, nil

	default:
		bookings, err := s.repo.ListByUser(ctx, identity.UserID)
		if err != nil {
			log.Error("Failed to list bookings", zap.Error(err))
			return nil, mapTimeout(fmt.Errorf("list bookings: %w", err))
		}
		if bookings == nil {
			bookings = []models.Booking{}
		}
		return &ListResult{Mode: ListModeAll, Bookings: bookings}, nil
	}
}

func (s *bookingServiceImpl) Update(ctx context.Context, bookingID string, ownerID uuid.UUID, patch models.BookingPatch) (*models.Booking, error) {
	if patch.IsEmpty() {
		return nil, models.ErrEmptyPatch
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	id, err := s.authorize(ctx, bookingID, ownerID)
	if err != nil {
		return nil, err
	}

	log := s.logger.With(zap.String("bookingID", id.String()), zap.String("userID", ownerID.String()))
	updated, err := s.repo.Update(ctx, id, ownerID, patch)
	if err != nil {
		if errors.Is(err, models.ErrBookingNotFound) {
			return nil, err
		}
		log.Error("Failed to update booking", zap.Error(err))
		return nil, mapTimeout(fmt.Errorf("update booking: %w", err))
	}

	log.Info("Booking updated", zap.Float64("totalCost", updated.TotalCost()))
	s.publish(ctx, interfaces.BookingEventUpdated, updated)
	return updated, nil
}

func (s *bookingServiceImpl) Delete(ctx context.Context, bookingID string, ownerID uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	id, err := s.authorize(ctx, bookingID, ownerID)
	if err != nil {
		return err
	}

	log := s.logger.With(zap.String("bookingID", id.String()), zap.String("userID", ownerID.String()))
	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		if errors.Is(err, models.ErrBookingNotFound) {
			return err
		}
		log.Error("Failed to delete booking", zap.Error(err))
		return mapTimeout(fmt.Errorf("delete booking: %w", err))
	}

	log.Info("Booking deleted")
	s.publish(ctx, interfaces.BookingEventDeleted, &models.Booking{ID: id, UserID: ownerID})
	return nil
}

// authorize loads the booking without owner scoping so that a missing booking
// (404) is told apart from someone else's booking (403).
func (s *bookingServiceImpl) authorize(ctx context.Context, bookingID string, ownerID uuid.UUID) (uuid.UUID, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return uuid.Nil, models.ErrBookingNotFound
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrBookingNotFound) {
			return uuid.Nil, err
		}
		s.logger.Error("Failed to load booking for ownership check", zap.Error(err), zap.String("bookingID", id.String()))
		return uuid.Nil, mapTimeout(fmt.Errorf("get booking: %w", err))
	}

	if !booking.IsOwnedBy(ownerID) {
		s.logger.Warn("Booking access denied: not the owner",
			zap.String("bookingID", id.String()),
			zap.String("userID", ownerID.String()),
		)
		return uuid.Nil, models.ErrForbidden
	}
	return id, nil
}

// publish sends a booking event. Failures are logged only, the mutation is already committed.
func (s *bookingServiceImpl) publish(ctx context.Context, eventType interfaces.BookingEventType, booking *models.Booking) {
	if s.publisher == nil {
		return
	}
	event := interfaces.BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		Status:     booking.Status,
		TotalCost:  booking.TotalCost(),
		OccurredAt: s.now().UTC(),
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.publisher.PublishBookingEvent(pubCtx, event); err != nil {
		s.logger.Warn("Failed to publish booking event",
			zap.Error(err),
			zap.String("type", string(eventType)),
			zap.String("bookingID", booking.ID.String()),
		)
	}
}
