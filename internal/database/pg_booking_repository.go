package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/heygogu/car-rental/internal/interfaces"
	"github.com/heygogu/car-rental/internal/models"
)

// Compile-time check to ensure pgBookingRepository implements BookingRepository
var _ interfaces.BookingRepository = (*pgBookingRepository)(nil)

const bookingColumns = `id, user_id, car_name, days, rent_per_day, status::text AS status, created_at, updated_at`

type pgBookingRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgBookingRepository creates a new PostgreSQL-backed BookingRepository.
func NewPgBookingRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.BookingRepository {
	return &pgBookingRepository{
		db:     db,
		logger: logger.Named("PgBookingRepo"),
	}
}

// Create inserts a booking owned by booking.UserID.
func (r *pgBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	if booking.Status == "" {
		booking.Status = models.BookingStatusBooked
	}
	query := `INSERT INTO bookings (user_id, car_name, days, rent_per_day, status)
		VALUES ($1, $2, $3, $4, $5::booking_status)
		RETURNING ` + bookingColumns
	log := r.logger.With(zap.String("userID", booking.UserID.String()), zap.String("carName", booking.CarName))
	log.Debug("Executing query", zap.String("query", query))

	if err := pgxscan.Get(ctx, r.db, booking, query,
		booking.UserID, booking.CarName, booking.Days, booking.RentPerDay, string(booking.Status),
	); err != nil {
		if pgErr, ok := isInvalidDataError(err); ok {
			log.Warn("Postgres rejected booking data", zap.String("code", pgErr.Code), zap.String("detail", pgErr.Message))
			return fmt.Errorf("failed to create booking: %w", models.ErrInvalidInput)
		}
		log.Error("Failed to create booking in postgres", zap.Error(err))
		return fmt.Errorf("failed to create booking in postgres: %w", err)
	}

	log.Info("Booking created", zap.String("bookingID", booking.ID.String()))
	return nil
}

// GetByID retrieves a booking by id without scoping it to an owner.
func (r *pgBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByIDForUser retrieves a booking by id only if userID owns it.
func (r *pgBookingRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 AND user_id = $2`
	return r.getOne(ctx, query, id, userID)
}

func (r *pgBookingRepository) getOne(ctx context.Context, query string, args ...interface{}) (*models.Booking, error) {
	r.logger.Debug("Executing query", zap.String("query", query), zap.Any("args", args))

	booking := &models.Booking{}
	if err := pgxscan.Get(ctx, r.db, booking, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, models.ErrBookingNotFound
		}
		r.logger.Error("Failed to get booking from postgres", zap.Error(err), zap.Any("args", args))
		return nil, fmt.Errorf("failed to get booking from postgres: %w", err)
	}
	return booking, nil
}

// ListByUser returns all bookings of userID ordered by creation time, newest first.
func (r *pgBookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("userID", userID.String()))

	bookings := make([]models.Booking, 0)
	if err := pgxscan.Select(ctx, r.db, &bookings, query, userID); err != nil {
		r.logger.Error("Failed to list bookings from postgres", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// SummarizeByUser aggregates the bookings of userID whose status is in statuses.
func (r *pgBookingRepository) SummarizeByUser(ctx context.Context, userID uuid.UUID, statuses []models.BookingStatus) (*models.BookingSummary, error) {
	query := `SELECT COUNT(*) AS total_bookings,
			COALESCE(SUM(days * rent_per_day), 0)::double precision AS total_amount_spent
		FROM bookings
		WHERE user_id = $1 AND status::text = ANY($2)`
	r.logger.Debug("Executing query", zap.String("query", query), zap.String("userID", userID.String()))

	statusNames := make([]string, 0, len(statuses))
	for _, s := range statuses {
		statusNames = append(statusNames, string(s))
	}

	summary := &models.BookingSummary{}
	if err := pgxscan.Get(ctx, r.db, summary, query, userID, statusNames); err != nil {
		r.logger.Error("Failed to summarize bookings", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("failed to summarize bookings: %w", err)
	}
	return summary, nil
}

// Update applies only the non-nil fields of patch. Fields left nil keep their stored values.
func (r *pgBookingRepository) Update(ctx context.Context, id, userID uuid.UUID, patch models.BookingPatch) (*models.Booking, error) {
	if patch.IsEmpty() {
		return nil, models.ErrEmptyPatch
	}

	setClauses := []string{"updated_at = CURRENT_TIMESTAMP"}
	args := []interface{}{}
	argID := 1

	if patch.CarName != nil {
		setClauses = append(setClauses, fmt.Sprintf("car_name = $%d", argID))
		args = append(args, *patch.CarName)
		argID++
	}
	if patch.Days != nil {
		setClauses = append(setClauses, fmt.Sprintf("days = $%d", argID))
		args = append(args, *patch.Days)
		argID++
	}
	if patch.RentPerDay != nil {
		setClauses = append(setClauses, fmt.Sprintf("rent_per_day = $%d", argID))
		args = append(args, *patch.RentPerDay)
		argID++
	}
	if patch.Status != nil {
		setClauses = append(setClauses, fmt.Sprintf("status = $%d::booking_status", argID))
		args = append(args, string(*patch.Status))
		argID++
	}

	query := fmt.Sprintf(`UPDATE bookings SET %s WHERE id = $%d AND user_id = $%d RETURNING %s`,
		strings.Join(setClauses, ", "), argID, argID+1, bookingColumns)
	args = append(args, id, userID)

	log := r.logger.With(zap.String("bookingID", id.String()), zap.String("userID", userID.String()))
	log.Debug("Executing query", zap.String("query", query))

	booking := &models.Booking{}
	if err := pgxscan.Get(ctx, r.db, booking, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			log.Warn("Booking vanished before update")
			return nil, models.ErrBookingNotFound
		}
		if pgErr, ok := isInvalidDataError(err); ok {
			log.Warn("Postgres rejected booking patch", zap.String("code", pgErr.Code), zap.String("detail", pgErr.Message))
			return nil, fmt.Errorf("failed to update booking: %w", models.ErrInvalidInput)
		}
		log.Error("Failed to update booking", zap.Error(err))
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	log.Info("Booking updated")
	return booking, nil
}

// Delete removes the booking identified by id and owned by userID.
func (r *pgBookingRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1 AND user_id = $2`
	log := r.logger.With(zap.String("bookingID", id.String()), zap.String("userID", userID.String()))
	log.Debug("Executing query", zap.String("query", query))

	cmdTag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		log.Error("Failed to delete booking", zap.Error(err))
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		log.Warn("Attempted to delete non-existent booking")
		return models.ErrBookingNotFound
	}

	log.Info("Booking deleted")
	return nil
}
