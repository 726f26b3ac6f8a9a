package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/heygogu/car-rental/internal/models"
	"github.com/heygogu/car-rental/internal/service"
	"github.com/heygogu/car-rental/internal/validation"
)

func (h *Handler) createBooking(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req models.CreateBookingRequest
	if err := validation.DecodeJSON(c.Request.Body, &req); err != nil {
		h.logger.Debug("Invalid booking payload", zap.Error(err), zap.Strings("fields", validation.FieldErrors(err)))
		handleServiceError(c, err)
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), identity.UserID, service.CreateBookingInput{
		CarName:    req.CarName,
		Days:       req.Days,
		RentPerDay: req.RentPerDay,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	bookingMutationsTotal.WithLabelValues("create").Inc()
	c.JSON(http.StatusCreated, models.NewSuccessResponse(models.BookingCreatedData{
		Message:   "Booking created successfully",
		BookingID: booking.ID.String(),
		TotalCost: booking.TotalCost(),
	}))
}

func (h *Handler) listBookings(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	query := service.ListQuery{
		Summary:   c.Query("summary") != "",
		BookingID: c.Query("bookingId"),
	}

	result, err := h.bookingService.List(c.Request.Context(), identity, query)
	if err != nil {
		if errors.Is(err, models.ErrBookingNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, models.NewErrorResponse(msgBookingIDNotFound))
			return
		}
		handleServiceError(c, err)
		return
	}

	switch result.Mode {
	case service.ListModeSummary:
		c.JSON(http.StatusOK, models.NewSuccessResponse(models.BookingSummaryData{
			UserID:           identity.UserID.String(),
			Username:         identity.Username,
			TotalBookings:    result.Summary.TotalBookings,
			TotalAmountSpend: result.Summary.TotalAmountSpent,
		}))
	case service.ListModeSingle:
		c.JSON(http.StatusOK, models.NewSuccessResponse(models.NewBookingView(*result.Booking)))
	default:
		views := make([]models.BookingView, 0, len(result.Bookings))
		for _, b := range result.Bookings {
			views = append(views, models.NewBookingView(b))
		}
		c.JSON(http.StatusOK, models.NewSuccessResponse(views))
	}
}

func (h *Handler) updateBooking(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req models.UpdateBookingRequest
	if err := validation.DecodeJSON(c.Request.Body, &req); err != nil {
		h.logger.Debug("Invalid booking update payload", zap.Error(err), zap.Strings("fields", validation.FieldErrors(err)))
		handleServiceError(c, err)
		return
	}
	patch := req.ToPatch()
	if patch.IsEmpty() {
		handleServiceError(c, models.ErrEmptyPatch)
		return
	}

	booking, err := h.bookingService.Update(c.Request.Context(), c.Param("bookingId"), identity.UserID, patch)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	bookingMutationsTotal.WithLabelValues("update").Inc()
	c.JSON(http.StatusOK, models.NewSuccessResponse(models.BookingUpdatedData{
		Message: "Booking updated successfully",
		Booking: models.UpdatedBookingProjection{
			ID:         booking.ID.String(),
			CarName:    booking.CarName,
			Days:       booking.Days,
			RentPerDay: booking.RentPerDay,
			Status:     booking.Status,
			TotalCost:  booking.TotalCost(),
		},
	}))
}

func (h *Handler) deleteBooking(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	if err := h.bookingService.Delete(c.Request.Context(), c.Param("bookingId"), identity.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	bookingMutationsTotal.WithLabelValues("delete").Inc()
	c.JSON(http.StatusOK, models.NewSuccessResponse(models.MessageData{Message: "Booking deleted successfully"}))
}
