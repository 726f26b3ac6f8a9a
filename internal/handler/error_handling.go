package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/heygogu/car-rental/internal/models"
)

const (
	msgInvalidInputs     = "invalid inputs"
	msgNoFieldsToUpdate  = "no fields provided to update"
	msgConflictingQuery  = "Cannot use summary and bookingId together"
	msgInvalidCreds      = "Invalid username or password"
	msgTokenInvalid      = "Token Invalid"
	msgUsernameTaken     = "username already exists"
	msgBookingNotFound   = "booking not found"
	msgBookingIDNotFound = "bookingId not found"
	msgNotOwner          = "booking does not belong to user"
	msgUnavailable       = "Service temporarily unavailable, please retry"
	msgInternal          = "Internal server error"
)

// handleServiceError maps an error to its HTTP status and a client-safe message
// and aborts the request. Unknown errors are logged and reported as 500.
func handleServiceError(c *gin.Context, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, models.ErrEmptyPatch):
		statusCode, message = http.StatusBadRequest, msgNoFieldsToUpdate
	case errors.Is(err, models.ErrConflictingQuery):
		statusCode, message = http.StatusBadRequest, msgConflictingQuery
	case errors.Is(err, models.ErrInvalidInput):
		statusCode, message = http.StatusBadRequest, msgInvalidInputs
	case errors.Is(err, models.ErrInvalidCredentials):
		statusCode, message = http.StatusUnauthorized, msgInvalidCreds
	case errors.Is(err, models.ErrUnauthorized),
		errors.Is(err, models.ErrTokenInvalid),
		errors.Is(err, models.ErrTokenMalformed),
		errors.Is(err, models.ErrTokenExpired):
		statusCode, message = http.StatusUnauthorized, msgTokenInvalid
	case errors.Is(err, models.ErrForbidden):
		statusCode, message = http.StatusForbidden, msgNotOwner
	case errors.Is(err, models.ErrBookingNotFound):
		statusCode, message = http.StatusNotFound, msgBookingNotFound
	case errors.Is(err, models.ErrUserAlreadyExists):
		statusCode, message = http.StatusConflict, msgUsernameTaken
	case errors.Is(err, models.ErrUnavailable):
		zap.L().Warn("Service unavailable", zap.Error(err), zap.String("path", c.FullPath()))
		statusCode, message = http.StatusServiceUnavailable, msgUnavailable
	default:
		zap.L().Error("Unhandled internal error in handleServiceError", zap.Error(err), zap.String("path", c.FullPath()))
		statusCode, message = http.StatusInternalServerError, msgInternal
	}

	c.AbortWithStatusJSON(statusCode, models.NewErrorResponse(message))
}
