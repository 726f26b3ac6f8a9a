package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/heygogu/car-rental/internal/models"
	"github.com/heygogu/car-rental/internal/validation"
)

func (h *Handler) signup(c *gin.Context) {
	var req models.CredentialsRequest
	if err := validation.DecodeJSON(c.Request.Body, &req); err != nil {
		h.logger.Debug("Invalid signup payload", zap.Error(err), zap.Strings("fields", validation.FieldErrors(err)))
		handleServiceError(c, err)
		return
	}

	userID, err := h.authService.Signup(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	signupsTotal.Inc()
	c.JSON(http.StatusCreated, models.NewSuccessResponse(models.SignupData{
		Message: "User created successfully",
		UserID:  userID.String(),
	}))
}

func (h *Handler) login(c *gin.Context) {
	var req models.CredentialsRequest
	if err := validation.DecodeJSON(c.Request.Body, &req); err != nil {
		h.logger.Debug("Invalid login payload", zap.Error(err), zap.Strings("fields", validation.FieldErrors(err)))
		handleServiceError(c, err)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			loginsTotal.WithLabelValues("failure").Inc()
		} else {
			loginsTotal.WithLabelValues("error").Inc()
		}
		handleServiceError(c, err)
		return
	}

	loginsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, models.NewSuccessResponse(models.LoginData{
		Message: "Login successful",
		Token:   token,
	}))
}
