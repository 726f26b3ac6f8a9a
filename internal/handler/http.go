package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/heygogu/car-rental/internal/models"
	"github.com/heygogu/car-rental/internal/service"
)

// TokenVerifier checks a bearer token and returns the identity it carries.
type TokenVerifier interface {
	Verify(tokenString string) (*models.AuthIdentity, error)
}

// Handler serves the auth and booking routes.
type Handler struct {
	authService    service.AuthService
	bookingService service.BookingService
	tokens         TokenVerifier
	logger         *zap.Logger
}

func NewHandler(authService service.AuthService, bookingService service.BookingService, tokens TokenVerifier, logger *zap.Logger) *Handler {
	return &Handler{
		authService:    authService,
		bookingService: bookingService,
		tokens:         tokens,
		logger:         logger.Named("Handler"),
	}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", h.signup)
		authGroup.POST("/login", h.login)
	}

	bookings := router.Group("/bookings")
	bookings.Use(h.AuthMiddleware())
	{
		bookings.POST("", h.createBooking)
		bookings.GET("", h.listBookings)
		bookings.PUT("/:bookingId", h.updateBooking)
		bookings.DELETE("/:bookingId", h.deleteBooking)
	}
}
