package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/heygogu/car-rental/internal/models"
)

const identityKey = "identity"

// AuthMiddleware verifies the bearer token and stores the caller identity in
// both the gin and the request context. On failure it aborts with a single
// 401 response and the rest of the chain never runs.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewErrorResponse("Authorization header missing"))
			return
		}

		scheme, token, _ := strings.Cut(strings.TrimSpace(authHeader), " ")
		if !strings.EqualFold(scheme, "bearer") {
			h.logger.Warn("Invalid Authorization header format")
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewErrorResponse(msgTokenInvalid))
			return
		}
		token = strings.TrimSpace(token)
		if token == "" {
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewErrorResponse("Token missing after Bearer"))
			return
		}

		identity, err := h.tokens.Verify(token)
		if err != nil {
			h.logger.Warn("Access token verification failed", zap.Error(err))
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewErrorResponse(msgTokenInvalid))
			return
		}

		tokenVerificationsTotal.WithLabelValues("success").Inc()
		c.Set(identityKey, *identity)
		c.Request = c.Request.WithContext(models.WithIdentity(c.Request.Context(), *identity))
		c.Next()
	}
}

// identityFrom returns the identity stored by AuthMiddleware.
func identityFrom(c *gin.Context) (models.AuthIdentity, bool) {
	if v, ok := c.Get(identityKey); ok {
		identity, ok := v.(models.AuthIdentity)
		return identity, ok
	}
	return models.IdentityFromContext(c.Request.Context())
}

// requireIdentity aborts with 401 when the route is reached without an identity.
func requireIdentity(c *gin.Context) (models.AuthIdentity, bool) {
	identity, ok := identityFrom(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
	}
	return identity, ok
}
