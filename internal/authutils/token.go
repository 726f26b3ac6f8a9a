package authutils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/heygogu/car-rental/internal/models"
)

const issuer = "car-rental"

// TokenManager подписывает и проверяет access-токены (HS256).
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// NewTokenManager creates a TokenManager. A zero ttl issues tokens without an
// exp claim. If logger is nil, a Noop logger is used.
func NewTokenManager(secret string, ttl time.Duration, logger *zap.Logger) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("JWT secret cannot be empty")
	}
	if ttl < 0 {
		return nil, fmt.Errorf("token ttl must not be negative, got %s", ttl)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger.Named("TokenManager"),
		now:    time.Now,
	}, nil
}

// Issue signs a token carrying the user's id and username.
func (m *TokenManager) Issue(userID uuid.UUID, username string) (string, error) {
	now := m.now()
	claims := &models.Claims{
		UserID:   userID.String(),
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			Subject:  userID.String(),
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if m.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		m.logger.Error("Failed to sign access token", zap.Error(err), zap.String("userID", userID.String()))
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and the registered claims of tokenString and
// returns the identity it carries. Errors are models.ErrTokenExpired,
// models.ErrTokenMalformed or models.ErrTokenInvalid.
func (m *TokenManager) Verify(tokenString string) (*models.AuthIdentity, error) {
	log := m.logger.With(zap.String("tokenSnippet", tokenSnippet(tokenString)))
	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		log.Debug("Failed to parse or verify token", zap.Error(err))
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, models.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, models.ErrTokenMalformed
		default:
			return nil, fmt.Errorf("%w: %v", models.ErrTokenInvalid, err)
		}
	}
	if !token.Valid {
		return nil, models.ErrTokenInvalid
	}

	if claims.UserID == "" || claims.Username == "" {
		log.Warn("Token payload is missing userId or username")
		return nil, fmt.Errorf("%w: incomplete payload", models.ErrTokenInvalid)
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		log.Warn("Token carries a non-UUID userId", zap.Error(err))
		return nil, fmt.Errorf("%w: bad userId", models.ErrTokenInvalid)
	}

	return &models.AuthIdentity{UserID: userID, Username: claims.Username}, nil
}

// tokenSnippet возвращает безопасную для логгирования часть токена.
func tokenSnippet(tokenString string) string {
	limit := 15
	if len(tokenString) > limit {
		return tokenString[:limit] + "..."
	}
	return tokenString
}
