package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/heygogu/car-rental/internal/interfaces"
	"github.com/heygogu/car-rental/internal/models"
)

// Compile-time check to ensure authServiceImpl implements AuthService
var _ AuthService = (*authServiceImpl)(nil)

type authServiceImpl struct {
	userRepo interfaces.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	timeout  time.Duration
	logger   *zap.Logger

	dummyOnce sync.Once
	dummyHash string
}

// dummyPassword is hashed once and compared against when the username is
// unknown, so both login failures cost one bcrypt comparison.
const dummyPassword = "car-rental-login-timing-equalizer"

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo interfaces.UserRepository, hasher PasswordHasher, tokens TokenIssuer, timeout time.Duration, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		timeout:  timeout,
		logger:   logger.Named("AuthService"),
	}
}

// Signup hashes the password and stores the user. Uniqueness is left to the
// store: a concurrent duplicate surfaces as models.ErrUserAlreadyExists.
func (s *authServiceImpl) Signup(ctx context.Context, username, password string) (uuid.UUID, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	log := s.logger.With(zap.String("username", username))
	log.Info("Registering new user")

	hash, err := s.hasher.Hash(password)
	if err != nil {
		log.Error("Failed to hash password during signup", zap.Error(err))
		return uuid.Nil, fmt.Errorf("signup: %w", err)
	}

	user := &models.User{Username: username, PasswordHash: hash}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, models.ErrUserAlreadyExists) {
			log.Warn("Signup attempt for existing username")
			return uuid.Nil, err
		}
		log.Error("Failed to create user via repository", zap.Error(err))
		return uuid.Nil, mapTimeout(fmt.Errorf("signup: %w", err))
	}

	log.Info("User registered successfully", zap.String("userID", user.ID.String()))
	return user.ID, nil
}

// Login checks the credentials and issues a token. Unknown users and wrong
// passwords return the same error.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	log := s.logger.With(zap.String("username", username))
	log.Info("Login attempt")

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Warn("Login failed: user not found")
			s.hasher.Check(password, s.timingHash())
			return "", models.ErrInvalidCredentials
		}
		log.Error("Login failed: error getting user from repository", zap.Error(err))
		return "", mapTimeout(fmt.Errorf("failed to get user: %w", err))
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		log.Warn("Login failed: invalid password", zap.String("userID", user.ID.String()))
		return "", models.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		log.Error("Failed to issue token during login", zap.Error(err))
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	log.Info("User logged in successfully", zap.String("userID", user.ID.String()))
	return token, nil
}

func (s *authServiceImpl) timingHash() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash(dummyPassword)
		if err != nil {
			s.logger.Error("Failed to prepare dummy password hash", zap.Error(err))
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}
