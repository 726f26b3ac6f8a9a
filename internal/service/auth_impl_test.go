package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/heygogu/car-rental/internal/authutils"
	"github.com/heygogu/car-rental/internal/mocks"
	"github.com/heygogu/car-rental/internal/models"
	"github.com/heygogu/car-rental/internal/service"
)

func newAuthService(t *testing.T, repo *mocks.MockUserRepository, hasher service.PasswordHasher) (service.AuthService, *authutils.TokenManager) {
	t.Helper()
	tm, err := authutils.NewTokenManager("unit-test-secret", 0, zap.NewNop())
	require.NoError(t, err)
	if hasher == nil {
		hasher = service.NewBcryptHasher(bcrypt.MinCost)
	}
	return service.NewAuthService(repo, hasher, tm, time.Second, zap.NewNop()), tm
}

func TestSignup_Success(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	svc, _ := newAuthService(t, repo, nil)
	newID := uuid.New()

	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Username == "rahul" &&
			u.PasswordHash != "secret" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")) == nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.User).ID = newID
	}).Return(nil).Once()

	id, err := svc.Signup(context.Background(), "rahul", "secret")
	require.NoError(t, err)
	assert.Equal(t, newID, id)
}

func TestSignup_DuplicateUsername(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	svc, _ := newAuthService(t, repo, nil)

	repo.On("CreateUser", mock.Anything, mock.Anything).Return(models.ErrUserAlreadyExists).Once()

	id, err := svc.Signup(context.Background(), "rahul", "secret")
	assert.ErrorIs(t, err, models.ErrUserAlreadyExists)
	assert.Equal(t, uuid.Nil, id)
}

func TestSignup_HashFailureDoesNotTouchStore(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	hasher := &mocks.MockPasswordHasher{}
	hasher.On("Hash", "secret").Return("", errors.New("entropy exhausted")).Once()
	svc, _ := newAuthService(t, repo, hasher)

	_, err := svc.Signup(context.Background(), "rahul", "secret")
	require.Error(t, err)
	assert.False(t, errors.Is(err, models.ErrUserAlreadyExists))
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	hasher.AssertExpectations(t)
}

func TestSignup_StoreTimeoutIsUnavailable(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	svc, _ := newAuthService(t, repo, nil)

	repo.On("CreateUser", mock.Anything, mock.Anything).
		Return(fmt.Errorf("failed to create user in postgres: %w", context.DeadlineExceeded)).Once()

	_, err := svc.Signup(context.Background(), "rahul", "secret")
	assert.ErrorIs(t, err, models.ErrUnavailable)
}

func TestLogin_Success_TokenCarriesIdentity(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	svc, tm := newAuthService(t, repo, nil)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{ID: uuid.New(), Username: "rahul", PasswordHash: string(hash)}
	repo.On("GetUserByUsername", mock.Anything, "rahul").Return(user, nil).Once()

	token, err := svc.Login(context.Background(), "rahul", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, "rahul", identity.Username)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("unknown user", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(t)
		svc, _ := newAuthService(t, repo, nil)
		repo.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, models.ErrUserNotFound).Once()

		token, err := svc.Login(context.Background(), "ghost", "secret")
		assert.Empty(t, token)
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := mocks.NewMockUserRepository(t)
		svc, _ := newAuthService(t, repo, nil)
		user := &models.User{ID: uuid.New(), Username: "rahul", PasswordHash: string(hash)}
		repo.On("GetUserByUsername", mock.Anything, "rahul").Return(user, nil).Once()

		token, err := svc.Login(context.Background(), "rahul", "nope")
		assert.Empty(t, token)
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})
}

func TestLogin_RepositoryErrorIsInternal(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	svc, _ := newAuthService(t, repo, nil)
	repo.On("GetUserByUsername", mock.Anything, "rahul").Return(nil, errors.New("connection refused")).Once()

	_, err := svc.Login(context.Background(), "rahul", "secret")
	require.Error(t, err)
	assert.False(t, errors.Is(err, models.ErrInvalidCredentials))
	assert.False(t, errors.Is(err, models.ErrUnavailable))
}

func TestLogin_AppliesOperationTimeout(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	svc, _ := newAuthService(t, repo, nil)

	repo.On("GetUserByUsername", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), "rahul").Return(nil, models.ErrUserNotFound).Once()

	_, err := svc.Login(context.Background(), "rahul", "secret")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestSignupAndLogin_PasswordLongerThanBcryptLimit(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	svc, tm := newAuthService(t, repo, nil)
	password := strings.Repeat("a", 73)

	var stored *models.User
	repo.On("CreateUser", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*models.User)
		stored.ID = uuid.New()
	}).Return(nil).Once()

	id, err := svc.Signup(context.Background(), "rahul", password)
	require.NoError(t, err)
	require.NotNil(t, stored)

	repo.On("GetUserByUsername", mock.Anything, "rahul").Return(stored, nil).Twice()

	token, err := svc.Login(context.Background(), "rahul", password)
	require.NoError(t, err)
	identity, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, id, identity.UserID)

	_, err = svc.Login(context.Background(), "rahul", strings.Repeat("a", 72)+"b")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestLogin_UnknownUserComparesAgainstDummyHash(t *testing.T) {
	repo := mocks.NewMockUserRepository(t)
	hasher := &mocks.MockPasswordHasher{}
	svc, _ := newAuthService(t, repo, hasher)

	repo.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, models.ErrUserNotFound).Twice()
	hasher.On("Hash", mock.Anything).Return("$2a$10$dummyhash", nil).Once()
	hasher.On("Check", "secret", "$2a$10$dummyhash").Return(false).Twice()

	for i := 0; i < 2; i++ {
		_, err := svc.Login(context.Background(), "ghost", "secret")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	}
	// Хеш-заглушка считается один раз
	hasher.AssertExpectations(t)
}
