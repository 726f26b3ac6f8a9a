package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/heygogu/car-rental/internal/authutils"
	"github.com/heygogu/car-rental/internal/mocks"
	"github.com/heygogu/car-rental/internal/models"
)

const testSecret = "handler-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router   *gin.Engine
	auth     *mocks.MockAuthService
	bookings *mocks.MockBookingService
	tokens   *authutils.TokenManager
	identity models.AuthIdentity
	token    string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	tm, err := authutils.NewTokenManager(testSecret, 0, zap.NewNop())
	require.NoError(t, err)

	env := &testEnv{
		router:   gin.New(),
		auth:     &mocks.MockAuthService{},
		bookings: &mocks.MockBookingService{},
		tokens:   tm,
		identity: models.AuthIdentity{UserID: uuid.New(), Username: "rahul"},
	}
	env.token, err = tm.Issue(env.identity.UserID, env.identity.Username)
	require.NoError(t, err)

	NewHandler(env.auth, env.bookings, tm, zap.NewNop()).RegisterRoutes(env.router)

	t.Cleanup(func() {
		env.auth.AssertExpectations(t)
		env.bookings.AssertExpectations(t)
	})
	return env
}

func (e *testEnv) do(method, path, body, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return env
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var data models.MessageData
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &data))
	return data.Message
}
