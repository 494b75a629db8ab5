package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/igdimer/currency-converter/internal/auth"
	"github.com/igdimer/currency-converter/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuthenticator struct{ mock.Mock }

func (m *MockAuthenticator) Authenticate(ctx context.Context, accessToken string) (domain.User, error) {
	args := m.Called(ctx, accessToken)
	user, _ := args.Get(0).(domain.User)
	return user, args.Error(1)
}

type errorJSON struct {
	Error string `json:"error"`
}

func nextHandler(t *testing.T, wantUser domain.User, called *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		user, ok := auth.UserFromContext(r.Context())
		require.True(t, ok)
		require.Equal(t, wantUser, user)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_Success(t *testing.T) {
	mockAuth := new(MockAuthenticator)
	user := domain.User{ID: 7, Username: "igor"}
	called := false

	mockAuth.On("Authenticate", mock.Anything, "valid-token").Return(user, nil).Once()

	handler := AuthMiddleware(mockAuth)(nextHandler(t, user, &called))

	req := httptest.NewRequest(http.MethodGet, "/favorite_rates", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.True(t, called)
	require.Equal(t, http.StatusOK, rr.Code)
	mockAuth.AssertExpectations(t)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mockAuth := new(MockAuthenticator)
	called := false

	handler := AuthMiddleware(mockAuth)(nextHandler(t, domain.User{}, &called))

	req := httptest.NewRequest(http.MethodGet, "/favorite_rates", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.False(t, called)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	require.Equal(t, "Authorization header is required.", ej.Error)
	mockAuth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{name: "no scheme", header: "token-only"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockAuth := new(MockAuthenticator)
			called := false

			handler := AuthMiddleware(mockAuth)(nextHandler(t, domain.User{}, &called))

			req := httptest.NewRequest(http.MethodGet, "/favorite_rates", nil)
			req.Header.Set("Authorization", tc.header)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			require.False(t, called)
			require.Equal(t, http.StatusUnauthorized, rr.Code)
			mockAuth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	mockAuth := new(MockAuthenticator)
	called := false

	mockAuth.On("Authenticate", mock.Anything, "expired").
		Return(domain.User{}, auth.ErrInvalidToken).Once()

	handler := AuthMiddleware(mockAuth)(nextHandler(t, domain.User{}, &called))

	req := httptest.NewRequest(http.MethodGet, "/favorite_rates", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.False(t, called)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	require.Equal(t, "Invalid token was provided.", ej.Error)
}

func TestAuthMiddleware_InternalError(t *testing.T) {
	mockAuth := new(MockAuthenticator)
	called := false

	mockAuth.On("Authenticate", mock.Anything, "token").
		Return(domain.User{}, errors.New("db down")).Once()

	handler := AuthMiddleware(mockAuth)(nextHandler(t, domain.User{}, &called))

	req := httptest.NewRequest(http.MethodGet, "/favorite_rates", nil)
	req.Header.Set("Authorization", "Bearer token")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.False(t, called)
	require.Equal(t, http.StatusInternalServerError, rr.Code)
}
