package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifequest/lifequest-api/internal/config"
	"github.com/lifequest/lifequest-api/internal/domain"
	"github.com/lifequest/lifequest-api/internal/mocks"
	"github.com/lifequest/lifequest-api/internal/service/auth"
)

func newTestAuthHandler(
	userStore *mocks.MockUserStore,
	jwtService *mocks.MockJWTService,
	passwordVerifier *mocks.MockPasswordVerifier,
) *AuthHandler {
	return NewAuthHandler(userStore, jwtService, passwordVerifier, config.AuthConfig{
		TokenLifetimeMinutes: 60,
	})
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("successful registration returns token pair", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		jwtService := &mocks.MockJWTService{Token: "access-token", RefreshToken: "refresh-token"}
		handler := newTestAuthHandler(userStore, jwtService, &mocks.MockPasswordVerifier{})

		rr := postJSON(t, handler.Register, "/auth/register", RegisterRequest{
			Email:    "test@example.com",
			Password: "securepassword123",
		})

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "access-token", resp.AccessToken)
		assert.Equal(t, "refresh-token", resp.RefreshToken)
		assert.NotEqual(t, uuid.Nil, resp.UserID)
		assert.NotEmpty(t, resp.ExpiresAt)

		_, exists := userStore.Users["test@example.com"]
		assert.True(t, exists)
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		t.Parallel()

		handler := newTestAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{}, &mocks.MockPasswordVerifier{})

		rr := postJSON(t, handler.Register, "/auth/register", RegisterRequest{
			Email:    "not-an-email",
			Password: "securepassword123",
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("short password rejected", func(t *testing.T) {
		t.Parallel()

		handler := newTestAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{}, &mocks.MockPasswordVerifier{})

		rr := postJSON(t, handler.Register, "/auth/register", RegisterRequest{
			Email:    "test@example.com",
			Password: "short",
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		existing, err := domain.NewUser("test@example.com", "securepassword123")
		require.NoError(t, err)
		userStore.Users[existing.Email] = existing

		handler := newTestAuthHandler(userStore, &mocks.MockJWTService{Token: "t"}, &mocks.MockPasswordVerifier{})

		rr := postJSON(t, handler.Register, "/auth/register", RegisterRequest{
			Email:    "test@example.com",
			Password: "securepassword123",
		})

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		t.Parallel()

		handler := newTestAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{}, &mocks.MockPasswordVerifier{})

		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte("{not json")))
		rr := httptest.NewRecorder()
		handler.Register(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	seedUser := func(t *testing.T, store *mocks.MockUserStore) *domain.User {
		t.Helper()
		user, err := domain.NewUser("test@example.com", "securepassword123")
		require.NoError(t, err)
		user.Password = ""
		user.HashedPassword = "hashed-password"
		store.Users[user.Email] = user
		return user
	}

	t.Run("successful login returns token pair", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		user := seedUser(t, userStore)
		verifier := &mocks.MockPasswordVerifier{ShouldSucceed: true}
		jwtService := &mocks.MockJWTService{Token: "access-token", RefreshToken: "refresh-token"}
		handler := newTestAuthHandler(userStore, jwtService, verifier)

		rr := postJSON(t, handler.Login, "/auth/login", LoginRequest{
			Email:    "test@example.com",
			Password: "securepassword123",
		})

		require.Equal(t, http.StatusOK, rr.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, user.ID, resp.UserID)
		assert.Equal(t, "access-token", resp.AccessToken)
		assert.Equal(t, 1, verifier.CompareCallCount)
	})

	t.Run("wrong password rejected with generic message", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		seedUser(t, userStore)
		handler := newTestAuthHandler(userStore, &mocks.MockJWTService{}, &mocks.MockPasswordVerifier{ShouldSucceed: false})

		rr := postJSON(t, handler.Login, "/auth/login", LoginRequest{
			Email:    "test@example.com",
			Password: "wrongpassword123",
		})

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid credentials")
	})

	t.Run("unknown email rejected with the same message", func(t *testing.T) {
		t.Parallel()

		handler := newTestAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{}, &mocks.MockPasswordVerifier{})

		rr := postJSON(t, handler.Login, "/auth/login", LoginRequest{
			Email:    "nobody@example.com",
			Password: "securepassword123",
		})

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid credentials")
	})
}

func TestRefreshToken(t *testing.T) {
	t.Parallel()

	t.Run("valid refresh token issues a new pair", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		jwtService := &mocks.MockJWTService{
			Token:        "new-access-token",
			RefreshToken: "new-refresh-token",
			Claims:       &auth.Claims{UserID: userID},
		}
		handler := newTestAuthHandler(mocks.NewMockUserStore(), jwtService, &mocks.MockPasswordVerifier{})

		rr := postJSON(t, handler.RefreshToken, "/auth/refresh", RefreshTokenRequest{
			RefreshToken: "old-refresh-token",
		})

		require.Equal(t, http.StatusOK, rr.Code)

		var resp RefreshTokenResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "new-access-token", resp.AccessToken)
		assert.Equal(t, "new-refresh-token", resp.RefreshToken)
		assert.NotEmpty(t, resp.ExpiresAt)
	})

	t.Run("invalid refresh token rejected", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrInvalidRefreshToken}
		handler := newTestAuthHandler(mocks.NewMockUserStore(), jwtService, &mocks.MockPasswordVerifier{})

		rr := postJSON(t, handler.RefreshToken, "/auth/refresh", RefreshTokenRequest{
			RefreshToken: "bad-token",
		})

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("missing refresh token rejected", func(t *testing.T) {
		t.Parallel()

		handler := newTestAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{}, &mocks.MockPasswordVerifier{})

		rr := postJSON(t, handler.RefreshToken, "/auth/refresh", RefreshTokenRequest{})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
