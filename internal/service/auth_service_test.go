package service

import (
	"testing"

	"github.com/bmi-tracker/internal/config"
	"github.com/bmi-tracker/internal/repository"
	"github.com/bmi-tracker/pkg/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	t.Run("successful registration stores a verifiable hash", func(t *testing.T) {
		authService, _ := newTestAuthService(t)

		user, err := authService.Register(&RegisterRequest{
			Username: "testuser",
			Email:    "testuser@example.com",
			Password: "testpassword",
		})

		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.NotEqual(t, "testpassword", user.PasswordHash, "hash must not be the plaintext")
		assert.True(t, crypto.CheckPassword("testpassword", user.PasswordHash),
			"stored hash should verify against the original plaintext")
	})

	t.Run("duplicate username", func(t *testing.T) {
		authService, _ := newTestAuthService(t)
		registerTestUser(t, authService, "testuser", "first@example.com", "testpassword")

		_, err := authService.Register(&RegisterRequest{
			Username: "testuser",
			Email:    "second@example.com",
			Password: "testpassword",
		})

		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("duplicate email", func(t *testing.T) {
		authService, _ := newTestAuthService(t)
		registerTestUser(t, authService, "first", "testuser@example.com", "testpassword")

		_, err := authService.Register(&RegisterRequest{
			Username: "second",
			Email:    "testuser@example.com",
			Password: "testpassword",
		})

		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("valid credentials return a bearer token", func(t *testing.T) {
		authService, _ := newTestAuthService(t)
		user := registerTestUser(t, authService, "testuser", "testuser@example.com", "testpassword")

		token, err := authService.Login(&LoginRequest{Username: "testuser", Password: "testpassword"})

		require.NoError(t, err)
		assert.NotEmpty(t, token.AccessToken)
		assert.Equal(t, "bearer", token.TokenType)
		assert.Equal(t, 30*60, token.ExpiresIn)

		// Token round-trips to the same subject
		claims, err := authService.ValidateToken(token.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "testuser", claims.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		authService, _ := newTestAuthService(t)
		registerTestUser(t, authService, "testuser", "testuser@example.com", "testpassword")

		_, err := authService.Login(&LoginRequest{Username: "testuser", Password: "wrongpassword"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		authService, _ := newTestAuthService(t)

		_, err := authService.Login(&LoginRequest{Username: "nobody", Password: "testpassword"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	t.Run("garbage token", func(t *testing.T) {
		authService, _ := newTestAuthService(t)

		_, err := authService.ValidateToken("not.a.token")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		db := setupTestDB(t)
		userRepo := repository.NewUserRepository(db)

		issuer := NewAuthService(userRepo, config.JWTConfig{Secret: "other_secret", ExpireMinutes: 30})
		verifier := NewAuthService(userRepo, testJWTConfig())

		registerTestUser(t, issuer, "testuser", "testuser@example.com", "testpassword")
		token, err := issuer.Login(&LoginRequest{Username: "testuser", Password: "testpassword"})
		require.NoError(t, err)

		_, err = verifier.ValidateToken(token.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		db := setupTestDB(t)
		userRepo := repository.NewUserRepository(db)

		// Negative TTL puts the expiry in the past at issue time
		expired := NewAuthService(userRepo, config.JWTConfig{Secret: "test_secret", ExpireMinutes: -1})

		registerTestUser(t, expired, "testuser", "testuser@example.com", "testpassword")
		token, err := expired.Login(&LoginRequest{Username: "testuser", Password: "testpassword"})
		require.NoError(t, err)

		_, err = expired.ValidateToken(token.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAuthService_GetUserByID(t *testing.T) {
	authService, _ := newTestAuthService(t)
	user := registerTestUser(t, authService, "testuser", "testuser@example.com", "testpassword")

	found, err := authService.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, found.Username)

	_, err = authService.GetUserByID(999)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
