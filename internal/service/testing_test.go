package service

import (
	"testing"

	"github.com/bmi-tracker/internal/config"
	"github.com/bmi-tracker/internal/models"
	"github.com/bmi-tracker/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&models.User{}, &models.Measurement{}, &models.BMICategory{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:        "test_secret",
		ExpireMinutes: 30,
	}
}

// newTestAuthService builds an AuthService over a fresh database.
func newTestAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), testJWTConfig()), db
}

// registerTestUser registers a user through the service so the stored
// hash is a real bcrypt hash.
func registerTestUser(t *testing.T, authService *AuthService, username, email, password string) *models.User {
	t.Helper()

	user, err := authService.Register(&RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err, "failed to register test user")
	return user
}
