package services

import (
	"testing"
	"time"

	"sales_demarcation_go/config"
	"sales_demarcation_go/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.User{}, &models.Session{}))
	return db
}

func authTestConfig() *config.Config {
	return &config.Config{
		Environment:      "test",
		TokenSecret:      "test-secret-for-session-tokens-0123456789",
		AccessTokenHours: 24,
	}
}

func createAuthTestUser(t *testing.T, db *gorm.DB) *models.User {
	hashed, err := HashPassword("correct-horse-battery")
	assert.NoError(t, err)

	user := &models.User{
		Name:     "Test Admin",
		Email:    "admin@test.com",
		Password: hashed,
		Role:     "admin",
		IsActive: true,
	}
	assert.NoError(t, db.Create(user).Error)
	return user
}

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("secret-password")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret-password", hashed)

	assert.True(t, CheckPassword("secret-password", hashed))
	assert.False(t, CheckPassword("wrong-password", hashed))
}

func TestCreateAndValidateSession(t *testing.T) {
	db := setupAuthTestDB(t)
	cfg := authTestConfig()
	user := createAuthTestUser(t, db)

	token, session, err := CreateSession(db, cfg, user, "127.0.0.1", "test-agent")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, session.ID)

	claims, err := ParseAccessToken(cfg, token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, session.ID, claims.SessionID)

	validated, err := ValidateSession(db, claims.SessionID)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, validated.User.ID)
	assert.Equal(t, user.Email, validated.User.Email)
}

func TestParseAccessTokenRejectsTampering(t *testing.T) {
	db := setupAuthTestDB(t)
	cfg := authTestConfig()
	user := createAuthTestUser(t, db)

	token, _, err := CreateSession(db, cfg, user, "127.0.0.1", "test-agent")
	assert.NoError(t, err)

	otherCfg := authTestConfig()
	otherCfg.TokenSecret = "a-completely-different-signing-secret!!"
	_, err = ParseAccessToken(otherCfg, token)
	assert.Error(t, err)
}

func TestValidateSessionRemovesExpired(t *testing.T) {
	db := setupAuthTestDB(t)
	user := createAuthTestUser(t, db)

	session := &models.Session{
		ID:        "expired-session-id",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	assert.NoError(t, db.Create(session).Error)

	_, err := ValidateSession(db, session.ID)
	assert.Error(t, err)

	// The stale row is gone
	var count int64
	db.Model(&models.Session{}).Where("id = ?", session.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteSession(t *testing.T) {
	db := setupAuthTestDB(t)
	cfg := authTestConfig()
	user := createAuthTestUser(t, db)

	_, session, err := CreateSession(db, cfg, user, "127.0.0.1", "test-agent")
	assert.NoError(t, err)

	assert.NoError(t, DeleteSession(db, session.ID))

	_, err = ValidateSession(db, session.ID)
	assert.Error(t, err)
}

func TestCleanupExpiredSessions(t *testing.T) {
	db := setupAuthTestDB(t)
	cfg := authTestConfig()
	user := createAuthTestUser(t, db)

	_, live, err := CreateSession(db, cfg, user, "127.0.0.1", "test-agent")
	assert.NoError(t, err)

	db.Create(&models.Session{ID: "old-1", UserID: user.ID, ExpiresAt: time.Now().Add(-time.Hour)})
	db.Create(&models.Session{ID: "old-2", UserID: user.ID, ExpiresAt: time.Now().Add(-2 * time.Hour)})

	assert.NoError(t, CleanupExpiredSessions(db))

	var remaining []models.Session
	db.Find(&remaining)
	assert.Len(t, remaining, 1)
	assert.Equal(t, live.ID, remaining[0].ID)
}
