package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"sales_demarcation_go/db"
	"sales_demarcation_go/models"
	"sales_demarcation_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func createTestUser(t *testing.T, database *gorm.DB, email string, active bool) *models.User {
	hashed, err := services.HashPassword("test-password-123")
	assert.NoError(t, err)

	user := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: hashed,
		Role:     "admin",
		IsActive: active,
	}
	assert.NoError(t, database.Create(user).Error)
	if !active {
		assert.NoError(t, database.Model(user).Update("is_active", false).Error)
	}
	return user
}

func TestSignupHandler(t *testing.T) {
	database := setupTestDB(t)

	t.Run("Success", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/api/v1/auth/signup",
			strings.NewReader(`{"name":"New User","email":"new@test.com","password":"long-enough-pw"}`))
		c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		assert.NoError(t, SignupHandler(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var created models.User
		assert.NoError(t, database.Where("email = ?", "new@test.com").First(&created).Error)
		// Accounts wait for admin activation
		assert.False(t, created.IsActive)
		assert.Equal(t, "viewer", created.Role)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/api/v1/auth/signup",
			strings.NewReader(`{"name":"New User","email":"short@test.com","password":"short"}`))
		c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		assert.NoError(t, SignupHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var env struct {
			Payload map[string]string `json:"payload"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Contains(t, env.Payload, "password")
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		createTestUser(t, database, "taken@test.com", true)

		_, c, rec := setupEcho(http.MethodPost, "/api/v1/auth/signup",
			strings.NewReader(`{"name":"Copy","email":"taken@test.com","password":"long-enough-pw"}`))
		c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		assert.NoError(t, SignupHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	database := setupTestDB(t)
	createTestUser(t, database, "login@test.com", true)
	createTestUser(t, database, "pending@test.com", false)

	t.Run("Success", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/api/v1/auth/login",
			strings.NewReader(`{"email":"login@test.com","password":"test-password-123"}`))
		c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		assert.NoError(t, LoginHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var env struct {
			Payload struct {
				AccessToken string `json:"accessToken"`
			} `json:"payload"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.NotEmpty(t, env.Payload.AccessToken)

		var sessions int64
		database.Model(&models.Session{}).Count(&sessions)
		assert.Equal(t, int64(1), sessions)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/api/v1/auth/login",
			strings.NewReader(`{"email":"login@test.com","password":"nope"}`))
		c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		assert.NoError(t, LoginHandler(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("InactiveAccount", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/api/v1/auth/login",
			strings.NewReader(`{"email":"pending@test.com","password":"test-password-123"}`))
		c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		assert.NoError(t, LoginHandler(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/api/v1/auth/login",
			strings.NewReader(`{"email":"ghost@test.com","password":"whatever"}`))
		c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		assert.NoError(t, LoginHandler(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestActivateUserHandler(t *testing.T) {
	database := setupTestDB(t)
	pending := createTestUser(t, database, "pending2@test.com", false)

	_, c, rec := setupEcho(http.MethodPut, "/api/v1/user/activate/1", nil)
	c.SetParamNames("id")
	c.SetParamValues(itoa(pending.ID))

	assert.NoError(t, ActivateUserHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var reloaded models.User
	assert.NoError(t, db.DB.First(&reloaded, pending.ID).Error)
	assert.True(t, reloaded.IsActive)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
