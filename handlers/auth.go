package handlers

import (
	"net/http"
	"time"

	"sales_demarcation_go/config"
	"sales_demarcation_go/db"
	"sales_demarcation_go/middleware"
	"sales_demarcation_go/models"
	"sales_demarcation_go/services"

	"github.com/labstack/echo/v4"
)

// SignupRequest is the public sign-up DTO
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the credential DTO
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupHandler creates a pending user account. Accounts stay inactive until
// an administrator activates them through the user administration screen.
// POST /api/v1/auth/signup
func SignupHandler(c echo.Context) error {
	req := new(SignupRequest)
	if err := c.Bind(req); err != nil {
		return respondMessage(c, http.StatusBadRequest, "Invalid request body.")
	}

	req.Name = services.SanitizeText(req.Name)
	req.Email = services.SanitizeText(req.Email)

	errs := map[string]string{}
	requireString(errs, "name", req.Name)
	requireString(errs, "email", req.Email)
	if len(req.Password) < 8 {
		errs["password"] = "password must be at least 8 characters"
	}
	if len(errs) > 0 {
		return respondFieldErrors(c, http.StatusBadRequest, errs)
	}

	var existing models.User
	if err := db.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return respondFieldErrors(c, http.StatusBadRequest, map[string]string{
			"email": "an account with this email already exists",
		})
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		return respondMessage(c, http.StatusInternalServerError, "Sign up failed.")
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     "viewer",
		IsActive: false, // pending admin activation
	}
	if err := db.DB.Create(&user).Error; err != nil {
		return respondMessage(c, http.StatusInternalServerError, "Sign up failed.")
	}

	services.LogSecurityEvent("USER_SIGNUP", user.ID, "Sign-up received: "+user.Email)

	if cfg, ok := c.Get("config").(*config.Config); ok {
		services.SendEmailAsync(cfg, services.BuildSignupReceivedEmail(user.Email, user.Name))
	}

	return respondPayload(c, http.StatusCreated, user)
}

// LoginHandler verifies credentials and issues a bearer token
// POST /api/v1/auth/login
func LoginHandler(c echo.Context) error {
	req := new(LoginRequest)
	if err := c.Bind(req); err != nil {
		return respondMessage(c, http.StatusBadRequest, "Invalid request body.")
	}

	var user models.User
	if err := db.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return respondMessage(c, http.StatusUnauthorized, "Invalid email or password.")
	}

	if !services.CheckPassword(req.Password, user.Password) {
		services.LogSecurityEvent("LOGIN_FAILED", user.ID, "Bad password for "+user.Email)
		return respondMessage(c, http.StatusUnauthorized, "Invalid email or password.")
	}

	if !user.IsActive {
		return respondMessage(c, http.StatusUnauthorized, "Account is not yet activated.")
	}

	cfg, ok := c.Get("config").(*config.Config)
	if !ok {
		return respondMessage(c, http.StatusInternalServerError, "Login failed.")
	}

	token, session, err := services.CreateSession(db.DB, cfg, &user, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return respondMessage(c, http.StatusInternalServerError, "Login failed.")
	}

	now := time.Now()
	user.LastLoginAt = &now
	db.DB.Model(&user).Update("last_login_at", now)

	return respondPayload(c, http.StatusOK, map[string]interface{}{
		"accessToken": token,
		"expiresAt":   session.ExpiresAt,
		"user":        user,
	})
}

// LogoutHandler revokes the current session
// POST /api/v1/auth/logout
func LogoutHandler(c echo.Context) error {
	session := middleware.GetCurrentSession(c)
	if session == nil {
		return respondMessage(c, http.StatusUnauthorized, "Not authenticated.")
	}

	if err := services.DeleteSession(db.DB, session.ID); err != nil {
		return respondMessage(c, http.StatusInternalServerError, "Logout failed.")
	}

	return respondPayload(c, http.StatusOK, map[string]string{"status": "logged out"})
}

// GetCurrentUserHandler returns the authenticated user
// GET /api/v1/auth/me
func GetCurrentUserHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return respondMessage(c, http.StatusUnauthorized, "Not authenticated.")
	}
	return respondPayload(c, http.StatusOK, user)
}
