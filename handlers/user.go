package handlers

import (
	"net/http"

	"sales_demarcation_go/config"
	"sales_demarcation_go/db"
	"sales_demarcation_go/models"
	"sales_demarcation_go/services"

	"github.com/labstack/echo/v4"
)

var validRoles = map[string]bool{"admin": true, "manager": true, "viewer": true}

// GetUsersHandler lists all user accounts, pending ones included
// GET /api/v1/user
func GetUsersHandler(c echo.Context) error {
	var users []models.User
	if err := db.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return respondMessage(c, http.StatusInternalServerError, "Could not load users.")
	}
	return respondPayload(c, http.StatusOK, users)
}

// ActivateUserHandler activates a pending account and notifies the owner
// PUT /api/v1/user/activate/:id
func ActivateUserHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondMessage(c, http.StatusBadRequest, "Invalid user id.")
	}

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return respondMessage(c, http.StatusNotFound, "User not found.")
	}

	if user.IsActive {
		return respondPayload(c, http.StatusOK, user)
	}

	if err := db.DB.Model(&user).Update("is_active", true).Error; err != nil {
		return respondMessage(c, http.StatusInternalServerError, "Could not activate user.")
	}
	user.IsActive = true

	services.LogSecurityEvent("USER_ACTIVATED", user.ID, "Account activated: "+user.Email)

	if cfg, ok := c.Get("config").(*config.Config); ok {
		services.SendEmailAsync(cfg, services.BuildAccountActivatedEmail(user.Email, user.Name, cfg.AppURL))
	}

	return respondPayload(c, http.StatusOK, user)
}

// UpdateUserRoleHandler changes a user's role
// PUT /api/v1/user/role/:id
func UpdateUserRoleHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondMessage(c, http.StatusBadRequest, "Invalid user id.")
	}

	var body struct {
		Role string `json:"role"`
	}
	if err := c.Bind(&body); err != nil || !validRoles[body.Role] {
		return respondFieldErrors(c, http.StatusBadRequest, map[string]string{
			"role": "role must be one of admin, manager, viewer",
		})
	}

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return respondMessage(c, http.StatusNotFound, "User not found.")
	}

	if err := db.DB.Model(&user).Update("role", body.Role).Error; err != nil {
		return respondMessage(c, http.StatusInternalServerError, "Could not update role.")
	}
	user.Role = body.Role

	return respondPayload(c, http.StatusOK, user)
}
