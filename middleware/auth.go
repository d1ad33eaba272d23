package middleware

import (
	"net/http"
	"strings"

	"sales_demarcation_go/config"
	"sales_demarcation_go/db"
	"sales_demarcation_go/models"
	"sales_demarcation_go/services"

	"github.com/labstack/echo/v4"
)

const (
	// ContextKeyUser is the context key for the authenticated user
	ContextKeyUser = "user"
	// ContextKeySession is the context key for the session
	ContextKeySession = "session"
)

// RequireAuth validates the Authorization bearer token, checks the backing
// session is still live, and stores the user in the request context.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message": "No access token found.",
				})
			}

			cfg, _ := c.Get("config").(*config.Config)
			if cfg == nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Server configuration missing")
			}

			claims, err := services.ParseAccessToken(cfg, token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message": "Invalid or expired access token.",
				})
			}

			session, err := services.ValidateSession(db.DB, claims.SessionID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message": "Session has been revoked or expired.",
				})
			}

			if !session.User.IsActive {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message": "Account is inactive.",
				})
			}

			c.Set(ContextKeyUser, &session.User)
			c.Set(ContextKeySession, session)

			return next(c)
		}
	}
}

// RequireRole is middleware that requires specific roles
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := GetCurrentUser(c)
			if user == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message": "Not authenticated.",
				})
			}

			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, map[string]string{
				"message": "Insufficient permissions.",
			})
		}
	}
}

// RequireWriteRole lets read requests through for any authenticated user
// and restricts mutating methods (POST, PUT, DELETE) to the listed roles.
func RequireWriteRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			method := c.Request().Method
			if method == http.MethodGet || method == http.MethodHead {
				return next(c)
			}

			user := GetCurrentUser(c)
			if user == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message": "Not authenticated.",
				})
			}

			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, map[string]string{
				"message": "Insufficient permissions.",
			})
		}
	}
}

// GetCurrentUser retrieves the current user from context
func GetCurrentUser(c echo.Context) *models.User {
	user, ok := c.Get(ContextKeyUser).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// GetCurrentSession retrieves the current session from context
func GetCurrentSession(c echo.Context) *models.Session {
	session, ok := c.Get(ContextKeySession).(*models.Session)
	if !ok {
		return nil
	}
	return session
}

// bearerToken extracts the token from the Authorization header
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
