package handlers

import (
	"github.com/labstack/echo/v4"
)

// respondPayload wraps a successful result in the payload envelope
func respondPayload(c echo.Context, status int, payload interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"payload": payload,
	})
}

// respondMessage wraps a failure in the message envelope
func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{
		"message": message,
	})
}

// respondFieldErrors wraps per-field validation messages in the payload
// envelope, the shape form controllers join into a single error line
func respondFieldErrors(c echo.Context, status int, fields map[string]string) error {
	return c.JSON(status, map[string]interface{}{
		"payload": fields,
	})
}
