package handlers

import (
	"net/http"
	"strconv"

	"sales_demarcation_go/db"
	"sales_demarcation_go/services"

	"github.com/labstack/echo/v4"
)

// GetAuditLogsHandler lists recent audit entries, optionally filtered by
// entity type via ?entityType= and capped via ?limit=
// GET /api/v1/audit
func GetAuditLogsHandler(c echo.Context) error {
	entityType := c.QueryParam("entityType")

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return respondFieldErrors(c, http.StatusBadRequest, map[string]string{
				"limit": "limit must be a positive integer",
			})
		}
		limit = parsed
	}

	logs, err := services.GetAuditLogs(db.DB, entityType, limit)
	if err != nil {
		return respondMessage(c, http.StatusInternalServerError, "Could not load audit logs.")
	}
	return respondPayload(c, http.StatusOK, logs)
}
