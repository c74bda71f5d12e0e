package handlers

import (
	"log"
	"net/http"

	"hotelhub/internal/common"
	"hotelhub/internal/models"
	"hotelhub/internal/services"

	"github.com/labstack/echo/v4"
)

// LogHandlers serves the tenant's audit trail. Viewing is admin-only; the
// role gate sits on the route.
type LogHandlers struct {
	auditSvc services.AuditService
}

func NewLogHandlers(auditSvc services.AuditService) *LogHandlers {
	return &LogHandlers{auditSvc: auditSvc}
}

func (h *LogHandlers) ListLogs(c echo.Context) error {
	ctx := c.Request().Context()

	hotelName, ok := common.GetHotelNameFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c, "Tenant not found")
	}

	entries, err := h.auditSvc.Recent(ctx, hotelName)
	if err != nil {
		log.Printf("GET LOGS ERROR: %v", err)
		return common.SendServerError(c, "Failed to fetch logs")
	}
	if entries == nil {
		entries = []*models.LogEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}
