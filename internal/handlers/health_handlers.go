package handlers

import (
	"net/http"
	"time"

	"hotelhub/internal/caching"
	"hotelhub/internal/repositories"

	"github.com/labstack/echo/v4"
)

// HealthHandlers handles the liveness probe.
type HealthHandlers struct {
	db       repositories.Database
	cacheSvc caching.CacheService
}

func NewHealthHandlers(db repositories.Database, cacheSvc caching.CacheService) *HealthHandlers {
	return &HealthHandlers{db: db, cacheSvc: cacheSvc}
}

// HealthStatus represents the overall health status
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// HealthCheck reports liveness plus database and cache connectivity. A
// degraded cache does not fail the probe; a dead database does.
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	ctx := c.Request().Context()
	health := &HealthStatus{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  make(map[string]string),
	}

	statusCode := http.StatusOK
	if _, err := h.db.Exec(ctx, "SELECT 1"); err != nil {
		health.Services["database"] = "unhealthy"
		health.Status = "degraded"
		statusCode = http.StatusServiceUnavailable
	} else {
		health.Services["database"] = "healthy"
	}

	if err := h.cacheSvc.Ping(ctx); err != nil {
		health.Services["redis"] = "unhealthy"
	} else {
		health.Services["redis"] = "healthy"
	}

	return c.JSON(statusCode, health)
}
