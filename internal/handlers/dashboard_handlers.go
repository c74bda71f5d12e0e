package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"hotelhub/internal/common"
	"hotelhub/internal/models"
	"hotelhub/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandlers serves the tenant dashboard rollups and the in-tenant
// plan upgrade.
type DashboardHandlers struct {
	dashboardSvc services.DashboardService
	tenantSvc    services.TenantService
}

func NewDashboardHandlers(dashboardSvc services.DashboardService, tenantSvc services.TenantService) *DashboardHandlers {
	return &DashboardHandlers{dashboardSvc: dashboardSvc, tenantSvc: tenantSvc}
}

func (h *DashboardHandlers) Summary(c echo.Context) error {
	ctx := c.Request().Context()

	hotelName, ok := common.GetHotelNameFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c, "Tenant not found")
	}

	summary, err := h.dashboardSvc.Summary(ctx, hotelName, time.Now())
	if err != nil {
		log.Printf("DASHBOARD SUMMARY ERROR: %v", err)
		return common.SendServerError(c, "Failed to load dashboard")
	}
	if summary.RecentBookings == nil {
		summary.RecentBookings = []*models.Booking{}
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *DashboardHandlers) RecentBookings(c echo.Context) error {
	ctx := c.Request().Context()

	hotelName, ok := common.GetHotelNameFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c, "Tenant not found")
	}

	bookings, err := h.dashboardSvc.RecentBookings(ctx, hotelName)
	if err != nil {
		log.Printf("RECENT BOOKINGS ERROR: %v", err)
		return common.SendServerError(c, "Failed to load recent bookings")
	}
	if bookings == nil {
		bookings = []*models.Booking{}
	}
	return c.JSON(http.StatusOK, bookings)
}

// UpgradePlan marks the caller's whole tenant paid. Admin only; the role
// gate sits on the route. Deliberately not plan-gated so an expired tenant
// can still pay.
func (h *DashboardHandlers) UpgradePlan(c echo.Context) error {
	ctx := c.Request().Context()

	user, ok := common.GetUserFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c, "User not authenticated")
	}

	if err := h.tenantSvc.MarkPaid(ctx, user.HotelName); err != nil {
		if errors.Is(err, services.ErrTenantNotFound) {
			return common.SendNotFoundError(c, "Hotel")
		}
		log.Printf("UPGRADE PLAN ERROR: %v", err)
		return common.SendServerError(c, "Failed to upgrade plan")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":     "Marked as paid plan",
		"planType":    models.PlanPaid,
		"trialEndsAt": nil,
	})
}
