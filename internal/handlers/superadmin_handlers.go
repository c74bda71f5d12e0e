package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"hotelhub/internal/common"
	"hotelhub/internal/models"
	"hotelhub/internal/services"

	"github.com/labstack/echo/v4"
)

// SuperAdminHandlers is the cross-tenant overlay: listing every hotel on
// the installation and mutating tenant plans. Tenant-agnostic by design;
// the superadmin role gate sits on the route group.
type SuperAdminHandlers struct {
	tenantSvc services.TenantService
}

func NewSuperAdminHandlers(tenantSvc services.TenantService) *SuperAdminHandlers {
	return &SuperAdminHandlers{tenantSvc: tenantSvc}
}

func (h *SuperAdminHandlers) ListHotels(c echo.Context) error {
	ctx := c.Request().Context()

	hotels, err := h.tenantSvc.ListTenants(ctx)
	if err != nil {
		log.Printf("SUPERADMIN GET HOTELS ERROR: %v", err)
		return common.SendServerError(c, "Failed to load hotels list")
	}
	if hotels == nil {
		hotels = []*models.TenantSummary{}
	}
	return c.JSON(http.StatusOK, hotels)
}

// UpdatePlanRequest represents the plan mutation payload
type UpdatePlanRequest struct {
	PlanType string `json:"planType"`
	Days     int    `json:"days"`
}

func (h *SuperAdminHandlers) UpdateHotelPlan(c echo.Context) error {
	ctx := c.Request().Context()

	hotelName, err := url.PathUnescape(c.Param("tenantName"))
	if err != nil || hotelName == "" {
		return common.SendValidationError(c, "Hotel name is required")
	}

	var req UpdatePlanRequest
	if err := c.Bind(&req); err != nil {
		return common.SendValidationError(c, "Invalid request format")
	}

	if err := h.tenantSvc.SetPlan(ctx, hotelName, req.PlanType, req.Days); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPlanType):
			return common.SendValidationError(c, "Invalid planType. Use 'paid' or 'trial'.")
		case errors.Is(err, services.ErrTenantNotFound):
			return common.SendNotFoundError(c, "Hotel")
		default:
			log.Printf("SUPERADMIN UPDATE HOTEL PLAN ERROR: %v", err)
			return common.SendServerError(c, "Failed to update hotel plan")
		}
	}

	message := fmt.Sprintf("Hotel %q marked as PAID", hotelName)
	if req.PlanType == models.PlanTrial {
		days := req.Days
		if days <= 0 {
			days = services.DefaultTrialDays
		}
		message = fmt.Sprintf("Hotel %q trial set to %d days from today", hotelName, days)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": message,
	})
}
