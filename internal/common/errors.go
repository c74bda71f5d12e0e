package common

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error"`
}

// CreateErrorResponse creates a standardized error response
func CreateErrorResponse(code string, message string, details map[string]string) *ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	resp.Error.Details = details
	return &resp
}

// SendValidationError sends a validation error response
func SendValidationError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, CreateErrorResponse("VALIDATION_ERROR", message, nil))
}

// SendConflictError sends a conflict error response. The original surface
// reports conflicts as 400, not 409.
func SendConflictError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, CreateErrorResponse("CONFLICT", message, nil))
}

// SendUnauthorizedError sends an unauthorized error response
func SendUnauthorizedError(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, CreateErrorResponse("UNAUTHORIZED", message, nil))
}

// SendForbiddenError sends a forbidden error response
func SendForbiddenError(c echo.Context, message string) error {
	return c.JSON(http.StatusForbidden, CreateErrorResponse("FORBIDDEN", message, nil))
}

// SendNotFoundError sends a not found error response
func SendNotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, CreateErrorResponse("NOT_FOUND", fmt.Sprintf("%s not found", resource), nil))
}

// SendServerError sends a server error response
func SendServerError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, CreateErrorResponse("SERVER_ERROR", message, nil))
}

// SendTrialExpiredError sends the 402 plan-guard response. The expiry
// timestamp rides along in details so the client can render it.
func SendTrialExpiredError(c echo.Context, trialEndsAt time.Time) error {
	details := map[string]string{
		"trialEndsAt": trialEndsAt.UTC().Format(time.RFC3339),
	}
	return c.JSON(http.StatusPaymentRequired, CreateErrorResponse(
		"TRIAL_EXPIRED",
		"Your hotel's free trial has expired. Please contact the owner to activate a paid plan.",
		details,
	))
}
