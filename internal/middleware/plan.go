package middleware

import (
	"time"

	"hotelhub/internal/common"
	"hotelhub/internal/models"

	"github.com/labstack/echo/v4"
)

// PlanGuard enforces the trial/paid gate after the access gate has resolved
// the user. Paid users always pass, regardless of any leftover expiry value.
// A trial user with no expiry set is in an unrestricted grace state and
// passes too. An expired trial gets a 402 with a machine-readable code and
// the expiry timestamp; the downstream handler never runs.
func PlanGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := common.GetUserFromContext(c.Request().Context())
			if !ok {
				return common.SendUnauthorizedError(c, "User not authenticated")
			}

			if user.PlanType == models.PlanPaid {
				return next(c)
			}

			if user.TrialEndsAt == nil {
				return next(c)
			}

			if time.Now().After(*user.TrialEndsAt) {
				return common.SendTrialExpiredError(c, *user.TrialEndsAt)
			}

			return next(c)
		}
	}
}
