package middleware

import (
	"hotelhub/internal/common"

	"github.com/labstack/echo/v4"
)

// RequireRole gates a route on role membership. Violations are 403, never
// 404: the route itself is no secret, only the data behind it.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := common.GetUserFromContext(c.Request().Context())
			if !ok {
				return common.SendUnauthorizedError(c, "User not authenticated")
			}

			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}
			return common.SendForbiddenError(c, "Insufficient permissions")
		}
	}
}
