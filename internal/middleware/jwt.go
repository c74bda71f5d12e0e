package middleware

import (
	"context"
	"strings"

	"hotelhub/internal/common"
	"hotelhub/internal/repositories"
	"hotelhub/internal/services"

	"github.com/labstack/echo/v4"
)

// JWTMiddleware is the access gate: it resolves the bearer token to a live
// user row and attaches the user, its ID, and its tenant name to the request
// context. A token whose user no longer exists fails as unauthorized.
func JWTMiddleware(authSvc services.AuthService, userRepo repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return common.SendUnauthorizedError(c, "Missing token")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return common.SendUnauthorizedError(c, "Invalid token format")
			}

			userID, err := authSvc.ParseToken(tokenString)
			if err != nil {
				return common.SendUnauthorizedError(c, "Invalid token")
			}

			user, err := userRepo.GetByID(c.Request().Context(), userID)
			if err != nil {
				return common.SendUnauthorizedError(c, "User not found")
			}

			ctx := context.WithValue(c.Request().Context(), common.UserIDKey, user.ID)
			ctx = context.WithValue(ctx, common.UserKey, user)
			ctx = context.WithValue(ctx, common.HotelNameKey, user.HotelName)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
