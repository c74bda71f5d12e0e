package common

import (
	"context"

	"hotelhub/internal/models"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserKey      contextKey = "user"
	HotelNameKey contextKey = "hotel_name"
)

// GetUserIDFromContext extracts the user ID from the request context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetUserFromContext extracts the resolved user from the request context
func GetUserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserKey).(*models.User)
	return user, ok
}

// GetHotelNameFromContext extracts the caller's tenant name from the request context
func GetHotelNameFromContext(ctx context.Context) (string, bool) {
	hotelName, ok := ctx.Value(HotelNameKey).(string)
	return hotelName, ok
}
