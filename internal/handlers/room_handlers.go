package handlers

import (
	"errors"
	"log"
	"net/http"

	"hotelhub/internal/common"
	"hotelhub/internal/models"
	"hotelhub/internal/services"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// RoomHandlers handles room inventory HTTP requests.
type RoomHandlers struct {
	roomSvc services.RoomService
}

func NewRoomHandlers(roomSvc services.RoomService) *RoomHandlers {
	return &RoomHandlers{roomSvc: roomSvc}
}

// ListRooms returns the caller's rooms ordered by room number.
func (h *RoomHandlers) ListRooms(c echo.Context) error {
	ctx := c.Request().Context()

	hotelName, ok := common.GetHotelNameFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c, "Tenant not found")
	}

	rooms, err := h.roomSvc.List(ctx, hotelName)
	if err != nil {
		log.Printf("GET ROOMS ERROR: %v", err)
		return common.SendServerError(c, "Failed to fetch rooms")
	}
	if rooms == nil {
		rooms = []*models.Room{}
	}
	return c.JSON(http.StatusOK, rooms)
}

// CreateRoom adds a room to the caller's inventory. Admin only; the role
// gate sits on the route.
func (h *RoomHandlers) CreateRoom(c echo.Context) error {
	ctx := c.Request().Context()

	user, ok := common.GetUserFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c, "User not authenticated")
	}

	var req services.CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return common.SendValidationError(c, "Invalid request format")
	}
	if req.RoomNumber == "" || req.RoomType == "" || req.CostPerNight <= 0 {
		return common.SendValidationError(c, "Missing fields")
	}

	room, err := h.roomSvc.Create(ctx, user.HotelName, user, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNumberTaken):
			return common.SendConflictError(c, "Room number already exists")
		case errors.Is(err, services.ErrInvalidRoomType):
			return common.SendValidationError(c, "Invalid room type")
		default:
			log.Printf("CREATE ROOM ERROR: %v", err)
			return common.SendServerError(c, "Failed to create room")
		}
	}

	return c.JSON(http.StatusCreated, room)
}

// UpdateRoomStatusRequest represents the status change payload
type UpdateRoomStatusRequest struct {
	Status string `json:"status"`
}

// UpdateRoomStatus changes a room's status. A room id belonging to another
// tenant reads as not found.
func (h *RoomHandlers) UpdateRoomStatus(c echo.Context) error {
	ctx := c.Request().Context()

	user, ok := common.GetUserFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c, "User not authenticated")
	}

	id, err := common.ValidateUUID(c.Param("id"), "room id")
	if err != nil {
		return common.SendValidationError(c, err.Error())
	}

	var req UpdateRoomStatusRequest
	if err := c.Bind(&req); err != nil {
		return common.SendValidationError(c, "Invalid request format")
	}

	room, err := h.roomSvc.UpdateStatus(ctx, user.HotelName, user, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			return common.SendValidationError(c, "Invalid status value")
		case errors.Is(err, pgx.ErrNoRows):
			return common.SendNotFoundError(c, "Room")
		default:
			log.Printf("UPDATE STATUS ERROR: %v", err)
			return common.SendServerError(c, "Failed to update status")
		}
	}

	return c.JSON(http.StatusOK, room)
}
