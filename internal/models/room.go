package models

import (
	"time"

	"github.com/google/uuid"
)

// Room status values
const (
	RoomAvailable        = "available"
	RoomOccupied         = "occupied"
	RoomUnderMaintenance = "under_maintenance"
)

// Room type values
const (
	RoomTypeSingle = "single"
	RoomTypeDouble = "double"
	RoomTypeSuite  = "suite"
	RoomTypeDeluxe = "deluxe"
)

type Room struct {
	ID           uuid.UUID `json:"id" db:"id"`
	HotelName    string    `json:"hotelName" db:"hotel_name"`
	RoomNumber   string    `json:"roomNumber" db:"room_number"`
	RoomType     string    `json:"roomType" db:"room_type"`
	CostPerNight float64   `json:"costPerNight" db:"cost_per_night"`
	Amenities    []string  `json:"amenities" db:"amenities"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// ValidRoomStatus reports whether s is one of the three room states.
func ValidRoomStatus(s string) bool {
	return s == RoomAvailable || s == RoomOccupied || s == RoomUnderMaintenance
}

// ValidRoomType reports whether t is an allowed room type.
func ValidRoomType(t string) bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeDeluxe:
		return true
	}
	return false
}
