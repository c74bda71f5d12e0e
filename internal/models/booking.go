package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking status values
const (
	BookingActive     = "active"
	BookingCheckedOut = "checked_out"
)

type Booking struct {
	ID            uuid.UUID `json:"id" db:"id"`
	HotelName     string    `json:"hotelName" db:"hotel_name"`
	RoomID        uuid.UUID `json:"roomId" db:"room_id"`
	GuestName     string    `json:"guestName" db:"guest_name"`
	GuestPhone    string    `json:"guestPhone" db:"guest_phone"`
	CheckInDate   time.Time `json:"checkInDate" db:"check_in_date"`
	CheckOutDate  time.Time `json:"checkOutDate" db:"check_out_date"`
	IDProofType   string    `json:"idProofType" db:"id_proof_type"`
	IDProofNumber string    `json:"idProofNumber" db:"id_proof_number"`
	IDProofObject *string   `json:"idProofObject,omitempty" db:"id_proof_object"`
	IsPaid        bool      `json:"isPaid" db:"is_paid"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`

	// Room is the joined room record, populated on reads.
	Room *Room `json:"room,omitempty"`
}
