package models

import (
	"time"

	"github.com/google/uuid"
)

// Action tags written by the services.
const (
	ActionRoomCreated          = "ROOM_CREATED"
	ActionRoomStatusChange     = "ROOM_STATUS_CHANGE"
	ActionBookingCreated       = "BOOKING_CREATED"
	ActionBookingPaymentUpdate = "BOOKING_PAYMENT_UPDATE"
	ActionBookingCheckout      = "BOOKING_CHECKOUT"
	ActionBookingIDProofUpload = "BOOKING_ID_PROOF_UPLOAD"
)

// LogEntry is an append-only audit record. Entries are never updated or
// deleted.
type LogEntry struct {
	ID         uuid.UUID `json:"id" db:"id"`
	HotelName  string    `json:"hotelName" db:"hotel_name"`
	Action     string    `json:"action" db:"action"`
	EntityType string    `json:"entityType" db:"entity_type"`
	EntityID   string    `json:"entityId" db:"entity_id"`
	Message    string    `json:"message" db:"message"`
	UserName   string    `json:"userName" db:"user_name"`
	UserRole   string    `json:"userRole" db:"user_role"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
