package models

import (
	"time"

	"github.com/google/uuid"
)

// Role values
const (
	RoleAdmin      = "admin"
	RoleStaff      = "staff"
	RoleSuperAdmin = "superadmin"
)

// Plan values
const (
	PlanTrial = "trial"
	PlanPaid  = "paid"
)

type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	HotelName    string     `json:"hotelName" db:"hotel_name"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"` // Never serialize in JSON
	Role         string     `json:"role" db:"role"`
	PlanType     string     `json:"planType" db:"plan_type"`
	TrialEndsAt  *time.Time `json:"trialEndsAt" db:"trial_ends_at"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}

// TenantSummary is the superadmin view of one hotel, aggregated over its users.
type TenantSummary struct {
	HotelName      string     `json:"hotelName"`
	PlanType       string     `json:"planType"`
	TrialEndsAt    *time.Time `json:"trialEndsAt"`
	UsersCount     int        `json:"usersCount"`
	AdminsCount    int        `json:"adminsCount"`
	StaffCount     int        `json:"staffCount"`
	FirstCreatedAt time.Time  `json:"firstCreatedAt"`
}
