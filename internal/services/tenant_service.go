package services

import (
	"context"
	"errors"
	"time"

	"hotelhub/internal/models"
	"hotelhub/internal/repositories"
)

var (
	ErrTenantNotFound  = errors.New("no users found for that hotel")
	ErrInvalidPlanType = errors.New("invalid plan type")
)

// DefaultTrialDays is used when a trial reset does not specify a day count.
const DefaultTrialDays = 10

// TenantService is the super-admin overlay: tenant listing and plan
// mutation across the whole installation. It is tenant-agnostic by design.
// It also backs the in-tenant upgrade-plan operation.
type TenantService interface {
	ListTenants(ctx context.Context) ([]*models.TenantSummary, error)
	// SetPlan bulk-updates every user of the tenant. "paid" clears the
	// trial expiry; "trial" resets it to now + days (default 10).
	SetPlan(ctx context.Context, hotelName, planType string, days int) error
	// MarkPaid marks the whole tenant paid (the admin upgrade path).
	MarkPaid(ctx context.Context, hotelName string) error
}

type tenantService struct {
	userRepo repositories.UserRepository
}

func NewTenantService(userRepo repositories.UserRepository) TenantService {
	return &tenantService{userRepo: userRepo}
}

func (s *tenantService) ListTenants(ctx context.Context) ([]*models.TenantSummary, error) {
	return s.userRepo.ListTenantSummaries(ctx)
}

func (s *tenantService) SetPlan(ctx context.Context, hotelName, planType string, days int) error {
	var trialEndsAt *time.Time

	switch planType {
	case models.PlanPaid:
		// paid ⇒ trial expiry cleared, for every member.
	case models.PlanTrial:
		if days <= 0 {
			days = DefaultTrialDays
		}
		end := time.Now().Add(time.Duration(days) * 24 * time.Hour)
		trialEndsAt = &end
	default:
		return ErrInvalidPlanType
	}

	matched, err := s.userRepo.UpdatePlanByHotel(ctx, hotelName, planType, trialEndsAt)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrTenantNotFound
	}
	return nil
}

func (s *tenantService) MarkPaid(ctx context.Context, hotelName string) error {
	return s.SetPlan(ctx, hotelName, models.PlanPaid, 0)
}
