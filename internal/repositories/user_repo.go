package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelhub/internal/models"

	"github.com/google/uuid"
)

// ErrEmailTaken is returned by Create when the email is already registered.
var ErrEmailTaken = errors.New("email already used")

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	// UpdatePlanByHotel bulk-updates plan state for every user of a tenant
	// and reports how many rows matched.
	UpdatePlanByHotel(ctx context.Context, hotelName, planType string, trialEndsAt *time.Time) (int64, error)
	// ListTenantSummaries aggregates all users grouped by hotel name, for
	// the superadmin overlay. Not tenant-scoped by design.
	ListTenantSummaries(ctx context.Context) ([]*models.TenantSummary, error)
}

type userRepo struct {
	db Database
}

func NewUserRepo(db Database) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	// Emails are unique across the whole installation, not per tenant.
	var count int
	emailCheckQuery := `SELECT COUNT(*) FROM users WHERE email = $1`
	if err := r.db.QueryRow(ctx, emailCheckQuery, user.Email).Scan(&count); err != nil {
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if count > 0 {
		return ErrEmailTaken
	}

	query := `
		INSERT INTO users (id, name, hotel_name, email, password_hash, role, plan_type, trial_ends_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, user.ID, user.Name, user.HotelName, user.Email, user.PasswordHash, user.Role, user.PlanType, user.TrialEndsAt)
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, name, hotel_name, email, password_hash, role, plan_type, trial_ends_at, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Name, &user.HotelName, &user.Email, &user.PasswordHash, &user.Role, &user.PlanType, &user.TrialEndsAt, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, name, hotel_name, email, password_hash, role, plan_type, trial_ends_at, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	err := r.db.QueryRow(ctx, query, email).Scan(&user.ID, &user.Name, &user.HotelName, &user.Email, &user.PasswordHash, &user.Role, &user.PlanType, &user.TrialEndsAt, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) UpdateProfile(ctx context.Context, user *models.User) error {
	// Touches only the profile columns. Plan state is owned by
	// UpdatePlanByHotel; writing it from a stale user snapshot here could
	// undo a concurrent plan change.
	query := `
		UPDATE users
		SET name = $1, hotel_name = $2, updated_at = NOW()
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, user.Name, user.HotelName, user.ID)
	return err
}

func (r *userRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, passwordHash, id)
	return err
}

func (r *userRepo) UpdatePlanByHotel(ctx context.Context, hotelName, planType string, trialEndsAt *time.Time) (int64, error) {
	query := `
		UPDATE users
		SET plan_type = $1, trial_ends_at = $2, updated_at = NOW()
		WHERE hotel_name = $3
	`
	tag, err := r.db.Exec(ctx, query, planType, trialEndsAt, hotelName)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *userRepo) ListTenantSummaries(ctx context.Context) ([]*models.TenantSummary, error) {
	query := `
		SELECT hotel_name,
		       COUNT(*),
		       COUNT(*) FILTER (WHERE role = 'admin'),
		       COUNT(*) FILTER (WHERE role = 'staff'),
		       BOOL_OR(plan_type = 'paid'),
		       MIN(trial_ends_at),
		       MIN(created_at)
		FROM users
		WHERE hotel_name <> ''
		GROUP BY hotel_name
		ORDER BY hotel_name ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*models.TenantSummary
	for rows.Next() {
		s := &models.TenantSummary{}
		var anyPaid bool
		if err := rows.Scan(&s.HotelName, &s.UsersCount, &s.AdminsCount, &s.StaffCount, &anyPaid, &s.TrialEndsAt, &s.FirstCreatedAt); err != nil {
			return nil, err
		}
		if anyPaid {
			// Any paid member marks the whole tenant paid.
			s.PlanType = models.PlanPaid
			s.TrialEndsAt = nil
		} else {
			s.PlanType = models.PlanTrial
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
