package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotelhub/internal/common"
	"hotelhub/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func planGuardRequest(t *testing.T, user *models.User) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
	if user != nil {
		ctx := context.WithValue(req.Context(), common.UserKey, user)
		ctx = context.WithValue(ctx, common.UserIDKey, user.ID)
		ctx = context.WithValue(ctx, common.HotelNameKey, user.HotelName)
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := PlanGuard()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, handler(c)
}

func TestPlanGuard_PaidUserPasses(t *testing.T) {
	// A paid user with a stale expiry timestamp in the past still passes.
	stale := time.Now().Add(-48 * time.Hour)
	user := &models.User{ID: uuid.New(), PlanType: models.PlanPaid, TrialEndsAt: &stale}

	rec, err := planGuardRequest(t, user)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPlanGuard_TrialWithinWindowPasses(t *testing.T) {
	ends := time.Now().Add(72 * time.Hour)
	user := &models.User{ID: uuid.New(), PlanType: models.PlanTrial, TrialEndsAt: &ends}

	rec, err := planGuardRequest(t, user)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPlanGuard_TrialWithoutExpiryPasses(t *testing.T) {
	user := &models.User{ID: uuid.New(), PlanType: models.PlanTrial}

	rec, err := planGuardRequest(t, user)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPlanGuard_ExpiredTrialGets402(t *testing.T) {
	ends := time.Now().Add(-time.Hour)
	user := &models.User{ID: uuid.New(), PlanType: models.PlanTrial, TrialEndsAt: &ends}

	rec, err := planGuardRequest(t, user)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Contains(t, rec.Body.String(), "TRIAL_EXPIRED")
	assert.Contains(t, rec.Body.String(), "trialEndsAt")
}

func TestPlanGuard_MissingUserIsUnauthorized(t *testing.T) {
	rec, err := planGuardRequest(t, nil)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestRequireRole_MatchingRolePasses(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/logs", nil)
	user := &models.User{ID: uuid.New(), Role: models.RoleAdmin}
	req = req.WithContext(context.WithValue(req.Context(), common.UserKey, user))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireRole(models.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_WrongRoleIsForbidden(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/logs", nil)
	user := &models.User{ID: uuid.New(), Role: models.RoleStaff}
	req = req.WithContext(context.WithValue(req.Context(), common.UserKey, user))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireRole(models.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// Middleware refusals use the same error envelope as the handlers.
	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
	assert.Contains(t, rec.Body.String(), "Insufficient permissions")
}
