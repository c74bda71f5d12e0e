package handlers

import (
	"log"
	"net/http"
	"time"

	"hotelhub/internal/caching"
	"hotelhub/internal/common"
	"hotelhub/internal/models"
	"hotelhub/internal/repositories"
	"hotelhub/internal/services"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength  = 6
	loginAttemptLimit  = 10
	loginAttemptWindow = time.Minute
)

// AuthHandlers handles registration, login and profile management.
type AuthHandlers struct {
	userRepo  repositories.UserRepository
	authSvc   services.AuthService
	cacheSvc  caching.CacheService
	trialDays int
}

func NewAuthHandlers(userRepo repositories.UserRepository, authSvc services.AuthService, cacheSvc caching.CacheService, trialDays int) *AuthHandlers {
	return &AuthHandlers{
		userRepo:  userRepo,
		authSvc:   authSvc,
		cacheSvc:  cacheSvc,
		trialDays: trialDays,
	}
}

// RegisterRequest represents the registration payload
type RegisterRequest struct {
	HotelName string `json:"hotelName"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the {token, user} pair returned by register and login.
type TokenResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register creates a tenant user. The first user of a hotel effectively
// creates the tenant; every new user starts on a trial plan expiring
// trialDays from now.
func (h *AuthHandlers) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return common.SendValidationError(c, "Invalid request format")
	}

	if req.HotelName == "" || req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return common.SendValidationError(c, "Missing fields")
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleStaff {
		return common.SendValidationError(c, "Role must be admin or staff")
	}
	if len(req.Password) < minPasswordLength {
		return common.SendValidationError(c, "Password must be at least 6 characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return common.SendServerError(c, "Registration failed")
	}

	trialEndsAt := time.Now().Add(time.Duration(h.trialDays) * 24 * time.Hour)
	user := &models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		HotelName:    req.HotelName,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         req.Role,
		PlanType:     models.PlanTrial,
		TrialEndsAt:  &trialEndsAt,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := h.userRepo.Create(ctx, user); err != nil {
		if err == repositories.ErrEmailTaken {
			return common.SendValidationError(c, "Email already used")
		}
		log.Printf("REGISTER ERROR: %v", err)
		return common.SendServerError(c, "Registration failed")
	}

	token, err := h.authSvc.GenerateToken(user.ID)
	if err != nil {
		log.Printf("REGISTER ERROR: token generation: %v", err)
		return common.SendServerError(c, "Registration failed")
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token, User: user})
}

// Login authenticates by email and password. A wrong password and an
// unknown email are indistinguishable to the caller.
func (h *AuthHandlers) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return common.SendValidationError(c, "Invalid request format")
	}

	if req.Email == "" || req.Password == "" {
		return common.SendValidationError(c, "Missing email or password")
	}

	// Throttle repeated attempts per email. Redis failures fail open.
	limited, err := h.cacheSvc.IsRateLimited(ctx, "login:"+req.Email, loginAttemptLimit, loginAttemptWindow)
	if err != nil {
		log.Printf("LOGIN: rate limit check failed: %v", err)
	} else if limited {
		return c.JSON(http.StatusTooManyRequests, common.CreateErrorResponse("RATE_LIMITED", "Too many login attempts, try again later", nil))
	}
	if err := h.cacheSvc.IncrementRateLimit(ctx, "login:"+req.Email, loginAttemptWindow); err != nil {
		log.Printf("LOGIN: rate limit increment failed: %v", err)
	}

	user, err := h.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err != pgx.ErrNoRows {
			log.Printf("LOGIN ERROR: %v", err)
		}
		return common.SendUnauthorizedError(c, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return common.SendUnauthorizedError(c, "Invalid credentials")
	}

	token, err := h.authSvc.GenerateToken(user.ID)
	if err != nil {
		log.Printf("LOGIN ERROR: token generation: %v", err)
		return common.SendServerError(c, "Login failed")
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token, User: user})
}

// Me returns the current user profile.
func (h *AuthHandlers) Me(c echo.Context) error {
	user, ok := common.GetUserFromContext(c.Request().Context())
	if !ok {
		return common.SendUnauthorizedError(c, "User not authenticated")
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfileRequest represents the profile edit payload
type UpdateProfileRequest struct {
	Name      string `json:"name"`
	HotelName string `json:"hotelName"`
}

// UpdateProfile changes the display name; admins may also rename their
// hotel, which moves the whole profile to the new tenant name.
func (h *AuthHandlers) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	user, ok := common.GetUserFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c, "User not authenticated")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return common.SendValidationError(c, "Invalid request format")
	}
	if req.Name == "" {
		return common.SendValidationError(c, "Name is required")
	}

	user.Name = req.Name
	if req.HotelName != "" && user.Role == models.RoleAdmin {
		user.HotelName = req.HotelName
	}

	if err := h.userRepo.UpdateProfile(ctx, user); err != nil {
		log.Printf("PROFILE UPDATE ERROR: %v", err)
		return common.SendServerError(c, "Failed to update profile")
	}

	return c.JSON(http.StatusOK, user)
}

// ChangePasswordRequest represents the password change payload
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *AuthHandlers) ChangePassword(c echo.Context) error {
	ctx := c.Request().Context()

	user, ok := common.GetUserFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c, "User not authenticated")
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return common.SendValidationError(c, "Invalid request format")
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return common.SendValidationError(c, "Current and new password are required")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return common.SendValidationError(c, "Current password is incorrect")
	}
	if len(req.NewPassword) < minPasswordLength {
		return common.SendValidationError(c, "New password must be at least 6 characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.SendServerError(c, "Failed to change password")
	}

	if err := h.userRepo.UpdatePassword(ctx, user.ID, string(hashedPassword)); err != nil {
		log.Printf("CHANGE PASSWORD ERROR: %v", err)
		return common.SendServerError(c, "Failed to change password")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Password updated successfully"})
}
