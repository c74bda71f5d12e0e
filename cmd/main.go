package main

import (
	"context"
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"hotelhub/internal/caching"
	"hotelhub/internal/config"
	"hotelhub/internal/handlers"
	"hotelhub/internal/middleware"
	"hotelhub/internal/repositories"
	"hotelhub/internal/services"
	"hotelhub/pkg/database"
	"hotelhub/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	cacheSvc := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	storageSvc, err := services.NewMinioStorage(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}
	if err := storageSvc.EnsureBucketExists(context.Background(), cfg.MinioBucket); err != nil {
		log.Printf("WARN: could not ensure bucket %s exists: %v", cfg.MinioBucket, err)
	}

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	roomRepo := repositories.NewRoomRepo(pool)
	bookingRepo := repositories.NewBookingRepo(pool)
	logRepo := repositories.NewLogRepo(pool)

	// Services
	authSvc := services.NewAuthService(cfg.JWTSecret)
	auditSvc := services.NewAuditService(logRepo)
	roomSvc := services.NewRoomService(roomRepo, auditSvc)
	bookingSvc := services.NewBookingService(bookingRepo, roomRepo, auditSvc, storageSvc, cfg.MinioBucket)
	dashboardSvc := services.NewDashboardService(roomRepo, bookingRepo)
	tenantSvc := services.NewTenantService(userRepo)

	// Handlers
	authHandlers := handlers.NewAuthHandlers(userRepo, authSvc, cacheSvc, cfg.TrialDays)
	roomHandlers := handlers.NewRoomHandlers(roomSvc)
	bookingHandlers := handlers.NewBookingHandlers(bookingSvc)
	logHandlers := handlers.NewLogHandlers(auditSvc)
	dashboardHandlers := handlers.NewDashboardHandlers(dashboardSvc, tenantSvc)
	superAdminHandlers := handlers.NewSuperAdminHandlers(tenantSvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)

	e := echo.New()
	e.HideBanner = true

	// Global middleware
	e.Pre(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	e.GET("/health", healthHandlers.HealthCheck)

	// Authentication routes (no token required)
	auth := e.Group("/auth")
	auth.POST("/register", authHandlers.Register)
	auth.POST("/login", authHandlers.Login)

	accessGate := middleware.JWTMiddleware(authSvc, userRepo)

	// Profile routes: authenticated but never plan-gated, so an expired
	// tenant can still sign in and manage its account.
	profile := e.Group("/auth", accessGate)
	profile.GET("/me", authHandlers.Me)
	profile.PUT("/profile", authHandlers.UpdateProfile)
	profile.PUT("/change-password", authHandlers.ChangePassword)

	// Plan-gated business routes
	planGated := e.Group("", accessGate, middleware.PlanGuard())
	planGated.GET("/rooms", roomHandlers.ListRooms)
	planGated.POST("/rooms", roomHandlers.CreateRoom, middleware.RequireRole("admin"))
	planGated.PUT("/rooms/:id/status", roomHandlers.UpdateRoomStatus)

	planGated.GET("/bookings", bookingHandlers.ListBookings)
	planGated.POST("/bookings", bookingHandlers.CreateBooking)
	planGated.PUT("/bookings/:id/payment", bookingHandlers.UpdatePayment)
	planGated.PUT("/bookings/:id/checkout", bookingHandlers.Checkout)
	planGated.POST("/bookings/:id/id-proof", bookingHandlers.UploadIDProof)
	planGated.GET("/bookings/:id/id-proof", bookingHandlers.GetIDProof)

	planGated.GET("/logs", logHandlers.ListLogs, middleware.RequireRole("admin"))

	planGated.GET("/dashboard/summary", dashboardHandlers.Summary)
	planGated.GET("/dashboard/recent-bookings", dashboardHandlers.RecentBookings)

	// Upgrade path stays reachable after trial expiry.
	e.PUT("/dashboard/upgrade-plan", dashboardHandlers.UpgradePlan, accessGate, middleware.RequireRole("admin"))

	// Super-admin overlay, tenant-agnostic.
	superadmin := e.Group("/superadmin", accessGate, middleware.RequireRole("superadmin"))
	superadmin.GET("/hotels", superAdminHandlers.ListHotels)
	superadmin.PUT("/hotels/:tenantName/plan", superAdminHandlers.UpdateHotelPlan)

	// Embedded single-page client
	web.Register(e)

	log.Printf("hotelhub server starting on port %d", cfg.Port)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Port)))
}
