// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/mood-tracker/backend/config"
	"github.com/mood-tracker/backend/internal/application/adapter"
	"github.com/mood-tracker/backend/internal/application/usecase/admin"
	"github.com/mood-tracker/backend/internal/application/usecase/auth"
	"github.com/mood-tracker/backend/internal/application/usecase/mood"
	"github.com/mood-tracker/backend/internal/infra/server/router"
	"github.com/mood-tracker/backend/internal/integration/adapters"
	"github.com/mood-tracker/backend/internal/integration/email"
	"github.com/mood-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/mood-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/mood-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	moodRepo := persistence.NewMoodEntryRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)

	// Email service is optional; without an API key the forgot-password
	// flow logs the reset URL instead of sending it.
	var emailService adapter.EmailService
	if cfg.Email.ResendAPIKey != "" {
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		emailService = email.NewService(sender)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)

	// Create mood use cases
	listMoodsUseCase := mood.NewListMoodsUseCase(moodRepo)
	upsertMoodUseCase := mood.NewUpsertMoodUseCase(moodRepo)
	updateMoodUseCase := mood.NewUpdateMoodUseCase(moodRepo)
	deleteMoodUseCase := mood.NewDeleteMoodUseCase(moodRepo)
	monthViewUseCase := mood.NewMonthViewUseCase(moodRepo)

	// Create admin use cases
	listUserStatsUseCase := admin.NewListUserStatsUseCase(userRepo, moodRepo)
	getUserMoodsUseCase := admin.NewGetUserMoodsUseCase(userRepo, moodRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	moodController := controller.NewMoodController(
		listMoodsUseCase,
		upsertMoodUseCase,
		updateMoodUseCase,
		deleteMoodUseCase,
	)

	calendarController := controller.NewCalendarController(monthViewUseCase)

	adminController := controller.NewAdminController(
		listUserStatsUseCase,
		getUserMoodsUseCase,
	)

	// Create middleware
	// Use higher rate limits for the test environment to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		moodController,
		calendarController,
		adminController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
