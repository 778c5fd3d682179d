// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mood-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/mood-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	moodController     *controller.MoodController
	calendarController *controller.CalendarController
	adminController    *controller.AdminController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	moodController *controller.MoodController,
	calendarController *controller.CalendarController,
	adminController *controller.AdminController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		moodController:     moodController,
		calendarController: calendarController,
		adminController:    adminController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// Mood routes (require authentication)
		if r.moodController != nil && r.authMiddleware != nil {
			moods := v1.Group("/moods")
			moods.Use(r.authMiddleware.Authenticate())
			{
				moods.GET("", r.moodController.List)
				moods.POST("", r.moodController.Upsert)
				moods.PATCH("/:id", r.moodController.Update)
				moods.DELETE("/:id", r.moodController.Delete)
			}
		}

		// Calendar routes (require authentication)
		if r.calendarController != nil && r.authMiddleware != nil {
			calendar := v1.Group("/calendar")
			calendar.Use(r.authMiddleware.Authenticate())
			{
				calendar.GET("/:year/:month", r.calendarController.GetMonth)
			}
		}

		// Admin routes (require authentication and the admin role)
		if r.adminController != nil && r.authMiddleware != nil {
			admin := v1.Group("/admin")
			admin.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				admin.GET("/users", r.adminController.ListUserStats)
				admin.GET("/users/:id/moods", r.adminController.GetUserMoods)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
