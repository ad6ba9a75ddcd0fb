package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"FindrHealth/config"
	"FindrHealth/internal/handler"
	"FindrHealth/internal/middleware"
)

func Register(h *server.Hertz) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.CORSMiddleware())
	h.Use(middleware.OpenTelemetryMiddleware())

	h.GET("/health", handler.Health)

	v1 := h.Group("/v1")

	// Business lookup, open so the landing page can search before any
	// session exists.
	search := v1.Group("/search")
	search.Use(middleware.SearchRateLimitMiddleware())
	{
		search.POST("/business", handler.SearchBusiness)
		search.GET("/place/:place_id", handler.GetPlaceDetails)
	}

	// Email verification. The send endpoint mints the session, verify
	// issues the wizard token.
	verification := v1.Group("/verification")
	verification.Use(middleware.VerificationRateLimitMiddleware())
	if config.Cfg.CSRFEnabled {
		verification.Use(middleware.CSRFMiddlewares()...)
		verification.GET("/csrf", middleware.CSRFToken)
	}
	{
		verification.POST("/send", handler.SendVerificationCode)
		verification.POST("/verify", handler.VerifyCode)
	}

	// Wizard routes require the token issued at verification.
	onboarding := v1.Group("/onboarding")
	onboarding.Use(middleware.AuthMiddleware())
	onboarding.Use(middleware.GeneralRateLimitMiddleware())
	if config.Cfg.CSRFEnabled {
		onboarding.Use(middleware.CSRFMiddlewares()...)
	}
	{
		onboarding.POST("/session", handler.CreateSession)
		onboarding.GET("/state", handler.GetWizardState)
		onboarding.POST("/advance", handler.AdvanceStep)
		onboarding.POST("/back", handler.GoBack)
		onboarding.POST("/jump", handler.JumpToStep)
		onboarding.GET("/catalog", handler.GetServiceCatalog)
	}

	// Public provider profiles.
	providers := v1.Group("/providers")
	{
		providers.GET("/:provider_id", handler.GetProvider)
	}

	// Dashboard preview. Demo data only, no login required.
	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("/stats", handler.GetDashboardStats)
		dashboard.GET("/bookings", handler.GetDashboardBookings)
		dashboard.GET("/reviews", handler.GetDashboardReviews)
	}
}
