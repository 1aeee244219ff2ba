// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"insights/internal/handlers"
	"insights/internal/middleware"
	"insights/internal/repositories"
	"insights/internal/services/auth"
	"insights/internal/services/ingest"
	"insights/internal/services/insights"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Repositories and services
	accountRepo := repositories.NewAccountRepository(db)
	adminRepo := repositories.NewAdminUserRepository(db)

	insightsService := insights.NewService(accountRepo, repositories.CacheService)
	ingestService := ingest.NewService(accountRepo, repositories.CacheService)
	authService := auth.NewService(adminRepo)

	insightsHandler := handlers.NewInsightsHandler(insightsService)
	adminHandler := handlers.NewAdminHandler(authService, ingestService)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Customer Insights API",
			"version": "1.0.0",
		})
	})
	app.Get("/health", insightsHandler.Health)

	// Dashboard read endpoints
	app.Get("/summary", insightsHandler.GetSummary)
	app.Get("/records", insightsHandler.GetRecords)
	app.Get("/records/raw", insightsHandler.GetRawRecords)
	app.Get("/records/invalid", insightsHandler.GetInvalidRows)

	analytics := app.Group("/analytics")
	analytics.Get("/health-by-status", insightsHandler.GetHealthByStatus)
	analytics.Get("/revenue-by-status", insightsHandler.GetRevenueByStatus)
	analytics.Get("/notifications-over-time", insightsHandler.GetNotificationsOverTime)

	// Operator endpoints
	admin := app.Group("/admin")
	admin.Post("/login", adminHandler.Login)
	admin.Post("/reload", middleware.AdminAuth, adminHandler.Reload)
}
