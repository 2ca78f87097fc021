package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tripscout/backend/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, advisorSvc *service.AdvisorService, repo service.ProfileRepository) {
	handler := NewHandler(advisorSvc, repo)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		// Profile endpoints
		api.Get("/profile/:id", handler.GetProfile)
		api.Put("/profile/:id", handler.SaveProfile)

		// Provider endpoints
		api.Get("/forecast", handler.GetForecast)
		api.Get("/flights", handler.GetFlights)
		api.Get("/hotels", handler.GetHotels)

		// Recommendation endpoint
		api.Post("/recommendations", handler.Recommend)
	}
}
