package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tripscout/backend/internal/domain"
	"github.com/tripscout/backend/internal/engine"
	"github.com/tripscout/backend/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	advisorSvc *service.AdvisorService
	repo       service.ProfileRepository
}

// NewHandler creates a new handler
func NewHandler(advisorSvc *service.AdvisorService, repo service.ProfileRepository) *Handler {
	return &Handler{
		advisorSvc: advisorSvc,
		repo:       repo,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := h.repo.Health(c.Context()); err != nil {
		dbStatus = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":   "ok",
		"service":  "tripscout-backend",
		"version":  "1.0.0",
		"database": dbStatus,
	})
}

// GetProfile returns the stored preference profile for a user
func (h *Handler) GetProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Params("id")

	profile, err := h.repo.GetProfile(ctx, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    profile,
	})
}

// SaveProfile validates and stores a preference profile for a user
func (h *Handler) SaveProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Params("id")

	var profile domain.UserProfile
	if err := c.BodyParser(&profile); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := profile.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.repo.SaveProfile(ctx, userID, profile); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save profile")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    profile,
	})
}

// GetForecast returns the weather forecast for a destination
func (h *Handler) GetForecast(c *fiber.Ctx) error {
	ctx := c.Context()

	destination := c.Query("destination", "Maui, Hawaii")
	days := c.QueryInt("days", 30)
	if days < 1 || days > 90 {
		days = 30
	}

	forecast, err := h.advisorSvc.GetForecast(ctx, destination, days)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch forecast")
	}

	return c.JSON(domain.WeatherForecastResponse{
		Data:    forecast,
		Success: true,
	})
}

// GetFlights returns flight options for a route and departure window
func (h *Handler) GetFlights(c *fiber.Ctx) error {
	ctx := c.Context()

	origin := c.Query("origin", "SFO")
	destination := c.Query("destination", "OGG")
	tripDays := c.QueryInt("trip_days", 7)

	window, err := queryDateRange(c, 30)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	flights, err := h.advisorSvc.SearchFlights(ctx, origin, destination, window, tripDays, domain.ExampleProfile())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch flights")
	}

	return c.JSON(domain.FlightSearchResponse{
		Data:    flights,
		Success: true,
	})
}

// GetHotels returns hotel options for a stay
func (h *Handler) GetHotels(c *fiber.Ctx) error {
	ctx := c.Context()

	destination := c.Query("destination", "Maui, Hawaii")

	window, err := queryDateRange(c, 7)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	hotels, err := h.advisorSvc.SearchHotels(ctx, destination, window.Start, window.End, nil)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch hotels")
	}

	return c.JSON(domain.HotelSearchResponse{
		Data:    hotels,
		Success: true,
	})
}

// Recommend runs the full recommendation pipeline for a request
func (h *Handler) Recommend(c *fiber.Ctx) error {
	ctx := c.Context()

	var req domain.RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Destination == "" {
		req.Destination = "Maui, Hawaii"
	}
	if req.Origin == "" {
		req.Origin = "SFO"
	}

	rec, err := h.advisorSvc.Recommend(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrNoViableWindow):
			return fiber.NewError(fiber.StatusUnprocessableEntity, "No viable travel window found for these preferences")
		case errors.Is(err, domain.ErrInvalidInput):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate recommendation")
		}
	}

	return c.JSON(domain.RecommendationResponse{
		Data:      rec,
		Narrative: rec.FormatText(),
		Success:   true,
	})
}

// queryDateRange parses optional start/end query params, defaulting to a
// window of spanDays starting today.
func queryDateRange(c *fiber.Ctx, spanDays int) (domain.DateRange, error) {
	today := domain.DateOf(time.Now())
	window := domain.DateRange{Start: today, End: today.AddDays(spanDays)}

	if raw := c.Query("start"); raw != "" {
		start, err := domain.ParseDate(raw)
		if err != nil {
			return domain.DateRange{}, err
		}
		window.Start = start
		window.End = start.AddDays(spanDays)
	}
	if raw := c.Query("end"); raw != "" {
		end, err := domain.ParseDate(raw)
		if err != nil {
			return domain.DateRange{}, err
		}
		window.End = end
	}
	if window.End.Before(window.Start) {
		return domain.DateRange{}, errors.New("end date precedes start date")
	}
	return window, nil
}
