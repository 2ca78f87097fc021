package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tripscout/backend/internal/domain"
	"github.com/tripscout/backend/internal/engine"
)

// AdvisorService orchestrates one recommendation: it gathers the forecast,
// flight and hotel data, runs the synthesis engine, and logs the result.
// Each stage hands an immutable value to the next; nothing is accumulated
// on the service itself.
type AdvisorService struct {
	weatherSvc *WeatherService
	flightSvc  *FlightService
	hotelSvc   *HotelService
	repo       ProfileRepository

	wgBg sync.WaitGroup // tracks background log writes for graceful shutdown
}

// NewAdvisorService creates a new advisor service.
func NewAdvisorService(
	weatherSvc *WeatherService,
	flightSvc *FlightService,
	hotelSvc *HotelService,
	repo ProfileRepository,
) *AdvisorService {
	return &AdvisorService{
		weatherSvc: weatherSvc,
		flightSvc:  flightSvc,
		hotelSvc:   hotelSvc,
		repo:       repo,
	}
}

// WaitBackground blocks until all background log writes complete. Call
// during graceful shutdown to avoid dropped writes.
func (s *AdvisorService) WaitBackground() {
	s.wgBg.Wait()
}

// Recommend runs the full pipeline for one request. The request's inline
// profile, when present, overrides the stored one.
func (s *AdvisorService) Recommend(ctx context.Context, req domain.RecommendationRequest) (domain.Recommendation, error) {
	profile, err := s.resolveProfile(ctx, req)
	if err != nil {
		return domain.Recommendation{}, err
	}

	daysAhead := req.DaysAhead
	if daysAhead < 1 {
		daysAhead = 30
	}

	forecast, err := s.weatherSvc.GetForecast(ctx, req.Destination, daysAhead)
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("advisor: forecast fetch failed: %w", err)
	}
	if err := forecast.Validate(); err != nil {
		return domain.Recommendation{}, fmt.Errorf("advisor: %w", err)
	}

	// Flight and hotel searches are independent; fetch them concurrently.
	tripDays := profile.TripLength.Days()
	searchWindow := forecast.Range()
	checkIn := searchWindow.Start
	checkOut := checkIn.AddDays(tripDays)

	var (
		flights domain.FlightSearchResult
		hotels  domain.HotelSearchResult
		wg      sync.WaitGroup
		mu      sync.Mutex
		errs    []error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		f, err := s.flightSvc.SearchFlights(ctx, req.Origin, req.Destination, searchWindow, tripDays, profile)
		mu.Lock()
		if err != nil {
			errs = append(errs, err)
		} else {
			flights = f
		}
		mu.Unlock()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		h, err := s.hotelSvc.SearchHotels(ctx, req.Destination, checkIn, checkOut, forecast.StormPeriods)
		mu.Lock()
		if err != nil {
			errs = append(errs, err)
		} else {
			hotels = h
		}
		mu.Unlock()
	}()

	wg.Wait()

	// A failed option fetch is non-fatal: the window ranks with that
	// sub-score at zero.
	for _, err := range errs {
		log.Printf("Advisor option fetch error: %v", err)
	}

	rec, err := engine.Synthesize(forecast, flights, hotels, profile)
	if err != nil {
		return domain.Recommendation{}, err
	}
	rec.ID = uuid.NewString()

	// Persist the recommendation log asynchronously.
	s.wgBg.Add(1)
	go func() {
		defer s.wgBg.Done()
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.repo.SaveRecommendationLog(bgCtx, req.UserID, rec); err != nil {
			log.Printf("Failed to save recommendation log: %v", err)
		}
	}()

	return rec, nil
}

// resolveProfile picks the inline override or loads the stored profile,
// and validates either one before scoring runs.
func (s *AdvisorService) resolveProfile(ctx context.Context, req domain.RecommendationRequest) (domain.UserProfile, error) {
	if req.Profile != nil {
		if err := req.Profile.Validate(); err != nil {
			return domain.UserProfile{}, fmt.Errorf("advisor: %w", err)
		}
		return *req.Profile, nil
	}

	profile, err := s.repo.GetProfile(ctx, req.UserID)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("advisor: failed to load profile: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return domain.UserProfile{}, fmt.Errorf("advisor: stored profile: %w", err)
	}
	return profile, nil
}

// GetForecast exposes the weather provider to the delivery layer.
func (s *AdvisorService) GetForecast(ctx context.Context, location string, daysAhead int) (domain.WeatherForecast, error) {
	return s.weatherSvc.GetForecast(ctx, location, daysAhead)
}

// SearchFlights exposes the flight provider to the delivery layer.
func (s *AdvisorService) SearchFlights(ctx context.Context, origin, destination string, window domain.DateRange, tripDays int, profile domain.UserProfile) (domain.FlightSearchResult, error) {
	return s.flightSvc.SearchFlights(ctx, origin, destination, window, tripDays, profile)
}

// SearchHotels exposes the hotel provider to the delivery layer.
func (s *AdvisorService) SearchHotels(ctx context.Context, destination string, checkIn, checkOut domain.Date, stormPeriods []domain.DateRange) (domain.HotelSearchResult, error) {
	return s.hotelSvc.SearchHotels(ctx, destination, checkIn, checkOut, stormPeriods)
}
