package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tripscout/backend/internal/domain"
)

// ErrNoViableWindow is returned when ranking produces no candidate windows
// at all. It is fatal to the synthesis call and carries no partial result.
var ErrNoViableWindow = errors.New("no viable travel window found")

// Synthesize runs the full pipeline: validate inputs, generate candidate
// windows, score and rank them, and produce the final recommendation with
// reasoning and rejection text.
func Synthesize(
	forecast domain.WeatherForecast,
	flights domain.FlightSearchResult,
	hotels domain.HotelSearchResult,
	profile domain.UserProfile,
) (domain.Recommendation, error) {
	if err := profile.Validate(); err != nil {
		return domain.Recommendation{}, fmt.Errorf("engine: %w", err)
	}
	if err := forecast.Validate(); err != nil {
		return domain.Recommendation{}, fmt.Errorf("engine: %w", err)
	}

	candidates := GenerateCandidateWindows(forecast, profile)
	windows := BuildWindows(candidates, forecast, flights, hotels, profile)
	ranked := RankWindows(windows)

	if len(ranked) == 0 {
		return domain.Recommendation{}, ErrNoViableWindow
	}

	recommended := ranked[0]
	end := 4
	if end > len(ranked) {
		end = len(ranked)
	}
	alternatives := ranked[1:end]

	return domain.Recommendation{
		RecommendedWindow: recommended,
		Alternatives:      alternatives,
		Reasoning:         buildReasoning(recommended, profile),
		WhyNotOthers:      buildRejection(ranked, forecast, profile),
		ProfileUsed:       profile,
		GeneratedAt:       time.Now(),
	}, nil
}

// buildReasoning explains why the top window won: a weather clause keyed on
// score thresholds, a flight clause naming tier and price, and a hotel
// clause naming loyalty match or star rating.
func buildReasoning(window domain.TravelWindow, profile domain.UserProfile) string {
	var reasons []string

	switch {
	case window.WeatherScore >= 85:
		reasons = append(reasons, fmt.Sprintf(
			"Weather is excellent during this period (%s), matching your preference for %d-%d°F",
			window.WeatherSummary, profile.PreferredTempMin, profile.PreferredTempMax))
	case window.WeatherScore >= 70:
		reasons = append(reasons, fmt.Sprintf(
			"Weather is favorable (%s), with most days in your preferred temperature range",
			window.WeatherSummary))
	default:
		reasons = append(reasons, fmt.Sprintf(
			"Weather is acceptable (%s), though some compromise on conditions",
			window.WeatherSummary))
	}

	if window.Flight != nil {
		flight := window.Flight
		switch flight.BudgetTier(profile.FlightBudgetSoft, profile.FlightBudgetHard) {
		case domain.TierGreat:
			reasons = append(reasons, fmt.Sprintf(
				"Flight pricing is excellent at $%d, well within your $%d target budget",
				flight.Price, profile.FlightBudgetSoft))
		case domain.TierAcceptable:
			reasons = append(reasons, fmt.Sprintf(
				"Flight at $%d fits your $%d maximum budget",
				flight.Price, profile.FlightBudgetHard))
		}
		if flight.Stops == 0 {
			reasons = append(reasons, "with convenient nonstop service")
		}
	} else {
		reasons = append(reasons, fmt.Sprintf(
			"No flights within your $%d budget for this window; consider another date or a higher budget",
			profile.FlightBudgetHard))
	}

	if window.Hotel != nil {
		hotel := window.Hotel
		if hotel.MatchesLoyalty(profile.HotelLoyalty) {
			reasons = append(reasons, fmt.Sprintf(
				"Lodging at %s earns %s points and is within your $%d-$%d nightly budget",
				hotel.Name, profile.HotelLoyalty, profile.HotelBudgetMin, profile.HotelBudgetMax))
		} else {
			reasons = append(reasons, fmt.Sprintf(
				"Lodging at %s ($%d/night) provides %.1f-star comfort within budget",
				hotel.Name, hotel.NightlyRate, hotel.StarRating))
		}
	}

	return strings.Join(reasons, ". ") + "."
}

// buildRejection explains why the periods beyond the top four lost. One
// clause per triggered condition; forecast storm periods are always named
// when present; a generic fallback guarantees the text is never empty.
func buildRejection(ranked []domain.TravelWindow, forecast domain.WeatherForecast, profile domain.UserProfile) string {
	var clauses []string

	poorWeather := 0
	tooExpensive := 0
	if len(ranked) > 4 {
		for _, window := range ranked[4:] {
			if window.WeatherScore < 50 {
				poorWeather++
			}
			if window.FlightScore < 60 {
				tooExpensive++
			}
		}
	}

	if len(forecast.StormPeriods) > 0 {
		names := make([]string, 0, len(forecast.StormPeriods))
		for _, p := range forecast.StormPeriods {
			names = append(names, fmt.Sprintf("%s-%s", p.Start.Format("Jan 02"), p.End.Format("Jan 02")))
		}
		clauses = append(clauses, fmt.Sprintf(
			"Storm periods (%s) were avoided due to safety and weather concerns",
			strings.Join(names, ", ")))
	}

	if poorWeather > 3 {
		clauses = append(clauses, fmt.Sprintf(
			"Several periods had suboptimal weather (frequent rain or temperatures outside your %d-%d°F preference)",
			profile.PreferredTempMin, profile.PreferredTempMax))
	}

	if tooExpensive > 3 {
		clauses = append(clauses, fmt.Sprintf(
			"Many departure dates had flights exceeding your $%d maximum budget",
			profile.FlightBudgetHard))
	}

	if len(clauses) == 0 {
		clauses = append(clauses,
			"Other periods were viable but scored lower on the combination of weather, pricing, and schedule convenience")
	}

	return strings.Join(clauses, ". ") + "."
}
