package engine

import (
	"sort"

	"github.com/tripscout/backend/internal/domain"
)

// Overall score weights. They sum to exactly 1.0; the overall score is the
// weighted sum of the three sub-scores with no other adjustment.
const (
	WeatherWeight = 0.40
	FlightWeight  = 0.35
	HotelWeight   = 0.25
)

// BuildWindows scores every candidate and assembles travel windows with
// their best-fit flight and hotel. Candidates with no weather days are
// discarded; a window with no qualifying flight or hotel is retained with
// that sub-score at zero and the option unset.
func BuildWindows(
	candidates []domain.DateRange,
	forecast domain.WeatherForecast,
	flights domain.FlightSearchResult,
	hotels domain.HotelSearchResult,
	profile domain.UserProfile,
) []domain.TravelWindow {
	windows := make([]domain.TravelWindow, 0, len(candidates))

	for _, cand := range candidates {
		days := forecast.DaysWithin(cand)
		if len(days) == 0 {
			continue
		}

		weatherScore, summary := ScoreWeather(days, profile)
		flightScore, bestFlight := selectFlight(flights.Options, cand.Start, profile)
		hotelScore, bestHotel := selectHotel(hotels.Options, profile)

		windows = append(windows, domain.TravelWindow{
			Start:          cand.Start,
			End:            cand.End,
			WeatherScore:   weatherScore,
			FlightScore:    flightScore,
			HotelScore:     hotelScore,
			Flight:         bestFlight,
			Hotel:          bestHotel,
			WeatherSummary: summary,
		})
	}

	return windows
}

// selectFlight picks the highest-scoring in-budget flight for a departure
// date. Exact date matches are preferred; otherwise any departure within
// the profile's flexibility qualifies. Ties keep the first option seen.
func selectFlight(options []domain.FlightOption, start domain.Date, profile domain.UserProfile) (float64, *domain.FlightOption) {
	var matching []domain.FlightOption
	for _, f := range options {
		if f.DepartureDate.Equal(start) {
			matching = append(matching, f)
		}
	}
	if len(matching) == 0 {
		for _, f := range options {
			diff := start.DaysUntil(f.DepartureDate)
			if diff < 0 {
				diff = -diff
			}
			if diff <= profile.FlexibilityDays {
				matching = append(matching, f)
			}
		}
	}

	var best *domain.FlightOption
	bestScore := 0.0
	for i := range matching {
		if matching[i].Price > profile.FlightBudgetHard {
			continue
		}
		score, _ := ScoreFlight(matching[i], profile)
		if best == nil || score > bestScore {
			f := matching[i]
			best = &f
			bestScore = score
		}
	}
	if best == nil {
		return 0, nil
	}
	return bestScore, best
}

// selectHotel applies the profile's hard filters and picks the
// highest-scoring survivor. Ties keep the first option seen.
func selectHotel(options []domain.HotelOption, profile domain.UserProfile) (float64, *domain.HotelOption) {
	var best *domain.HotelOption
	bestScore := 0.0
	for i := range options {
		h := options[i]
		if !h.MatchesBudget(profile.HotelBudgetMin, profile.HotelBudgetMax) {
			continue
		}
		if profile.SafetyPriority >= 4 && h.StarRating < 3.5 {
			continue
		}
		if profile.ComfortPriority >= 4 && h.GuestRating < 4.0 {
			continue
		}
		score, _ := ScoreHotel(h, profile)
		if best == nil || score > bestScore {
			best = &h
			bestScore = score
		}
	}
	if best == nil {
		return 0, nil
	}
	return bestScore, best
}

// RankWindows computes each window's overall score and returns a new slice
// sorted descending. The sort is stable: equal scores preserve candidate
// order.
func RankWindows(windows []domain.TravelWindow) []domain.TravelWindow {
	ranked := make([]domain.TravelWindow, len(windows))
	copy(ranked, windows)

	for i := range ranked {
		ranked[i].OverallScore = ranked[i].WeatherScore*WeatherWeight +
			ranked[i].FlightScore*FlightWeight +
			ranked[i].HotelScore*HotelWeight
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].OverallScore > ranked[j].OverallScore
	})

	return ranked
}
