package engine

import (
	"fmt"
	"strings"

	"github.com/tripscout/backend/internal/domain"
	"github.com/tripscout/backend/pkg/utils"
)

// Component weights for flight scoring. Together they cover the full score.
const (
	flightPriceWeight       = 0.4
	flightConvenienceWeight = 0.3
	flightScheduleWeight    = 0.3
)

// ScoreFlight scores one flight option against the profile. Returns a
// 0-100 score and a rationale built from short tags.
func ScoreFlight(flight domain.FlightOption, profile domain.UserProfile) (float64, string) {
	var factors []string

	// Price tier. Callers are expected to exclude over-hard-budget flights
	// upstream, but the tier still handles them.
	var priceScore float64
	switch flight.BudgetTier(profile.FlightBudgetSoft, profile.FlightBudgetHard) {
	case domain.TierGreat:
		priceScore = 100
		factors = append(factors, fmt.Sprintf("excellent price ($%d)", flight.Price))
	case domain.TierAcceptable:
		priceScore = 70
		factors = append(factors, fmt.Sprintf("acceptable price ($%d)", flight.Price))
	default:
		priceScore = 0
		factors = append(factors, fmt.Sprintf("over budget ($%d)", flight.Price))
	}

	// Convenience: stops and total duration.
	var convenienceScore float64
	switch {
	case flight.Stops == 0:
		convenienceScore = 100
		factors = append(factors, "nonstop")
	case flight.Stops == 1:
		convenienceScore = 75
		factors = append(factors, "1 stop")
	default:
		convenienceScore = 50
		factors = append(factors, fmt.Sprintf("%d stops", flight.Stops))
	}
	if flight.DurationHours > 12 {
		convenienceScore *= 0.8
	}

	// Schedule fit: red-eye rejection dominates, weekend departure nudges.
	scheduleScore := 100.0
	redEye := flight.IsRedEyeOutbound || flight.IsRedEyeReturn
	if redEye {
		if profile.CanTakeRedEye {
			factors = append(factors, "red-eye")
		} else {
			scheduleScore = 0
			factors = append(factors, "red-eye (disliked)")
		}
	}
	if profile.PrefersWeekdayDeparture {
		if isMidweek(flight.DepartureDayOfWeek) {
			factors = append(factors, "weekday departure")
		} else {
			scheduleScore *= 0.9
			factors = append(factors, "weekend departure")
		}
	}

	score := priceScore*flightPriceWeight +
		convenienceScore*flightConvenienceWeight +
		scheduleScore*flightScheduleWeight

	rationale := flight.Airline + ": " + strings.Join(factors, ", ")
	return utils.RoundTo(utils.Clamp(score, 0, 100), 1), rationale
}

// isMidweek reports Monday through Thursday. Friday departures count as
// weekend travel for schedule-fit purposes.
func isMidweek(dayOfWeek string) bool {
	switch dayOfWeek {
	case "Monday", "Tuesday", "Wednesday", "Thursday":
		return true
	}
	return false
}
