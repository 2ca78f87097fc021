package engine

import (
	"fmt"
	"strings"

	"github.com/tripscout/backend/internal/domain"
	"github.com/tripscout/backend/pkg/utils"
)

// ScoreWeather scores how well a window's weather matches the profile.
// Returns a 0-100 score and a short human-readable summary.
func ScoreWeather(days []domain.WeatherDay, profile domain.UserProfile) (float64, string) {
	if len(days) == 0 {
		return 0, "No weather data available"
	}

	var total float64
	idealDays := 0
	stormDays := 0
	rainyDays := 0
	minHigh := days[0].TempHigh
	maxHigh := days[0].TempHigh

	for _, day := range days {
		dayScore := 100.0

		// Temperature: -5 points per degree of deviation outside the range.
		if day.TempHigh < profile.PreferredTempMin {
			deviation := float64(profile.PreferredTempMin - day.TempHigh)
			dayScore = utils.Clamp(100-deviation*5, 0, 100)
		} else if day.TempHigh > profile.PreferredTempMax {
			deviation := float64(day.TempHigh - profile.PreferredTempMax)
			dayScore = utils.Clamp(100-deviation*5, 0, 100)
		}

		dayScore *= rainMultiplier(day.PrecipitationChance, profile.RainTolerance)

		// Storms dominate any tolerance.
		if day.StormRisk {
			dayScore *= 0.1
			stormDays++
		}

		if day.PrecipitationChance > 50 {
			rainyDays++
		}
		if dayScore >= 90 {
			idealDays++
		}
		if day.TempHigh < minHigh {
			minHigh = day.TempHigh
		}
		if day.TempHigh > maxHigh {
			maxHigh = day.TempHigh
		}

		total += dayScore
	}

	score := utils.RoundTo(utils.Clamp(total/float64(len(days)), 0, 100), 1)

	parts := []string{fmt.Sprintf("%d/%d ideal days", idealDays, len(days))}
	switch {
	case stormDays > 0:
		parts = append(parts, fmt.Sprintf("%d storm day(s)", stormDays))
	case rainyDays > len(days)/2:
		parts = append(parts, "frequent rain expected")
	default:
		parts = append(parts, "generally favorable conditions")
	}
	parts = append(parts, fmt.Sprintf("%d-%d°F", minHigh, maxHigh))

	return score, strings.Join(parts, ", ")
}

// rainMultiplier returns the tolerance-dependent penalty factor for a day's
// precipitation chance.
func rainMultiplier(precipChance int, tolerance domain.RainTolerance) float64 {
	switch tolerance {
	case domain.RainToleranceLow:
		if precipChance >= 40 {
			return 0.3
		}
		if precipChance >= 20 {
			return 0.6
		}
	case domain.RainToleranceMedium:
		if precipChance >= 60 {
			return 0.5
		}
		if precipChance >= 40 {
			return 0.8
		}
	}
	return 1.0
}
