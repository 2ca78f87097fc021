package engine

import (
	"github.com/tripscout/backend/internal/domain"
)

// fallbackStrideDays is the spacing between uniform candidate windows when
// no ideal weather run is long enough.
const fallbackStrideDays = 3

// GenerateCandidateWindows produces candidate (start, end) travel windows
// for a forecast. Candidates come from ideal weather runs plus shifted
// variants within the profile's flexibility; when no run is long enough, a
// uniform sweep across the horizon guarantees coverage. The output is not
// deduplicated and its order carries no meaning downstream.
func GenerateCandidateWindows(forecast domain.WeatherForecast, profile domain.UserProfile) []domain.DateRange {
	tripDays := profile.TripLength.Days()

	ideal := idealPeriods(forecast, profile, tripDays)
	if len(ideal) == 0 {
		return fallbackWindows(forecast, tripDays)
	}
	return expandWithFlexibility(ideal, forecast, profile, tripDays)
}

// idealPeriods walks the forecast once, collecting maximal runs of
// consecutive qualifying days at least tripDays long. A run's end is the
// last qualifying day, not the day that broke it.
func idealPeriods(forecast domain.WeatherForecast, profile domain.UserProfile, tripDays int) []domain.DateRange {
	var periods []domain.DateRange
	var streakStart domain.Date
	streak := 0

	for _, day := range forecast.Days {
		if dayQualifies(day, profile) {
			if streak == 0 {
				streakStart = day.Date
			}
			streak++
			continue
		}
		if streak >= tripDays {
			periods = append(periods, domain.DateRange{
				Start: streakStart,
				End:   streakStart.AddDays(streak - 1),
			})
		}
		streak = 0
	}

	// A streak still open at the end of the forecast must be flushed.
	if streak >= tripDays {
		periods = append(periods, domain.DateRange{
			Start: streakStart,
			End:   streakStart.AddDays(streak - 1),
		})
	}

	return periods
}

// dayQualifies is the temperature/rain/storm predicate for a single day.
func dayQualifies(day domain.WeatherDay, profile domain.UserProfile) bool {
	if day.TempHigh < profile.PreferredTempMin || day.TempHigh > profile.PreferredTempMax {
		return false
	}
	switch profile.RainTolerance {
	case domain.RainToleranceLow:
		if day.PrecipitationChance >= 20 {
			return false
		}
	case domain.RainToleranceMedium:
		if day.PrecipitationChance >= 40 {
			return false
		}
	}
	return !day.StormRisk
}

// fallbackWindows slides a trip-length window across the whole horizon at a
// fixed stride, trading precision for guaranteed coverage.
func fallbackWindows(forecast domain.WeatherForecast, tripDays int) []domain.DateRange {
	var windows []domain.DateRange
	for i := 0; i < len(forecast.Days)-tripDays; i += fallbackStrideDays {
		windows = append(windows, domain.DateRange{
			Start: forecast.Days[i].Date,
			End:   forecast.Days[i+tripDays-1].Date,
		})
	}
	return windows
}

// expandWithFlexibility emits each ideal period plus earlier- and
// later-start variants for every offset up to the profile's flexibility.
// Both directions apply the same forecast-bound check.
func expandWithFlexibility(ideal []domain.DateRange, forecast domain.WeatherForecast, profile domain.UserProfile, tripDays int) []domain.DateRange {
	bounds := forecast.Range()
	expanded := make([]domain.DateRange, 0, len(ideal)*(1+2*profile.FlexibilityDays))

	for _, period := range ideal {
		expanded = append(expanded, period)

		for offset := 1; offset <= profile.FlexibilityDays; offset++ {
			for _, shift := range []int{-offset, offset} {
				start := period.Start.AddDays(shift)
				end := start.AddDays(tripDays)
				if start.Before(bounds.Start) || end.After(bounds.End) {
					continue
				}
				expanded = append(expanded, domain.DateRange{Start: start, End: end})
			}
		}
	}

	return expanded
}
