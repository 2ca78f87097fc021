package service

import (
	"fmt"
	"os"

	"github.com/jszwec/csvutil"

	"github.com/tripscout/backend/internal/domain"
)

// forecastRow is one CSV record of a recorded forecast. Headers must match
// the csv tags exactly.
type forecastRow struct {
	Date                domain.Date `csv:"date"`
	TempHigh            int         `csv:"temp_high"`
	TempLow             int         `csv:"temp_low"`
	PrecipitationChance int         `csv:"precipitation_chance"`
	StormRisk           bool        `csv:"storm_risk"`
	Conditions          string      `csv:"conditions"`
}

// LoadForecastFile reads a recorded forecast from a CSV file. Storm periods
// are derived from consecutive storm-flagged rows. Used to run the advisor
// offline against a fixed forecast.
func LoadForecastFile(path, location string) (domain.WeatherForecast, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.WeatherForecast{}, fmt.Errorf("fixture: failed to read %s: %w", path, err)
	}

	var rows []forecastRow
	if err := csvutil.Unmarshal(data, &rows); err != nil {
		return domain.WeatherForecast{}, fmt.Errorf("fixture: failed to decode %s: %w", path, err)
	}
	if len(rows) == 0 {
		return domain.WeatherForecast{}, fmt.Errorf("fixture: %s contains no forecast rows", path)
	}

	days := make([]domain.WeatherDay, 0, len(rows))
	for _, row := range rows {
		days = append(days, domain.WeatherDay{
			Date:                row.Date,
			TempHigh:            row.TempHigh,
			TempLow:             row.TempLow,
			PrecipitationChance: row.PrecipitationChance,
			StormRisk:           row.StormRisk,
			Conditions:          row.Conditions,
		})
	}

	forecast := domain.WeatherForecast{
		Location:     location,
		Days:         days,
		StormPeriods: stormPeriodsFrom(days),
		IsMock:       true,
	}
	if err := forecast.Validate(); err != nil {
		return domain.WeatherForecast{}, fmt.Errorf("fixture: %s: %w", path, err)
	}
	return forecast, nil
}
