package domain

import "fmt"

// WeatherDay is one day of forecast data.
type WeatherDay struct {
	Date                Date   `json:"date"`
	TempHigh            int    `json:"temp_high"`
	TempLow             int    `json:"temp_low"`
	PrecipitationChance int    `json:"precipitation_chance"` // 0-100
	StormRisk           bool   `json:"storm_risk"`
	Conditions          string `json:"conditions"` // "sunny", "cloudy", "rainy", "stormy"
}

// WeatherForecast is a multi-day forecast for a destination. Days are
// ordered and contiguous, one entry per calendar day; the window generator
// relies on that invariant, so Validate enforces it at the boundary.
type WeatherForecast struct {
	Location     string       `json:"location"`
	Days         []WeatherDay `json:"days"`
	StormPeriods []DateRange  `json:"storm_periods"`
	IsMock       bool         `json:"is_mock"`
}

// Validate rejects empty or gapped forecasts.
func (f WeatherForecast) Validate() error {
	if len(f.Days) == 0 {
		return fmt.Errorf("%w: forecast has no days", ErrInvalidInput)
	}
	for i := 1; i < len(f.Days); i++ {
		if f.Days[i-1].Date.DaysUntil(f.Days[i].Date) != 1 {
			return fmt.Errorf("%w: forecast not contiguous between %s and %s",
				ErrInvalidInput, f.Days[i-1].Date, f.Days[i].Date)
		}
	}
	return nil
}

// Range returns the inclusive date span the forecast covers. Only valid on
// non-empty forecasts.
func (f WeatherForecast) Range() DateRange {
	return DateRange{Start: f.Days[0].Date, End: f.Days[len(f.Days)-1].Date}
}

// DaysWithin returns the days whose date falls inside r, bounds included.
func (f WeatherForecast) DaysWithin(r DateRange) []WeatherDay {
	var days []WeatherDay
	for _, day := range f.Days {
		if r.Contains(day.Date) {
			days = append(days, day)
		}
	}
	return days
}

// WeatherForecastResponse wraps a forecast for HTTP delivery.
type WeatherForecastResponse struct {
	Data    WeatherForecast `json:"data"`
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
}
