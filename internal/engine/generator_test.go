package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripscout/backend/internal/domain"
)

func makeForecast(days []domain.WeatherDay) domain.WeatherForecast {
	return domain.WeatherForecast{Location: "Maui, Hawaii", Days: days}
}

// idealDay returns a day that qualifies under the example profile.
func idealDay(date domain.Date) domain.WeatherDay {
	return domain.WeatherDay{Date: date, TempHigh: 80, TempLow: 72, PrecipitationChance: 10, Conditions: "sunny"}
}

// hotDay returns a day disqualified by temperature.
func hotDay(date domain.Date) domain.WeatherDay {
	return domain.WeatherDay{Date: date, TempHigh: 95, TempLow: 80, PrecipitationChance: 10, Conditions: "sunny"}
}

func TestIdealPeriodsExactLengthRun(t *testing.T) {
	t.Parallel()
	profile := domain.ExampleProfile() // trip length 7 days
	start := domain.NewDate(2026, time.March, 1)

	var days []domain.WeatherDay
	for i := 0; i < 3; i++ {
		days = append(days, hotDay(start.AddDays(i)))
	}
	for i := 3; i < 10; i++ { // exactly 7 qualifying days
		days = append(days, idealDay(start.AddDays(i)))
	}
	for i := 10; i < 14; i++ {
		days = append(days, hotDay(start.AddDays(i)))
	}

	periods := idealPeriods(makeForecast(days), profile, 7)
	require.Len(t, periods, 1)
	assert.True(t, periods[0].Start.Equal(start.AddDays(3)))
	// The run ends on the last qualifying day, not the breaking day.
	assert.True(t, periods[0].End.Equal(start.AddDays(9)))
}

func TestIdealPeriodsRunOneDayShort(t *testing.T) {
	t.Parallel()
	profile := domain.ExampleProfile()
	start := domain.NewDate(2026, time.March, 1)

	var days []domain.WeatherDay
	for i := 0; i < 6; i++ { // one short of the 7-day requirement
		days = append(days, idealDay(start.AddDays(i)))
	}
	for i := 6; i < 20; i++ {
		days = append(days, hotDay(start.AddDays(i)))
	}

	assert.Empty(t, idealPeriods(makeForecast(days), profile, 7))

	// With no ideal run the generator falls back to the stride sweep.
	candidates := GenerateCandidateWindows(makeForecast(days), profile)
	require.NotEmpty(t, candidates)
	for i, c := range candidates {
		assert.True(t, c.Start.Equal(start.AddDays(i*3)))
		assert.Equal(t, 6, c.Start.DaysUntil(c.End))
	}
}

func TestIdealPeriodsOpenStreakFlushedAtEnd(t *testing.T) {
	t.Parallel()
	profile := domain.ExampleProfile()
	start := domain.NewDate(2026, time.March, 1)

	var days []domain.WeatherDay
	for i := 0; i < 4; i++ {
		days = append(days, hotDay(start.AddDays(i)))
	}
	for i := 4; i < 12; i++ { // streak still open at the final day
		days = append(days, idealDay(start.AddDays(i)))
	}

	periods := idealPeriods(makeForecast(days), profile, 7)
	require.Len(t, periods, 1)
	assert.True(t, periods[0].End.Equal(start.AddDays(11)))
}

func TestExpansionStaysWithinForecastBounds(t *testing.T) {
	t.Parallel()
	profile := domain.ExampleProfile() // flexibility 4
	start := domain.NewDate(2026, time.March, 1)

	var days []domain.WeatherDay
	for i := 0; i < 30; i++ {
		days = append(days, idealDay(start.AddDays(i)))
	}
	forecast := makeForecast(days)
	bounds := forecast.Range()

	candidates := GenerateCandidateWindows(forecast, profile)
	require.NotEmpty(t, candidates)
	for _, c := range candidates {
		assert.False(t, c.Start.Before(bounds.Start), "window %s starts before forecast", c)
		assert.False(t, c.End.After(bounds.End), "window %s ends after forecast", c)
	}

	// One 30-day run: earlier shifts all fall off the front, later shifts
	// all fit, so the period plus one variant per offset.
	assert.Len(t, candidates, 1+profile.FlexibilityDays)
}

func TestDayQualifiesRainTolerance(t *testing.T) {
	t.Parallel()
	base := domain.WeatherDay{Date: domain.NewDate(2026, time.March, 1), TempHigh: 80}

	tests := []struct {
		name      string
		tolerance domain.RainTolerance
		precip    int
		want      bool
	}{
		{"low under threshold", domain.RainToleranceLow, 19, true},
		{"low at threshold", domain.RainToleranceLow, 20, false},
		{"medium under threshold", domain.RainToleranceMedium, 39, true},
		{"medium at threshold", domain.RainToleranceMedium, 40, false},
		{"high accepts anything", domain.RainToleranceHigh, 100, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			profile := domain.ExampleProfile()
			profile.RainTolerance = tc.tolerance
			day := base
			day.PrecipitationChance = tc.precip
			assert.Equal(t, tc.want, dayQualifies(day, profile))
		})
	}
}

func TestDayQualifiesStormAlwaysDisqualifies(t *testing.T) {
	t.Parallel()
	profile := domain.ExampleProfile()
	profile.RainTolerance = domain.RainToleranceHigh

	day := idealDay(domain.NewDate(2026, time.March, 1))
	day.StormRisk = true
	assert.False(t, dayQualifies(day, profile))
}
