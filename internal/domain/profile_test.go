package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleProfileIsValid(t *testing.T) {
	t.Parallel()
	require.NoError(t, ExampleProfile().Validate())
}

func TestUserProfileValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*UserProfile)
	}{
		{"inverted temperature range", func(p *UserProfile) { p.PreferredTempMin = 90; p.PreferredTempMax = 70 }},
		{"unknown rain tolerance", func(p *UserProfile) { p.RainTolerance = "monsoon" }},
		{"soft flight budget above hard", func(p *UserProfile) { p.FlightBudgetSoft = 900 }},
		{"hotel budget min above max", func(p *UserProfile) { p.HotelBudgetMin = 400 }},
		{"unknown trip length", func(p *UserProfile) { p.TripLength = "forever" }},
		{"negative flexibility", func(p *UserProfile) { p.FlexibilityDays = -1 }},
		{"unknown loyalty program", func(p *UserProfile) { p.HotelLoyalty = "points_r_us" }},
		{"safety priority too low", func(p *UserProfile) { p.SafetyPriority = 0 }},
		{"safety priority too high", func(p *UserProfile) { p.SafetyPriority = 6 }},
		{"comfort priority out of range", func(p *UserProfile) { p.ComfortPriority = 9 }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			profile := ExampleProfile()
			tt.mutate(&profile)
			assert.ErrorIs(t, profile.Validate(), ErrInvalidInput)
		})
	}
}

func TestTripLengthDays(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 4, TripShort.Days())
	assert.Equal(t, 7, TripMedium.Days())
	assert.Equal(t, 12, TripLong.Days())
	assert.Equal(t, 17, TripExtended.Days())
	assert.Equal(t, 7, TripLength("weekend").Days())
}

func TestFlightBudgetTier(t *testing.T) {
	t.Parallel()
	f := FlightOption{Price: 600}
	assert.Equal(t, TierGreat, f.BudgetTier(600, 850))
	f.Price = 601
	assert.Equal(t, TierAcceptable, f.BudgetTier(600, 850))
	f.Price = 850
	assert.Equal(t, TierAcceptable, f.BudgetTier(600, 850))
	f.Price = 851
	assert.Equal(t, TierTooExpensive, f.BudgetTier(600, 850))
}

func TestHotelMatchers(t *testing.T) {
	t.Parallel()
	h := HotelOption{NightlyRate: 180, LoyaltyProgram: LoyaltyMarriott}

	assert.True(t, h.MatchesBudget(180, 350))
	assert.False(t, h.MatchesBudget(200, 350))
	assert.False(t, h.MatchesBudget(100, 179))

	assert.True(t, h.MatchesLoyalty(LoyaltyMarriott))
	assert.False(t, h.MatchesLoyalty(LoyaltyHilton))
	// LoyaltyNone matches nothing, even a hotel with no program.
	h.LoyaltyProgram = LoyaltyNone
	assert.False(t, h.MatchesLoyalty(LoyaltyNone))
}

func TestForecastValidate(t *testing.T) {
	t.Parallel()
	start := NewDate(2026, 3, 1)
	days := []WeatherDay{
		{Date: start, TempHigh: 81},
		{Date: start.AddDays(1), TempHigh: 82},
		{Date: start.AddDays(2), TempHigh: 80},
	}

	assert.NoError(t, WeatherForecast{Location: "Maui", Days: days}.Validate())
	assert.ErrorIs(t, WeatherForecast{Location: "Maui"}.Validate(), ErrInvalidInput)

	gapped := []WeatherDay{days[0], days[2]}
	assert.ErrorIs(t, WeatherForecast{Location: "Maui", Days: gapped}.Validate(), ErrInvalidInput)

	duplicated := []WeatherDay{days[0], days[0]}
	assert.ErrorIs(t, WeatherForecast{Location: "Maui", Days: duplicated}.Validate(), ErrInvalidInput)
}
