package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripscout/backend/internal/domain"
	"github.com/tripscout/backend/internal/repository/postgres"
)

func fixtureAdvisor() *AdvisorService {
	return NewAdvisorService(
		NewWeatherService(filepath.Join("testdata", "forecast.csv")),
		NewFlightService(""),
		NewHotelService(),
		postgres.NewMockRepository(),
	)
}

func TestRecommendEndToEnd(t *testing.T) {
	t.Parallel()
	svc := fixtureAdvisor()

	rec, err := svc.Recommend(context.Background(), domain.RecommendationRequest{
		UserID:      "traveler-1",
		Origin:      "SFO",
		Destination: "Maui, Hawaii",
	})
	require.NoError(t, err)
	svc.WaitBackground()

	assert.NotEmpty(t, rec.ID)
	assert.NotEmpty(t, rec.Reasoning)
	assert.NotEmpty(t, rec.WhyNotOthers)
	assert.False(t, rec.GeneratedAt.IsZero())
	assert.Greater(t, rec.RecommendedWindow.OverallScore, 0.0)
	// Stored profile fallback is the example profile.
	assert.Equal(t, domain.ExampleProfile(), rec.ProfileUsed)
}

func TestRecommendInlineProfileOverride(t *testing.T) {
	t.Parallel()
	svc := fixtureAdvisor()

	override := domain.ExampleProfile()
	override.RainTolerance = domain.RainToleranceHigh
	override.TripLength = domain.TripShort

	rec, err := svc.Recommend(context.Background(), domain.RecommendationRequest{
		UserID:      "traveler-1",
		Origin:      "SFO",
		Destination: "Maui, Hawaii",
		Profile:     &override,
	})
	require.NoError(t, err)
	svc.WaitBackground()

	assert.Equal(t, override, rec.ProfileUsed)
	// An exact four-day ideal run spans three calendar days start to end.
	assert.Equal(t, 3, rec.RecommendedWindow.DurationDays())
	assert.True(t, rec.RecommendedWindow.Start.Equal(domain.NewDate(2026, time.March, 1)))
}

func TestRecommendRejectsInvalidInlineProfile(t *testing.T) {
	t.Parallel()
	svc := fixtureAdvisor()

	bad := domain.ExampleProfile()
	bad.SafetyPriority = 0

	_, err := svc.Recommend(context.Background(), domain.RecommendationRequest{
		UserID:      "traveler-1",
		Origin:      "SFO",
		Destination: "Maui, Hawaii",
		Profile:     &bad,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
