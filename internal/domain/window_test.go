package domain

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func sampleRecommendation() Recommendation {
	start := NewDate(2026, time.March, 1)
	window := TravelWindow{
		Start:          start,
		End:            start.AddDays(6),
		WeatherScore:   98.5,
		FlightScore:    85,
		HotelScore:     92.5,
		OverallScore:   92.3,
		WeatherSummary: "7/7 ideal days, generally favorable conditions, 80-83°F",
		Flight: &FlightOption{
			Airline: "Hawaiian Airlines", Price: 670, DepartureTime: "10:30 AM", Stops: 0,
		},
		Hotel: &HotelOption{
			Name: "Wailea Beach Resort - Marriott", NightlyRate: 320, StarRating: 4.5,
		},
	}
	return Recommendation{
		RecommendedWindow: window,
		Alternatives: []TravelWindow{
			{Start: start.AddDays(8), End: start.AddDays(14), OverallScore: 88.1, WeatherSummary: "alt one"},
			{Start: start.AddDays(10), End: start.AddDays(16), OverallScore: 85.0, WeatherSummary: "alt two"},
			{Start: start.AddDays(12), End: start.AddDays(18), OverallScore: 80.2, WeatherSummary: "alt three"},
		},
		Reasoning:    "Weather is excellent during this period.",
		WhyNotOthers: "Other periods scored lower.",
	}
}

func TestFormatTextSections(t *testing.T) {
	t.Parallel()
	text := sampleRecommendation().FormatText()

	for _, heading := range []string{
		"RECOMMENDED TRAVEL WINDOW:",
		"WEATHER:",
		"FLIGHT:",
		"LODGING:",
		"WHY THIS WINDOW:",
		"ALTERNATIVES CONSIDERED:",
		"WHY NOT OTHER PERIODS:",
	} {
		assert.Contains(t, text, heading)
	}

	assert.Contains(t, text, "Hawaiian Airlines $670")
	assert.Contains(t, text, "$320/night - 4.5 stars")

	// Only the first two alternatives are printed.
	assert.Contains(t, text, "alt one")
	assert.Contains(t, text, "alt two")
	assert.NotContains(t, text, "alt three")
}

func TestFormatTextMissingOptions(t *testing.T) {
	t.Parallel()
	rec := sampleRecommendation()
	rec.RecommendedWindow.Flight = nil
	rec.RecommendedWindow.Hotel = nil

	text := rec.FormatText()
	assert.Contains(t, text, "No flights within your budget for this window")
	assert.Contains(t, text, "No lodging within your budget for this window")
}

func TestFormatTextTruncatesSummaryOnRuneBoundary(t *testing.T) {
	t.Parallel()
	rec := sampleRecommendation()
	// The degree sign starts at byte offset 99, so a byte-indexed cut at
	// 100 would split it.
	rec.Alternatives[0].WeatherSummary = strings.Repeat("a", 99) + "°F and more beyond the cutoff"

	text := rec.FormatText()
	assert.True(t, utf8.ValidString(text))
	assert.Contains(t, text, strings.Repeat("a", 99)+"°")
	assert.NotContains(t, text, "beyond the cutoff")
}
