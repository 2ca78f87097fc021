package domain

import (
	"fmt"
	"strings"
	"time"
)

// TravelWindow is a candidate travel period with its scores and the best
// matching options. Created by the ranking step; the Overall field is set
// exactly once, when windows are ranked.
type TravelWindow struct {
	Start Date `json:"start_date"`
	End   Date `json:"end_date"`

	WeatherScore float64 `json:"weather_score"` // 0-100
	FlightScore  float64 `json:"flight_score"`  // 0-100
	HotelScore   float64 `json:"hotel_score"`   // 0-100
	OverallScore float64 `json:"overall_score"` // 0-100

	Flight *FlightOption `json:"flight_option,omitempty"`
	Hotel  *HotelOption  `json:"hotel_option,omitempty"`

	WeatherSummary string `json:"weather_summary"`
}

// DurationDays returns the trip length in days.
func (w TravelWindow) DurationDays() int {
	return w.Start.DaysUntil(w.End)
}

// Recommendation is the terminal artifact of one synthesis call. Never
// mutated after creation, only formatted for output.
type Recommendation struct {
	ID string `json:"id,omitempty"`

	RecommendedWindow TravelWindow   `json:"recommended_window"`
	Alternatives      []TravelWindow `json:"alternatives"`

	Reasoning    string `json:"reasoning"`
	WhyNotOthers string `json:"why_not_others"`

	ProfileUsed UserProfile `json:"profile_used"`
	GeneratedAt time.Time   `json:"generated_at"`
}

// FormatText renders the recommendation as the fixed seven-part narrative:
// window, weather, flight, lodging, reasoning, alternatives, rejection.
func (r Recommendation) FormatText() string {
	rec := r.RecommendedWindow
	var b strings.Builder

	fmt.Fprintf(&b, "RECOMMENDED TRAVEL WINDOW:\n%s - %s (%d days)\nOverall Score: %.1f/100\n",
		rec.Start.Format("January 02"), rec.End.Format("January 02, 2006"),
		rec.DurationDays(), rec.OverallScore)

	fmt.Fprintf(&b, "\nWEATHER:\n%s\n", rec.WeatherSummary)

	b.WriteString("\nFLIGHT:\n")
	if rec.Flight != nil {
		fmt.Fprintf(&b, "%s $%d - %s, %d stop(s)\n",
			rec.Flight.Airline, rec.Flight.Price, rec.Flight.DepartureTime, rec.Flight.Stops)
	} else {
		b.WriteString("No flights within your budget for this window\n")
	}

	b.WriteString("\nLODGING:\n")
	if rec.Hotel != nil {
		fmt.Fprintf(&b, "%s\n$%d/night - %.1f stars\n",
			rec.Hotel.Name, rec.Hotel.NightlyRate, rec.Hotel.StarRating)
	} else {
		b.WriteString("No lodging within your budget for this window\n")
	}

	fmt.Fprintf(&b, "\nWHY THIS WINDOW:\n%s\n", r.Reasoning)

	b.WriteString("\nALTERNATIVES CONSIDERED:\n")
	for i, alt := range r.Alternatives {
		if i >= 2 {
			break
		}
		summary := alt.WeatherSummary
		// Truncate on a rune boundary; summaries contain °F.
		if r := []rune(summary); len(r) > 100 {
			summary = string(r[:100])
		}
		fmt.Fprintf(&b, "- %s - %s: Score %.1f/100 - %s\n",
			alt.Start.Format("Jan 02"), alt.End.Format("Jan 02"), alt.OverallScore, summary)
	}

	fmt.Fprintf(&b, "\nWHY NOT OTHER PERIODS:\n%s\n", r.WhyNotOthers)

	return b.String()
}

// RecommendationRequest is the typed request a caller submits to get a
// recommendation. Profile, when present, fully overrides the stored one.
type RecommendationRequest struct {
	UserID      string       `json:"user_id"`
	Origin      string       `json:"origin"`
	Destination string       `json:"destination"`
	DaysAhead   int          `json:"days_ahead,omitempty"`
	Profile     *UserProfile `json:"profile,omitempty"`
}

// RecommendationResponse wraps a recommendation for HTTP delivery.
type RecommendationResponse struct {
	Data      Recommendation `json:"data"`
	Narrative string         `json:"narrative"`
	Success   bool           `json:"success"`
	Message   string         `json:"message,omitempty"`
}
