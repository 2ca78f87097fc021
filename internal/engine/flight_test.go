package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tripscout/backend/internal/domain"
)

func goodFlight(price int) domain.FlightOption {
	return domain.FlightOption{
		DepartureDate:      domain.NewDate(2026, time.March, 3),
		ReturnDate:         domain.NewDate(2026, time.March, 10),
		DepartureTime:      "10:30 AM",
		ReturnTime:         "4:15 PM",
		Price:              price,
		Airline:            "Hawaiian Airlines",
		Stops:              0,
		DurationHours:      5.5,
		DepartureDayOfWeek: "Tuesday",
	}
}

func TestScoreFlightPriceTiers(t *testing.T) {
	t.Parallel()
	profile := domain.ExampleProfile() // soft 600, hard 850

	tests := []struct {
		name  string
		price int
		want  float64
	}{
		{"within soft budget", 550, 100},    // 40 + 30 + 30
		{"at hard budget exactly", 850, 88}, // 70*0.4 + 30 + 30
		{"one over hard budget", 851, 60},   // 0 + 30 + 30
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score, rationale := ScoreFlight(goodFlight(tc.price), profile)
			assert.Equal(t, tc.want, score)
			assert.Contains(t, rationale, "nonstop")
		})
	}
}

func TestScoreFlightStops(t *testing.T) {
	t.Parallel()
	profile := domain.ExampleProfile()

	oneStop := goodFlight(550)
	oneStop.Stops = 1
	score, rationale := ScoreFlight(oneStop, profile)
	assert.Equal(t, 92.5, score) // 40 + 75*0.3 + 30
	assert.Contains(t, rationale, "1 stop")

	twoStops := goodFlight(550)
	twoStops.Stops = 2
	score, rationale = ScoreFlight(twoStops, profile)
	assert.Equal(t, 85.0, score) // 40 + 50*0.3 + 30
	assert.Contains(t, rationale, "2 stops")
}

func TestScoreFlightLongDurationPenalty(t *testing.T) {
	t.Parallel()
	profile := domain.ExampleProfile()

	long := goodFlight(550)
	long.DurationHours = 13
	score, _ := ScoreFlight(long, profile)
	assert.Equal(t, 94.0, score) // 40 + 100*0.8*0.3 + 30
}

func TestScoreFlightRedEyeRejection(t *testing.T) {
	t.Parallel()
	profile := domain.ExampleProfile() // cannot take red-eye

	redEye := goodFlight(550)
	redEye.IsRedEyeReturn = true
	score, rationale := ScoreFlight(redEye, profile)
	assert.Equal(t, 70.0, score) // schedule component zeroed
	assert.Contains(t, rationale, "red-eye (disliked)")

	// An accepting profile keeps the schedule score.
	profile.CanTakeRedEye = true
	score, rationale = ScoreFlight(redEye, profile)
	assert.Equal(t, 100.0, score)
	assert.Contains(t, rationale, "red-eye")
	assert.NotContains(t, rationale, "disliked")
}

func TestScoreFlightWeekendDeparture(t *testing.T) {
	t.Parallel()
	profile := domain.ExampleProfile() // prefers weekday departure

	tests := []struct {
		day  string
		want float64
		tag  string
	}{
		{"Monday", 100, "weekday departure"},
		{"Thursday", 100, "weekday departure"},
		// Friday travel counts as part of the weekend.
		{"Friday", 97, "weekend departure"}, // 40 + 30 + 100*0.9*0.3
		{"Saturday", 97, "weekend departure"},
		{"Sunday", 97, "weekend departure"},
	}
	for _, tc := range tests {
		t.Run(tc.day, func(t *testing.T) {
			flight := goodFlight(550)
			flight.DepartureDayOfWeek = tc.day
			score, rationale := ScoreFlight(flight, profile)
			assert.Equal(t, tc.want, score)
			assert.Contains(t, rationale, tc.tag)
		})
	}
}

func TestScoreFlightPriceMonotonicity(t *testing.T) {
	t.Parallel()
	profile := domain.ExampleProfile()

	// For otherwise-identical in-budget flights, a lower price never
	// scores worse.
	prev := 101.0
	for _, price := range []int{400, 600, 601, 850} {
		score, _ := ScoreFlight(goodFlight(price), profile)
		assert.LessOrEqual(t, score, prev, "price %d", price)
		prev = score
	}
}
