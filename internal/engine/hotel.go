package engine

import (
	"fmt"
	"strings"

	"github.com/tripscout/backend/internal/domain"
	"github.com/tripscout/backend/pkg/utils"
)

// Component weights for hotel scoring.
const (
	hotelBudgetWeight   = 0.40
	hotelQualityWeight  = 0.35
	hotelLoyaltyWeight  = 0.15
	hotelLocationWeight = 0.10
)

// ScoreHotel scores one hotel option against the profile. Returns a 0-100
// score and a rationale built from short tags.
func ScoreHotel(hotel domain.HotelOption, profile domain.UserProfile) (float64, string) {
	var factors []string

	// Budget alignment relative to the nightly maximum.
	var budgetScore float64
	max := float64(profile.HotelBudgetMax)
	rate := float64(hotel.NightlyRate)
	switch {
	case rate <= max*0.7:
		budgetScore = 100
		factors = append(factors, fmt.Sprintf("great value ($%d/nt)", hotel.NightlyRate))
	case rate <= max*0.85:
		budgetScore = 85
		factors = append(factors, fmt.Sprintf("good rate ($%d/nt)", hotel.NightlyRate))
	case rate <= max:
		budgetScore = 70
		factors = append(factors, fmt.Sprintf("at budget max ($%d/nt)", hotel.NightlyRate))
	default:
		budgetScore = 0
		factors = append(factors, fmt.Sprintf("over budget ($%d/nt)", hotel.NightlyRate))
	}

	qualityScore := (hotel.StarRating/5.0)*50 + (hotel.GuestRating/5.0)*50
	switch {
	case hotel.StarRating >= 4.0 && hotel.GuestRating >= 4.5:
		factors = append(factors, "highly rated")
	case hotel.StarRating >= 3.5 && hotel.GuestRating >= 4.0:
		factors = append(factors, "well rated")
	case hotel.StarRating < 3.0 || hotel.GuestRating < 3.5:
		factors = append(factors, "lower ratings")
	}

	loyaltyScore := 50.0
	if hotel.MatchesLoyalty(profile.HotelLoyalty) {
		loyaltyScore = 100
		factors = append(factors, fmt.Sprintf("%s member", profile.HotelLoyalty))
	}

	locationScore := utils.Clamp(100-hotel.DistanceToBeach*20, 0, 100)
	if hotel.DistanceToBeach <= 0.5 {
		factors = append(factors, "beachfront")
	} else if hotel.DistanceToBeach <= 1.5 {
		factors = append(factors, "near beach")
	}

	score := budgetScore*hotelBudgetWeight +
		qualityScore*hotelQualityWeight +
		loyaltyScore*hotelLoyaltyWeight +
		locationScore*hotelLocationWeight

	// Storm-period pricing penalizes the whole composite.
	if hotel.IsStormDiscount {
		score *= 0.7
		factors = append(factors, "storm-period pricing")
	}

	rationale := hotel.Name + ": " + strings.Join(factors, ", ")
	return utils.RoundTo(utils.Clamp(score, 0, 100), 1), rationale
}
