package service

import (
	"context"

	"github.com/tripscout/backend/internal/domain"
)

// HotelService provides lodging options for a stay. Options are
// synthesized from a fixed roster of properties; rates drop and carry the
// storm-discount flag when the stay overlaps a forecast storm period.
type HotelService struct{}

// NewHotelService creates a new hotel service.
func NewHotelService() *HotelService {
	return &HotelService{}
}

// hotelTemplate is a property with its regular and storm-period rates.
type hotelTemplate struct {
	name               string
	brand              string
	rate               int
	stormRate          int
	loyalty            domain.LoyaltyProgram
	starRating         float64
	guestRating        float64
	amenities          []string
	distanceToBeach    float64
	cancellationPolicy string
}

var hotelRoster = []hotelTemplate{
	{
		name: "Wailea Beach Resort - Marriott", brand: "Marriott",
		rate: 320, stormRate: 220, loyalty: domain.LoyaltyMarriott,
		starRating: 4.5, guestRating: 4.7,
		amenities:       []string{"pool", "spa", "beach_access", "restaurant", "fitness_center"},
		distanceToBeach: 0.1, cancellationPolicy: "Free cancellation until 48h before",
	},
	{
		name: "Andaz Maui at Wailea Resort", brand: "Hyatt",
		rate: 245, stormRate: 180, loyalty: domain.LoyaltyHyatt,
		starRating: 4.0, guestRating: 4.5,
		amenities:       []string{"pool", "beach_access", "restaurant", "bar"},
		distanceToBeach: 0.2, cancellationPolicy: "Free cancellation until 24h before",
	},
	{
		name: "Hilton Maui Resort & Spa", brand: "Hilton",
		rate: 195, stormRate: 145, loyalty: domain.LoyaltyHilton,
		starRating: 3.5, guestRating: 4.2,
		amenities:       []string{"pool", "beach_access", "restaurant"},
		distanceToBeach: 0.8, cancellationPolicy: "Free cancellation until 72h before",
	},
	{
		name: "Paia Bay Resort", brand: "Independent",
		rate: 280, stormRate: 205, loyalty: domain.LoyaltyNone,
		starRating: 4.0, guestRating: 4.8,
		amenities:       []string{"pool", "beach_access", "kitchenette", "parking"},
		distanceToBeach: 0.3, cancellationPolicy: "Free cancellation until 7 days before",
	},
}

// SearchHotels returns lodging options for a stay. stormPeriods come from
// the weather forecast; a stay overlapping any of them gets discounted
// rates flagged as storm-period pricing.
func (s *HotelService) SearchHotels(ctx context.Context, destination string, checkIn, checkOut domain.Date, stormPeriods []domain.DateRange) (domain.HotelSearchResult, error) {
	nights := checkIn.DaysUntil(checkOut)
	if nights < 1 {
		nights = 1
	}

	stay := domain.DateRange{Start: checkIn, End: checkOut}
	stormStay := false
	for _, p := range stormPeriods {
		if stay.Overlaps(p) {
			stormStay = true
			break
		}
	}

	options := make([]domain.HotelOption, 0, len(hotelRoster))
	for _, t := range hotelRoster {
		rate := t.rate
		if stormStay {
			rate = t.stormRate
		}
		options = append(options, domain.HotelOption{
			Name:               t.name,
			Brand:              t.brand,
			NightlyRate:        rate,
			TotalNights:        nights,
			TotalCost:          rate * nights,
			LoyaltyProgram:     t.loyalty,
			StarRating:         t.starRating,
			GuestRating:        t.guestRating,
			Amenities:          t.amenities,
			DistanceToBeach:    t.distanceToBeach,
			CancellationPolicy: t.cancellationPolicy,
			IsStormDiscount:    stormStay,
		})
	}

	return domain.HotelSearchResult{
		Destination: destination,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Options:     options,
		IsMock:      true,
	}, nil
}
