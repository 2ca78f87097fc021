package domain

// HotelOption is a single lodging option.
type HotelOption struct {
	Name               string         `json:"name"`
	Brand              string         `json:"brand"`
	NightlyRate        int            `json:"nightly_rate"` // USD
	TotalNights        int            `json:"total_nights"`
	TotalCost          int            `json:"total_cost"`
	LoyaltyProgram     LoyaltyProgram `json:"loyalty_program,omitempty"`
	StarRating         float64        `json:"star_rating"`  // 0-5
	GuestRating        float64        `json:"guest_rating"` // 0-5
	Amenities          []string       `json:"amenities"`
	DistanceToBeach    float64        `json:"distance_to_beach"` // miles
	CancellationPolicy string         `json:"cancellation_policy"`
	IsStormDiscount    bool           `json:"is_storm_discount"`
}

// MatchesBudget reports whether the nightly rate falls in [min, max].
func (h HotelOption) MatchesBudget(min, max int) bool {
	return h.NightlyRate >= min && h.NightlyRate <= max
}

// MatchesLoyalty reports whether the hotel participates in the given
// program. LoyaltyNone never matches.
func (h HotelOption) MatchesLoyalty(program LoyaltyProgram) bool {
	return program != LoyaltyNone && h.LoyaltyProgram == program
}

// HotelSearchResult is a collection of hotel options for a stay.
type HotelSearchResult struct {
	Destination string        `json:"destination"`
	CheckIn     Date          `json:"check_in"`
	CheckOut    Date          `json:"check_out"`
	Options     []HotelOption `json:"options"`
	IsMock      bool          `json:"is_mock"`
}

// HotelSearchResponse wraps hotel results for HTTP delivery.
type HotelSearchResponse struct {
	Data    HotelSearchResult `json:"data"`
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
}
