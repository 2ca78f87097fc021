package domain

// BudgetTier is the qualitative bucket a flight price falls into relative
// to the traveler's soft/hard budgets.
type BudgetTier string

const (
	TierGreat        BudgetTier = "great"
	TierAcceptable   BudgetTier = "acceptable"
	TierTooExpensive BudgetTier = "too_expensive"
)

// FlightOption is a single round-trip itinerary.
type FlightOption struct {
	DepartureDate      Date    `json:"departure_date"`
	ReturnDate         Date    `json:"return_date"`
	DepartureTime      string  `json:"departure_time"`
	ReturnTime         string  `json:"return_time"`
	Price              int     `json:"price"` // USD
	Airline            string  `json:"airline"`
	Stops              int     `json:"stops"`
	DurationHours      float64 `json:"duration_hours"`
	IsRedEyeOutbound   bool    `json:"is_red_eye_outbound"`
	IsRedEyeReturn     bool    `json:"is_red_eye_return"`
	DepartureDayOfWeek string  `json:"departure_day_of_week"`
}

// BudgetTier buckets the price against the soft and hard budget ceilings.
func (f FlightOption) BudgetTier(soft, hard int) BudgetTier {
	switch {
	case f.Price <= soft:
		return TierGreat
	case f.Price <= hard:
		return TierAcceptable
	default:
		return TierTooExpensive
	}
}

// FlightSearchResult is a collection of flight options for a route.
type FlightSearchResult struct {
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	SearchDate  Date           `json:"search_date"`
	Options     []FlightOption `json:"options"`
	IsMock      bool           `json:"is_mock"`
}

// FlightSearchResponse wraps flight results for HTTP delivery.
type FlightSearchResponse struct {
	Data    FlightSearchResult `json:"data"`
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
}
