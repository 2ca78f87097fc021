package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks boundary validation failures so handlers can map
// them to 400 responses.
var ErrInvalidInput = errors.New("invalid input")

// RainTolerance is how much precipitation a traveler will put up with.
type RainTolerance string

const (
	RainToleranceLow    RainTolerance = "low"
	RainToleranceMedium RainTolerance = "medium"
	RainToleranceHigh   RainTolerance = "high"
)

// Valid reports whether the tolerance is one of the known levels.
func (t RainTolerance) Valid() bool {
	switch t {
	case RainToleranceLow, RainToleranceMedium, RainToleranceHigh:
		return true
	}
	return false
}

// TripLength is a preferred trip duration category.
type TripLength string

const (
	TripShort    TripLength = "3-5 days"
	TripMedium   TripLength = "6-9 days"
	TripLong     TripLength = "10-14 days"
	TripExtended TripLength = "15+ days"
)

var tripLengthDays = map[TripLength]int{
	TripShort:    4,
	TripMedium:   7,
	TripLong:     12,
	TripExtended: 17,
}

// Days maps the category to a concrete trip duration.
func (t TripLength) Days() int {
	if d, ok := tripLengthDays[t]; ok {
		return d
	}
	return 7
}

// Valid reports whether the category is one of the known lengths.
func (t TripLength) Valid() bool {
	_, ok := tripLengthDays[t]
	return ok
}

// LoyaltyProgram is a hotel loyalty program affinity.
type LoyaltyProgram string

const (
	LoyaltyMarriott LoyaltyProgram = "marriott_bonvoy"
	LoyaltyHilton   LoyaltyProgram = "hilton_honors"
	LoyaltyIHG      LoyaltyProgram = "ihg_rewards"
	LoyaltyHyatt    LoyaltyProgram = "world_of_hyatt"
	LoyaltyNone     LoyaltyProgram = "none"
)

// Valid reports whether the program is one of the known programs.
func (p LoyaltyProgram) Valid() bool {
	switch p {
	case LoyaltyMarriott, LoyaltyHilton, LoyaltyIHG, LoyaltyHyatt, LoyaltyNone:
		return true
	}
	return false
}

// UserProfile holds a traveler's preferences and constraints. Built once at
// the boundary and treated as immutable afterwards.
type UserProfile struct {
	// Weather preferences (Fahrenheit)
	PreferredTempMin int           `json:"preferred_temp_min"`
	PreferredTempMax int           `json:"preferred_temp_max"`
	RainTolerance    RainTolerance `json:"rain_tolerance"`

	// Budget constraints (USD)
	FlightBudgetSoft int `json:"flight_budget_soft"`
	FlightBudgetHard int `json:"flight_budget_hard"`
	HotelBudgetMin   int `json:"hotel_budget_min"`
	HotelBudgetMax   int `json:"hotel_budget_max"`

	// Trip preferences
	TripLength      TripLength `json:"trip_length"`
	FlexibilityDays int        `json:"flexibility_days"`

	// Loyalty and comfort
	HotelLoyalty    LoyaltyProgram `json:"hotel_loyalty"`
	SafetyPriority  int            `json:"safety_priority"`  // 1-5
	ComfortPriority int            `json:"comfort_priority"` // 1-5

	// Travel constraints
	CanTakeRedEye           bool `json:"can_take_red_eye"`
	PrefersWeekdayDeparture bool `json:"prefers_weekday_departure"`
}

// Validate rejects malformed profiles eagerly, before any scoring runs.
func (p UserProfile) Validate() error {
	if p.PreferredTempMin > p.PreferredTempMax {
		return fmt.Errorf("%w: temperature range %d-%d°F is inverted", ErrInvalidInput, p.PreferredTempMin, p.PreferredTempMax)
	}
	if !p.RainTolerance.Valid() {
		return fmt.Errorf("%w: unknown rain tolerance %q", ErrInvalidInput, p.RainTolerance)
	}
	if p.FlightBudgetSoft > p.FlightBudgetHard {
		return fmt.Errorf("%w: flight budget soft $%d exceeds hard $%d", ErrInvalidInput, p.FlightBudgetSoft, p.FlightBudgetHard)
	}
	if p.HotelBudgetMin > p.HotelBudgetMax {
		return fmt.Errorf("%w: hotel budget min $%d exceeds max $%d", ErrInvalidInput, p.HotelBudgetMin, p.HotelBudgetMax)
	}
	if !p.TripLength.Valid() {
		return fmt.Errorf("%w: unknown trip length %q", ErrInvalidInput, p.TripLength)
	}
	if p.FlexibilityDays < 0 {
		return fmt.Errorf("%w: negative flexibility days %d", ErrInvalidInput, p.FlexibilityDays)
	}
	if !p.HotelLoyalty.Valid() {
		return fmt.Errorf("%w: unknown loyalty program %q", ErrInvalidInput, p.HotelLoyalty)
	}
	if p.SafetyPriority < 1 || p.SafetyPriority > 5 {
		return fmt.Errorf("%w: safety priority %d outside 1-5", ErrInvalidInput, p.SafetyPriority)
	}
	if p.ComfortPriority < 1 || p.ComfortPriority > 5 {
		return fmt.Errorf("%w: comfort priority %d outside 1-5", ErrInvalidInput, p.ComfortPriority)
	}
	return nil
}

// ExampleProfile returns the default demo profile used when no stored
// profile exists for a user.
func ExampleProfile() UserProfile {
	return UserProfile{
		PreferredTempMin:        75,
		PreferredTempMax:        85,
		RainTolerance:           RainToleranceMedium,
		FlightBudgetSoft:        600,
		FlightBudgetHard:        850,
		HotelBudgetMin:          180,
		HotelBudgetMax:          350,
		TripLength:              TripMedium,
		FlexibilityDays:         4,
		HotelLoyalty:            LoyaltyMarriott,
		SafetyPriority:          4,
		ComfortPriority:         4,
		CanTakeRedEye:           false,
		PrefersWeekdayDeparture: true,
	}
}
