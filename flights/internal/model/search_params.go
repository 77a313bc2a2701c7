package model

import "errors"

const (
	CabinEconomy        = "economy"
	CabinPremiumEconomy = "premium_economy"
	CabinBusiness       = "business"
	CabinFirst          = "first"
)

const (
	TripRoundTrip = "round-trip"
	TripOneWay    = "one-way"
	TripMultiCity = "multi-city"
)

var (
	ErrMissingOrigin        = errors.New("missing_origin")
	ErrMissingDestination   = errors.New("missing_destination")
	ErrMissingDepartureDate = errors.New("missing_departure_date")
	ErrNoAdults             = errors.New("at_least_one_adult_required")
	ErrNegativePassengers   = errors.New("passenger_counts_must_not_be_negative")
	ErrInvalidCabinClass    = errors.New("invalid_cabin_class")
	ErrInvalidTripType      = errors.New("invalid_trip_type")
	ErrReturnDateMismatch   = errors.New("return_date_required_for_round_trip_only")
)

// SearchParams describes one flight search. Dates are YYYY-MM-DD.
type SearchParams struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
	Infants       int    `json:"infants"`
	CabinClass    string `json:"cabin_class"`
	TripType      string `json:"trip_type"`
}

// Validate enforces the request invariants: origin, destination and
// departure date are required, at least one adult travels, and a return
// date is present exactly when the trip is a round trip.
func (p SearchParams) Validate() error {
	if p.Origin == "" {
		return ErrMissingOrigin
	}
	if p.Destination == "" {
		return ErrMissingDestination
	}
	if p.DepartureDate == "" {
		return ErrMissingDepartureDate
	}
	if p.Adults < 1 {
		return ErrNoAdults
	}
	if p.Children < 0 || p.Infants < 0 {
		return ErrNegativePassengers
	}
	switch p.CabinClass {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst:
	default:
		return ErrInvalidCabinClass
	}
	switch p.TripType {
	case TripRoundTrip, TripOneWay, TripMultiCity:
	default:
		return ErrInvalidTripType
	}
	if (p.TripType == TripRoundTrip) != (p.ReturnDate != "") {
		return ErrReturnDateMismatch
	}
	return nil
}

// RoundTrip reports whether the search expects an inbound leg.
func (p SearchParams) RoundTrip() bool {
	return p.TripType == TripRoundTrip && p.ReturnDate != ""
}
