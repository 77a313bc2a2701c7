package model

type Airport struct {
	IATA    string `json:"iata"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Flight is one directional leg of an offer.
type Flight struct {
	ID            string  `json:"id"`
	Airline       string  `json:"airline"`
	FlightNumber  string  `json:"flight_number"`
	Origin        Airport `json:"origin"`
	Destination   Airport `json:"destination"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Duration      string  `json:"duration"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	Stops         int     `json:"stops"`
	Aircraft      string  `json:"aircraft"`
	CabinClass    string  `json:"cabin_class"`
}

// FlightOffer is one sellable itinerary. Inbound is set only for
// round-trip searches. TotalPrice is the amount the user is charged;
// the per-leg Price fields are informational.
type FlightOffer struct {
	ID                string  `json:"id"`
	Outbound          Flight  `json:"outbound"`
	Inbound           *Flight `json:"inbound,omitempty"`
	TotalPrice        float64 `json:"total_price"`
	Currency          string  `json:"currency"`
	ValidatingAirline string  `json:"validating_airline"`
}
