package model

type QueueMsgSelectedOffer struct {
	OfferID           string  `json:"offer_id"`
	Origin            string  `json:"origin"`
	Destination       string  `json:"destination"`
	DepartureDate     string  `json:"departure_date"`
	ReturnDate        string  `json:"return_date,omitempty"`
	TotalPrice        float64 `json:"total_price"`
	Currency          string  `json:"currency"`
	ValidatingAirline string  `json:"validating_airline"`
	UserEmail         string  `json:"user_email"`
}
