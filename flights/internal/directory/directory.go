// Package directory holds the static roster of well-known airports used
// for default autocomplete suggestions when the user has not typed
// enough for a live lookup.
package directory

import (
	"strings"

	"github.com/skytrip/flight_search_service/flights/internal/model"
)

var airports = []model.Airport{
	{IATA: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "United States"},
	{IATA: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "United States"},
	{IATA: "LHR", Name: "Heathrow Airport", City: "London", Country: "United Kingdom"},
	{IATA: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France"},
	{IATA: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "United Arab Emirates"},
	{IATA: "NRT", Name: "Narita International Airport", City: "Tokyo", Country: "Japan"},
	{IATA: "SIN", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore"},
	{IATA: "SYD", Name: "Sydney Kingsford Smith Airport", City: "Sydney", Country: "Australia"},
	{IATA: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany"},
	{IATA: "AMS", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands"},
}

// All returns a copy of the full roster.
func All() []model.Airport {
	out := make([]model.Airport, len(airports))
	copy(out, airports)
	return out
}

// Match narrows the roster by a case-insensitive substring over IATA
// code, airport name and city. An empty query matches everything.
func Match(query string) []model.Airport {
	if query == "" {
		return All()
	}
	q := strings.ToLower(query)
	matched := []model.Airport{}
	for _, a := range airports {
		if strings.Contains(strings.ToLower(a.IATA), q) ||
			strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.City), q) {
			matched = append(matched, a)
		}
	}
	return matched
}
