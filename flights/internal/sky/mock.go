package sky

import (
	"fmt"
	"math/rand"

	"github.com/skytrip/flight_search_service/flights/internal/model"
)

type mockAirline struct {
	name     string
	code     string
	aircraft string
}

var mockAirlines = []mockAirline{
	{"Emirates", "EK", "Boeing 777"},
	{"Qatar Airways", "QR", "Airbus A350"},
	{"Turkish Airlines", "TK", "Boeing 787"},
	{"Lufthansa", "LH", "Airbus A380"},
	{"British Airways", "BA", "Boeing 747"},
	{"Air France", "AF", "Airbus A330"},
}

var mockDurations = map[int]string{
	0: "6h 30m",
	1: "8h 45m",
	2: "12h 15m",
}

// GenerateMockOffers synthesizes one plausible offer per roster airline
// for the requested route and dates. The shape is fixed (always 6
// offers, always the same fields); prices and stop counts are
// randomized. Used whenever live data cannot be obtained, so the UI
// always has something to render.
func GenerateMockOffers(params model.SearchParams) []model.FlightOffer {
	offers := make([]model.FlightOffer, len(mockAirlines))
	for i, airline := range mockAirlines {
		basePrice := float64(400 + rand.Intn(600))
		stops := rand.Intn(3)
		duration := mockDurations[stops]

		origin := mockAirport(params.Origin, "Origin City", "Origin Country")
		destination := mockAirport(params.Destination, "Destination City", "Destination Country")

		outbound := model.Flight{
			ID:            fmt.Sprintf("mock-outbound-%v", i+1),
			Airline:       airline.name,
			FlightNumber:  fmt.Sprintf("%v%v", airline.code, 200+i),
			Origin:        origin,
			Destination:   destination,
			DepartureTime: mockTime(params.DepartureDate, 8+i, 0),
			ArrivalTime:   mockTime(params.DepartureDate, 14+i+stops*2, 30),
			Duration:      duration,
			Price:         basePrice,
			Currency:      defaultCurrency,
			Stops:         stops,
			Aircraft:      airline.aircraft,
			CabinClass:    params.CabinClass,
		}

		offer := model.FlightOffer{
			ID:                fmt.Sprintf("mock-%v", i+1),
			Outbound:          outbound,
			TotalPrice:        basePrice,
			Currency:          defaultCurrency,
			ValidatingAirline: airline.name,
		}

		if params.ReturnDate != "" {
			inbound := model.Flight{
				ID:            fmt.Sprintf("mock-inbound-%v", i+1),
				Airline:       airline.name,
				FlightNumber:  fmt.Sprintf("%v%v", airline.code, 300+i),
				Origin:        destination,
				Destination:   origin,
				DepartureTime: mockTime(params.ReturnDate, 10+i, 0),
				ArrivalTime:   mockTime(params.ReturnDate, 16+i+stops*2, 30),
				Duration:      duration,
				Price:         basePrice,
				Currency:      defaultCurrency,
				Stops:         stops,
				Aircraft:      airline.aircraft,
				CabinClass:    params.CabinClass,
			}
			offer.Inbound = &inbound
			offer.TotalPrice = basePrice * 2
		}

		offers[i] = offer
	}
	return offers
}

func mockAirport(iata string, city string, country string) model.Airport {
	return model.Airport{
		IATA:    iata,
		Name:    fmt.Sprintf("%v International Airport", iata),
		City:    city,
		Country: country,
	}
}

func mockTime(date string, hour int, minute int) string {
	return fmt.Sprintf("%vT%02d:%02d:00Z", date, hour%24, minute)
}
