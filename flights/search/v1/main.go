package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"github.com/skytrip/flight_search_service/flights/internal/model"
	"github.com/skytrip/flight_search_service/flights/internal/sky"
	"github.com/skytrip/flight_search_service/internal"
)

type Handler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

type FlightSearcher interface {
	SearchFlights(ctx context.Context, params model.SearchParams) ([]model.FlightOffer, sky.Source)
}

func Adapter(searcher FlightSearcher) Handler {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		// Get request parameters
		params, err := parseParams(req.QueryStringParameters)
		if err != nil {
			return internal.Error(http.StatusBadRequest, err), nil
		}
		filters, err := parseFilters(req.QueryStringParameters)
		if err != nil {
			return internal.Error(http.StatusBadRequest, err), nil
		}

		// Run the search pipeline. It never fails; an empty list is a
		// legitimate zero-result outcome, not a fault.
		offers, source := searcher.SearchFlights(ctx, params)
		offers = filters.Apply(offers)

		// Respond
		response := internal.RespondJSON(http.StatusOK, offers)
		response.Headers["X-Result-Source"] = string(source)
		return response, nil
	}
}

func parseParams(qs map[string]string) (model.SearchParams, error) {
	adults, err := atoiDefault(qs["adults"], 1)
	if err != nil {
		return model.SearchParams{}, errors.New("invalid_adults")
	}
	children, err := atoiDefault(qs["children"], 0)
	if err != nil {
		return model.SearchParams{}, errors.New("invalid_children")
	}
	infants, err := atoiDefault(qs["infants"], 0)
	if err != nil {
		return model.SearchParams{}, errors.New("invalid_infants")
	}

	params := model.SearchParams{
		Origin:        qs["origin"],
		Destination:   qs["destination"],
		DepartureDate: qs["departure_date"],
		ReturnDate:    qs["return_date"],
		Adults:        adults,
		Children:      children,
		Infants:       infants,
		CabinClass:    qs["cabin_class"],
		TripType:      qs["trip_type"],
	}
	if params.CabinClass == "" {
		params.CabinClass = model.CabinEconomy
	}
	if params.TripType == "" {
		if params.ReturnDate != "" {
			params.TripType = model.TripRoundTrip
		} else {
			params.TripType = model.TripOneWay
		}
	}

	if err := params.Validate(); err != nil {
		return model.SearchParams{}, err
	}
	return params, nil
}

func parseFilters(qs map[string]string) (model.SearchFilters, error) {
	filters := model.SearchFilters{}

	if v := qs["max_price"]; v != "" {
		maxPrice, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return model.SearchFilters{}, errors.New("invalid_max_price")
		}
		filters.MaxPrice = maxPrice
	}
	if v := qs["stops"]; v != "" {
		for _, field := range strings.Split(v, ",") {
			stops, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return model.SearchFilters{}, errors.New("invalid_stops")
			}
			filters.Stops = append(filters.Stops, stops)
		}
	}
	if v := qs["airlines"]; v != "" {
		for _, field := range strings.Split(v, ",") {
			filters.Airlines = append(filters.Airlines, strings.TrimSpace(field))
		}
	}
	if v := qs["departure_time"]; v != "" {
		for _, field := range strings.Split(v, ",") {
			filters.DepartureTime = append(filters.DepartureTime, strings.TrimSpace(field))
		}
	}
	if v := qs["max_duration"]; v != "" {
		maxDuration, err := strconv.Atoi(v)
		if err != nil {
			return model.SearchFilters{}, errors.New("invalid_max_duration")
		}
		filters.MaxDuration = maxDuration
	}

	return filters, nil
}

func atoiDefault(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

func main() {
	_ = godotenv.Load()
	client := sky.New(sky.Config{
		BaseURL: internal.MustEnv("SKY_API_BASE_URL"),
		APIKey:  internal.MustEnv("SKY_API_KEY"),
		APIHost: internal.MustEnv("SKY_API_HOST"),
	})
	lambda.Start(Adapter(client))
}
