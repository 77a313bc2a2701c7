package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"github.com/skytrip/flight_search_service/flights/internal/model"
	"github.com/skytrip/flight_search_service/flights/internal/sky"
	"github.com/skytrip/flight_search_service/internal"
)

type Handler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

type AirportSearcher interface {
	SearchAirports(ctx context.Context, query string) []model.Airport
}

func Adapter(searcher AirportSearcher) Handler {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		query := req.QueryStringParameters["query"]

		// An empty result can mean "no matches" or "upstream
		// unavailable"; the lookup deliberately does not distinguish.
		airports := searcher.SearchAirports(ctx, query)

		return internal.RespondJSON(http.StatusOK, airports), nil
	}
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
