package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/skytrip/flight_search_service/flights/internal/directory"
	"github.com/skytrip/flight_search_service/internal"
)

type Handler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Serves the static roster of popular airports for default autocomplete
// suggestions. No upstream call is involved.
func Adapter() Handler {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		query := req.QueryStringParameters["query"]
		return internal.RespondJSON(http.StatusOK, directory.Match(query)), nil
	}
}

func main() {
	lambda.Start(Adapter())
}
