package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/joho/godotenv"
	"github.com/skytrip/flight_search_service/flights/internal/model"
	"github.com/skytrip/flight_search_service/internal"
	"github.com/xeipuuv/gojsonschema"
)

type Handler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

type Enqueuer interface {
	SendMsg(ctx context.Context, msg interface{}, queue string) error
}

// There is no real booking flow; selecting an offer only records the
// choice and triggers a confirmation email.
var requestSchema = gojsonschema.NewStringLoader(`{
	"type": "object",
	"required": ["offer_id", "user_email", "origin", "destination", "departure_date", "total_price", "currency"],
	"properties": {
		"offer_id": {"type": "string", "minLength": 1},
		"user_email": {"type": "string", "minLength": 3, "pattern": "@"},
		"origin": {"type": "string", "minLength": 1},
		"destination": {"type": "string", "minLength": 1},
		"departure_date": {"type": "string", "minLength": 1},
		"return_date": {"type": "string"},
		"total_price": {"type": "number", "minimum": 0},
		"currency": {"type": "string", "minLength": 1},
		"validating_airline": {"type": "string"}
	}
}`)

func Adapter(enqueuer Enqueuer, queue string) Handler {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		// Validations
		result, err := gojsonschema.Validate(requestSchema, gojsonschema.NewStringLoader(req.Body))
		if err != nil {
			return internal.Error(http.StatusBadRequest, err), nil
		}
		if !result.Valid() {
			return internal.SchemaErrors(http.StatusBadRequest, result.Errors()), nil
		}

		msg := model.QueueMsgSelectedOffer{}
		if err := json.Unmarshal([]byte(req.Body), &msg); err != nil {
			return internal.Error(http.StatusBadRequest, err), nil
		}

		// Enqueue the confirmation
		if err := enqueuer.SendMsg(ctx, msg, queue); err != nil {
			return internal.Error(http.StatusInternalServerError, err), nil
		}

		return internal.RespondJSON(http.StatusOK, map[string]string{
			"status": "confirmed",
		}), nil
	}
}

func main() {
	_ = godotenv.Load()
	queue := internal.MustEnv("SELECTED_OFFERS_QUEUE")
	session := session.New()
	sqsClient := sqs.New(session)
	enqueuer := internal.NewEnqueuer(sqsClient)
	lambda.Start(Adapter(enqueuer, queue))
}
