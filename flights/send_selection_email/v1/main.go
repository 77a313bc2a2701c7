package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
	"github.com/joho/godotenv"
	"github.com/skytrip/flight_search_service/flights/internal/model"
	"github.com/skytrip/flight_search_service/internal"
)

type Handler func(ctx context.Context, event events.SQSEvent) error

type Mailer interface {
	SendEmail(ctx context.Context, subject string, body string, from string, to []string, cc []string) error
}

func Adapter(mailer Mailer, senderEmail string) Handler {
	return func(ctx context.Context, event events.SQSEvent) error {
		for _, record := range event.Records {
			msg := model.QueueMsgSelectedOffer{}
			if err := json.Unmarshal([]byte(record.Body), &msg); err != nil {
				return err
			}

			emailBody := formatEmailBody(msg)
			err := mailer.SendEmail(
				ctx,
				"Your flight selection",
				emailBody,
				senderEmail,
				[]string{msg.UserEmail},
				nil,
			)
			if err != nil {
				return err
			}
		}
		return nil
	}
}

func formatEmailBody(msg model.QueueMsgSelectedOffer) string {
	body := fmt.Sprintf(
		"Hello!\nYour selection of offer %v (%v -> %v, departing %v) is confirmed.\nTotal: %v %v with %v.",
		msg.OfferID,
		msg.Origin,
		msg.Destination,
		msg.DepartureDate,
		msg.TotalPrice,
		msg.Currency,
		msg.ValidatingAirline,
	)
	if msg.ReturnDate != "" {
		body += fmt.Sprintf("\nReturning %v.", msg.ReturnDate)
	}
	return body
}

func main() {
	_ = godotenv.Load()
	senderEmail := internal.MustEnv("SENDER_EMAIL")
	session := session.New()
	sesClient := ses.New(session)
	mailer := internal.NewMailer(sesClient)
	lambda.Start(Adapter(mailer, senderEmail))
}
