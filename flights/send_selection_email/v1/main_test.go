package main

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/skytrip/flight_search_service/flights/internal/model"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MailerMock struct {
	mock.Mock
}

func (m *MailerMock) SendEmail(ctx context.Context, subject string, body string, from string, to []string, cc []string) error {
	ret := m.Called(subject, body, from, to, cc)
	return ret.Error(0)
}

func TestAdapterSendsConfirmationEmail(t *testing.T) {
	mailer := &MailerMock{}
	mailer.On(
		"SendEmail",
		"Your flight selection",
		mock.AnythingOfType("string"),
		"noreply@skytrip.example",
		[]string{"someone@some.com"},
		[]string(nil),
	).Return(nil).Once()

	handler := Adapter(mailer, "noreply@skytrip.example")
	err := handler(context.Background(), events.SQSEvent{
		Records: []events.SQSMessage{
			{
				Body: `{
					"offer_id": "offer-1",
					"origin": "JFK",
					"destination": "LHR",
					"departure_date": "2025-06-01",
					"total_price": 620,
					"currency": "USD",
					"validating_airline": "Lufthansa",
					"user_email": "someone@some.com"
				}`,
			},
		},
	})

	require.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestAdapterReturnsMailerError(t *testing.T) {
	mailer := &MailerMock{}
	mailer.On(
		"SendEmail",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
	).Return(errors.New("ses is down")).Once()

	handler := Adapter(mailer, "noreply@skytrip.example")
	err := handler(context.Background(), events.SQSEvent{
		Records: []events.SQSMessage{
			{Body: `{"offer_id": "offer-1", "user_email": "someone@some.com"}`},
		},
	})

	require.EqualError(t, err, "ses is down")
}

func TestAdapterRejectsMalformedMessage(t *testing.T) {
	mailer := &MailerMock{}

	handler := Adapter(mailer, "noreply@skytrip.example")
	err := handler(context.Background(), events.SQSEvent{
		Records: []events.SQSMessage{
			{Body: `not json`},
		},
	})

	require.Error(t, err)
	mailer.AssertExpectations(t)
}

func TestFormatEmailBody(t *testing.T) {
	body := formatEmailBody(model.QueueMsgSelectedOffer{
		OfferID:           "offer-1",
		Origin:            "JFK",
		Destination:       "LHR",
		DepartureDate:     "2025-06-01",
		ReturnDate:        "2025-06-10",
		TotalPrice:        1240,
		Currency:          "USD",
		ValidatingAirline: "Lufthansa",
	})

	require.Contains(t, body, "offer-1")
	require.Contains(t, body, "JFK -> LHR")
	require.Contains(t, body, "1240 USD")
	require.Contains(t, body, "Returning 2025-06-10.")
}
