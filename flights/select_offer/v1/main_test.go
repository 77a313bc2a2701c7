package main

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/go-cmp/cmp"
	"github.com/skytrip/flight_search_service/flights/internal/model"
	"github.com/skytrip/flight_search_service/internal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type EnqueuerMock struct {
	mock.Mock
}

func (m *EnqueuerMock) SendMsg(ctx context.Context, msg interface{}, queue string) error {
	ret := m.Called(msg, queue)
	return ret.Error(0)
}

func TestAdapter(t *testing.T) {

	type mocks struct {
		enqueuer *EnqueuerMock
	}

	type args struct {
		queue string
	}

	validBody := `{
		"offer_id": "offer-1",
		"user_email": "someone@some.com",
		"origin": "JFK",
		"destination": "LHR",
		"departure_date": "2025-06-01",
		"total_price": 620,
		"currency": "USD",
		"validating_airline": "Lufthansa"
	}`

	tests := []struct {
		name   string
		req    events.APIGatewayProxyRequest
		want   events.APIGatewayProxyResponse
		mocks  mocks
		args   args
		mocker func(m mocks, a args)
	}{
		{
			name: "Get a 200 status code after successfully selecting an offer",
			req: events.APIGatewayProxyRequest{
				Body: validBody,
			},
			want: events.APIGatewayProxyResponse{
				StatusCode: http.StatusOK,
				Headers: map[string]string{
					"Content-Type": "application/json",
				},
				Body: internal.TrimLines(`{
					"status":"confirmed"
				}`),
			},
			mocks: mocks{
				enqueuer: &EnqueuerMock{},
			},
			args: args{
				queue: "selected-offers",
			},
			mocker: func(m mocks, a args) {
				m.enqueuer.On(
					"SendMsg",
					model.QueueMsgSelectedOffer{
						OfferID:           "offer-1",
						Origin:            "JFK",
						Destination:       "LHR",
						DepartureDate:     "2025-06-01",
						TotalPrice:        620,
						Currency:          "USD",
						ValidatingAirline: "Lufthansa",
						UserEmail:         "someone@some.com",
					},
					a.queue,
				).Return(nil).Once()
			},
		},
		{
			name: "Get a 400 status code when required fields are missing",
			req: events.APIGatewayProxyRequest{
				Body: `{
					"offer_id": "offer-1"
				}`,
			},
			want: events.APIGatewayProxyResponse{
				StatusCode: http.StatusBadRequest,
				Headers: map[string]string{
					"Content-Type": "application/json",
				},
			},
			mocks: mocks{
				enqueuer: &EnqueuerMock{},
			},
			args: args{
				queue: "selected-offers",
			},
			mocker: func(m mocks, a args) {},
		},
		{
			name: "Get a 500 status code when the queue is unavailable",
			req: events.APIGatewayProxyRequest{
				Body: validBody,
			},
			want: events.APIGatewayProxyResponse{
				StatusCode: http.StatusInternalServerError,
				Headers: map[string]string{
					"Content-Type": "application/json",
				},
				Body: internal.TrimLines(`{
					"errors":["queue is gone"]
				}`),
			},
			mocks: mocks{
				enqueuer: &EnqueuerMock{},
			},
			args: args{
				queue: "selected-offers",
			},
			mocker: func(m mocks, a args) {
				m.enqueuer.On(
					"SendMsg",
					mock.AnythingOfType("model.QueueMsgSelectedOffer"),
					a.queue,
				).Return(errors.New("queue is gone")).Once()
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			tt.mocker(tt.mocks, tt.args)

			// Act
			handler := Adapter(tt.mocks.enqueuer, tt.args.queue)
			got, err := handler(context.Background(), tt.req)

			// Assert
			require.NoError(t, err)
			require.Equal(t, tt.want.StatusCode, got.StatusCode)
			if tt.want.Body != "" {
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("Differences: (-want,+got)\n%s", diff)
				}
			}

			tt.mocks.enqueuer.AssertExpectations(t)
		})
	}
}
