package sky

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/skytrip/flight_search_service/flights/internal/model"
)

// Source tags where a result list came from.
type Source string

const (
	SourceLive Source = "live"
	SourceMock Source = "mock"
)

const (
	statusComplete   = "complete"
	statusIncomplete = "incomplete"
)

var errAttemptsExhausted = errors.New("attempt budget exhausted without a terminal answer")

// SearchFlights runs the bounded polling protocol against the upstream
// search endpoint and returns an offer list for display. The upstream
// service assembles itineraries progressively under a session, so each
// attempt carries the session identifier once one has been adopted, and
// an "incomplete" answer means wait and poll again. The first non-empty
// itinerary batch wins. A terminal "complete" with no itineraries is a
// legitimate zero-result outcome and returns an empty live list.
//
// Any transport error, a canceled context, or exhaustion of the attempt
// budget abandons the live protocol and returns synthetic offers
// instead. SearchFlights never fails outward.
func (c *Client) SearchFlights(ctx context.Context, params model.SearchParams) ([]model.FlightOffer, Source) {
	offers, err := c.searchLive(ctx, params)
	if err != nil {
		return GenerateMockOffers(params), SourceMock
	}
	return offers, SourceLive
}

func (c *Client) searchLive(ctx context.Context, params model.SearchParams) ([]model.FlightOffer, error) {
	sessionID := ""

	for attempt := 0; attempt < maxFlightAttempts; attempt++ {
		res := flightSearchResponse{}
		err := c.getJSON(ctx, "/api/v2/flights/searchFlights", flightQuery(params, sessionID), flightSearchTimeout, &res)
		if err != nil {
			return nil, err
		}

		if !res.Status || res.Data == nil {
			continue
		}

		// Session continuity across polling attempts
		if id := res.Data.Context.SessionID; id != "" {
			sessionID = id
		}

		if len(res.Data.Itineraries) > 0 {
			return mapItineraries(res.Data.Itineraries, params), nil
		}

		if res.Data.Context.Status == statusComplete {
			return []model.FlightOffer{}, nil
		}

		if res.Data.Context.Status == statusIncomplete {
			if err := c.wait(ctx, pollDelay(attempt)); err != nil {
				return nil, err
			}
		}
	}

	return nil, errAttemptsExhausted
}

func pollDelay(attempt int) time.Duration {
	return 3*time.Second + time.Duration(attempt)*time.Second
}

func flightQuery(params model.SearchParams, sessionID string) url.Values {
	q := url.Values{}
	q.Set("originSkyId", params.Origin)
	q.Set("destinationSkyId", params.Destination)
	q.Set("originEntityId", params.Origin)
	q.Set("destinationEntityId", params.Destination)
	q.Set("date", params.DepartureDate)
	if params.ReturnDate != "" {
		q.Set("returnDate", params.ReturnDate)
	}
	q.Set("cabinClass", params.CabinClass)
	q.Set("adults", strconv.Itoa(params.Adults))
	q.Set("children", strconv.Itoa(params.Children))
	q.Set("infants", strconv.Itoa(params.Infants))
	q.Set("sortBy", "best")
	q.Set("currency", "USD")
	q.Set("market", "en-US")
	q.Set("countryCode", "US")
	if sessionID != "" {
		q.Set("sessionId", sessionID)
	}
	return q
}
