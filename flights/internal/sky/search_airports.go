package sky

import (
	"context"
	"net/url"
	"time"

	"github.com/skytrip/flight_search_service/flights/internal/model"
)

// SearchAirports resolves a free-text query to at most 10 airports.
// Queries shorter than 2 characters return nothing without touching the
// network. The lookup retries twice with a linear backoff; once the
// budget is spent, or the upstream keeps failing, it resolves to an
// empty list. Callers cannot distinguish "no matches" from
// "unavailable", which is the intended soft-failure contract.
func (c *Client) SearchAirports(ctx context.Context, query string) []model.Airport {
	if len(query) < 2 {
		return []model.Airport{}
	}

	if cached, ok := c.airportCache.Get(query); ok {
		return cached
	}

	for attempt := 0; attempt <= airportRetries; attempt++ {
		res := airportSearchResponse{}
		err := c.getJSON(ctx, "/api/v1/flights/searchAirport", airportQuery(query), airportSearchTimeout, &res)
		if err == nil {
			if !res.Status {
				return []model.Airport{}
			}
			airports := mapAirportItems(res.Data)
			c.airportCache.Add(query, airports)
			return airports
		}

		if attempt == airportRetries {
			break
		}
		if c.wait(ctx, time.Duration(attempt+1)*time.Second) != nil {
			break
		}
	}

	return []model.Airport{}
}

func airportQuery(query string) url.Values {
	q := url.Values{}
	q.Set("query", query)
	q.Set("locale", "en-US")
	return q
}
