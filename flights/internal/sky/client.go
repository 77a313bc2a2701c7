package sky

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/skytrip/flight_search_service/flights/internal/model"
)

const (
	flightSearchTimeout  = 10 * time.Second
	airportSearchTimeout = 5 * time.Second

	maxFlightAttempts = 5
	airportRetries    = 2
	maxAirportResults = 10

	airportCacheSize = 128
	airportCacheTTL  = 5 * time.Minute
)

type Config struct {
	BaseURL string
	APIKey  string
	APIHost string
}

// Client talks to the upstream flight-data service. Its two public
// operations, SearchFlights and SearchAirports, never return an error:
// every failure mode resolves to a value the caller can render.
type Client struct {
	baseURL    string
	apiKey     string
	apiHost    string
	httpClient *http.Client

	airportCache *expirable.LRU[string, []model.Airport]

	// wait is replaced in tests to skip the real backoff delays.
	wait func(ctx context.Context, d time.Duration) error
}

func New(cfg Config) *Client {
	return &Client{
		baseURL:      cfg.BaseURL,
		apiKey:       cfg.APIKey,
		apiHost:      cfg.APIHost,
		httpClient:   &http.Client{},
		airportCache: expirable.NewLRU[string, []model.Airport](airportCacheSize, nil, airportCacheTTL),
		wait:         sleep,
	}
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, timeout time.Duration, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream status %v", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
