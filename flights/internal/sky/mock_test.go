package sky

import (
	"fmt"
	"testing"

	"github.com/skytrip/flight_search_service/flights/internal/model"
	"github.com/stretchr/testify/require"
)

// The generator is deterministic in shape but randomized in values, so
// these tests assert structural invariants, never exact numbers.

func TestGenerateMockOffersOneWay(t *testing.T) {
	offers := GenerateMockOffers(oneWayParams())

	require.Len(t, offers, 6)
	for i, offer := range offers {
		require.Equal(t, fmt.Sprintf("mock-%v", i+1), offer.ID)
		require.Nil(t, offer.Inbound)
		require.Equal(t, offer.Outbound.Price, offer.TotalPrice)
		require.Equal(t, "JFK", offer.Outbound.Origin.IATA)
		require.Equal(t, "LHR", offer.Outbound.Destination.IATA)
		require.Equal(t, model.CabinEconomy, offer.Outbound.CabinClass)

		stops := offer.Outbound.Stops
		require.Contains(t, []int{0, 1, 2}, stops)
		require.Equal(t, mockDurations[stops], offer.Outbound.Duration)

		require.GreaterOrEqual(t, offer.TotalPrice, 400.0)
		require.Less(t, offer.TotalPrice, 1000.0)
	}
}

func TestGenerateMockOffersRoundTrip(t *testing.T) {
	params := oneWayParams()
	params.TripType = model.TripRoundTrip
	params.ReturnDate = "2025-06-10"

	offers := GenerateMockOffers(params)

	require.Len(t, offers, 6)
	for _, offer := range offers {
		require.NotNil(t, offer.Inbound)
		require.Equal(t, offer.Outbound.Price*2, offer.TotalPrice)
		require.Equal(t, offer.Outbound.Price, offer.Inbound.Price)
		require.Equal(t, "LHR", offer.Inbound.Origin.IATA)
		require.Equal(t, "JFK", offer.Inbound.Destination.IATA)
		require.Equal(t, offer.Outbound.Stops, offer.Inbound.Stops)
		require.Equal(t, offer.Outbound.Duration, offer.Inbound.Duration)
	}
}

func TestGenerateMockOffersUsesDistinctRosterAirlines(t *testing.T) {
	offers := GenerateMockOffers(oneWayParams())

	seen := map[string]bool{}
	for _, offer := range offers {
		require.Equal(t, offer.Outbound.Airline, offer.ValidatingAirline)
		require.False(t, seen[offer.Outbound.Airline])
		seen[offer.Outbound.Airline] = true
	}
	require.Len(t, seen, 6)
}

func TestMockTimeWrapsPastMidnight(t *testing.T) {
	require.Equal(t, "2025-06-01T08:00:00Z", mockTime("2025-06-01", 8, 0))
	require.Equal(t, "2025-06-01T01:30:00Z", mockTime("2025-06-01", 25, 30))
}
