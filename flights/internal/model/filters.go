package model

import (
	"strconv"
	"strings"
	"time"
)

const (
	DepartMorning   = "morning"   // 05:00 - 11:59
	DepartAfternoon = "afternoon" // 12:00 - 16:59
	DepartEvening   = "evening"   // 17:00 - 20:59
	DepartNight     = "night"     // 21:00 - 04:59
)

// SearchFilters narrows an already-fetched offer list on the display
// side. A zero filter keeps everything; no upstream round-trip is ever
// involved.
type SearchFilters struct {
	MaxPrice      float64  `json:"max_price,omitempty"`
	Stops         []int    `json:"stops,omitempty"`
	Airlines      []string `json:"airlines,omitempty"`
	DepartureTime []string `json:"departure_time,omitempty"`
	MaxDuration   int      `json:"max_duration,omitempty"`
}

func (f SearchFilters) Empty() bool {
	return f.MaxPrice == 0 &&
		len(f.Stops) == 0 &&
		len(f.Airlines) == 0 &&
		len(f.DepartureTime) == 0 &&
		f.MaxDuration == 0
}

// Apply returns the offers matching every set criterion, preserving
// order.
func (f SearchFilters) Apply(offers []FlightOffer) []FlightOffer {
	if f.Empty() {
		return offers
	}
	kept := []FlightOffer{}
	for _, offer := range offers {
		if f.matches(offer) {
			kept = append(kept, offer)
		}
	}
	return kept
}

func (f SearchFilters) matches(offer FlightOffer) bool {
	if f.MaxPrice > 0 && offer.TotalPrice > f.MaxPrice {
		return false
	}
	if len(f.Stops) > 0 && !containsInt(f.Stops, offer.Outbound.Stops) {
		return false
	}
	if len(f.Airlines) > 0 && !containsFold(f.Airlines, offer.Outbound.Airline) {
		return false
	}
	if len(f.DepartureTime) > 0 {
		bucket := departureBucket(offer.Outbound.DepartureTime)
		if bucket == "" || !containsFold(f.DepartureTime, bucket) {
			return false
		}
	}
	if f.MaxDuration > 0 {
		minutes, ok := DurationMinutes(offer.Outbound.Duration)
		if ok && minutes > f.MaxDuration {
			return false
		}
	}
	return true
}

// DurationMinutes parses the display duration format "<h>h <m>m". The
// second return is false for anything else, including "N/A".
func DurationMinutes(s string) (int, bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 ||
		!strings.HasSuffix(fields[0], "h") ||
		!strings.HasSuffix(fields[1], "m") {
		return 0, false
	}
	hours, err := strconv.Atoi(strings.TrimSuffix(fields[0], "h"))
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(strings.TrimSuffix(fields[1], "m"))
	if err != nil {
		return 0, false
	}
	return hours*60 + minutes, true
}

func departureBucket(timestamp string) string {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return ""
	}
	switch hour := t.Hour(); {
	case hour >= 5 && hour < 12:
		return DepartMorning
	case hour >= 12 && hour < 17:
		return DepartAfternoon
	case hour >= 17 && hour < 21:
		return DepartEvening
	default:
		return DepartNight
	}
}

func containsInt(haystack []int, needle int) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}

func containsFold(haystack []string, needle string) bool {
	for _, v := range haystack {
		if strings.EqualFold(v, needle) {
			return true
		}
	}
	return false
}
