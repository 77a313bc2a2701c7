package sky

// Upstream payload shapes. The vendor publishes no contract for these;
// the fields below are the observed ones, and every one of them is
// treated as optional by the mapping layer.

type airportSearchResponse struct {
	Status bool          `json:"status"`
	Data   []airportItem `json:"data"`
}

type airportItem struct {
	SkyID        string `json:"skyId"`
	EntityID     string `json:"entityId"`
	Presentation struct {
		Title           string `json:"title"`
		SuggestionTitle string `json:"suggestionTitle"`
		Subtitle        string `json:"subtitle"`
	} `json:"presentation"`
	Navigation struct {
		LocalizedName string `json:"localizedName"`
	} `json:"navigation"`
}

type flightSearchResponse struct {
	Status bool              `json:"status"`
	Data   *flightSearchData `json:"data"`
}

type flightSearchData struct {
	Context struct {
		Status    string `json:"status"`
		SessionID string `json:"sessionId"`
	} `json:"context"`
	Itineraries []itinerary `json:"itineraries"`
}

type itinerary struct {
	ID    string          `json:"id"`
	Price *itineraryPrice `json:"price"`
	Legs  []leg           `json:"legs"`
}

type itineraryPrice struct {
	Raw       float64 `json:"raw"`
	Formatted string  `json:"formatted"`
}

type leg struct {
	ID                string      `json:"id"`
	Origin            *legPlace   `json:"origin"`
	Destination       *legPlace   `json:"destination"`
	Departure         string      `json:"departure"`
	Arrival           string      `json:"arrival"`
	DurationInMinutes int         `json:"durationInMinutes"`
	StopCount         int         `json:"stopCount"`
	Carriers          legCarriers `json:"carriers"`
	Segments          []segment   `json:"segments"`
}

type legPlace struct {
	ID          string `json:"id"`
	DisplayCode string `json:"displayCode"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Parent      *struct {
		Name string `json:"name"`
	} `json:"parent"`
}

type legCarriers struct {
	Marketing []carrier `json:"marketing"`
	Operating []carrier `json:"operating"`
}

type carrier struct {
	Name string `json:"name"`
}

type segment struct {
	FlightNumber     string   `json:"flightNumber"`
	MarketingCarrier *carrier `json:"marketingCarrier"`
	OperatingCarrier *carrier `json:"operatingCarrier"`
}
