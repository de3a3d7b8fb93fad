package entity

// FlightSearchQuery describes a flight-offers search for lounge planning
type FlightSearchQuery struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate,omitempty"`
}

// Price is the total price of a flight offer
type Price struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

// SegmentPoint is one end of a search result segment
type SegmentPoint struct {
	Airport  string `json:"airport"`
	Terminal string `json:"terminal,omitempty"`
	Time     string `json:"time"`
}

// Segment is one flown segment inside an itinerary
type Segment struct {
	Departure        SegmentPoint `json:"departure"`
	Arrival          SegmentPoint `json:"arrival"`
	Carrier          string       `json:"carrier"`
	FlightNumber     string       `json:"flightNumber"`
	FullFlightNumber string       `json:"fullFlightNumber"`
	Duration         string       `json:"duration,omitempty"`
	Aircraft         string       `json:"aircraft,omitempty"`
}

// Itinerary is an ordered list of segments
type Itinerary struct {
	Duration string    `json:"duration,omitempty"`
	Segments []Segment `json:"segments"`
}

// FlightOption is a single priced offer
type FlightOption struct {
	ID          string      `json:"id"`
	Price       Price       `json:"price"`
	Itineraries []Itinerary `json:"itineraries"`
}

// FlightSearchResult is the search response for lounge planning
type FlightSearchResult struct {
	Origin        string         `json:"origin"`
	Destination   string         `json:"destination"`
	DepartureDate string         `json:"departureDate"`
	ReturnDate    string         `json:"returnDate,omitempty"`
	Flights       []FlightOption `json:"flights"`
	TotalFound    int            `json:"totalFound"`
}
