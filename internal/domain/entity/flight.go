package entity

// FlightPoint describes one end of a flight segment. Times are ISO 8601
// strings local to the airport, as the schedule provider reports them.
type FlightPoint struct {
	Airport       string `json:"airport"`
	Terminal      string `json:"terminal,omitempty"`
	Gate          string `json:"gate,omitempty"`
	ScheduledTime string `json:"scheduledTime,omitempty"`
	EstimatedTime string `json:"estimatedTime,omitempty"`
	ActualTime    string `json:"actualTime,omitempty"`
}

// FlightStatus is the canonical flight shape built from a provider lookup.
// Immutable once built, never persisted.
type FlightStatus struct {
	CarrierCode       string      `json:"carrierCode"`
	FlightNumber      string      `json:"flightNumber"`
	DepartureDate     string      `json:"departureDate"`
	OperationalSuffix string      `json:"operationalSuffix,omitempty"`
	Airline           string      `json:"airline,omitempty"`
	Departure         FlightPoint `json:"departure"`
	Arrival           FlightPoint `json:"arrival"`
	Aircraft          string      `json:"aircraft,omitempty"`
	OperatingCarrier  string      `json:"operatingCarrier,omitempty"`
}

// Identifier returns the combined designator, e.g. "AA123"
func (f *FlightStatus) Identifier() string {
	return f.CarrierCode + f.FlightNumber
}

// FlightLeg is one leg of a traveler's itinerary as submitted by the caller
type FlightLeg struct {
	Identifier        string `json:"identifier"`
	Date              string `json:"date"`
	OperationalSuffix string `json:"operationalSuffix,omitempty"`
}
