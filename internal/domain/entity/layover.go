package entity

// Layover strategy buckets by connection length
const (
	StrategyNoLounge       = "no_lounge"
	StrategyQuickVisit     = "quick_visit"
	StrategyFullExperience = "full_experience"
)

// LayoverStrategy is the plan for one connection in a multi-leg itinerary
type LayoverStrategy struct {
	ConnectionAirport string           `json:"connectionAirport"`
	ArrivalFlight     string           `json:"arrivalFlight"`
	DepartureFlight   string           `json:"departureFlight"`
	LayoverMinutes    int              `json:"layoverMinutes"`
	Recommendation    string           `json:"recommendation"`
	Advice            string           `json:"advice"`
	SuggestedLounges  []Recommendation `json:"suggestedLounges,omitempty"`
}

// LayoverPlanRequest is the input of the layover planning operation
type LayoverPlanRequest struct {
	Legs        []FlightLeg  `json:"legs"`
	Memberships []string     `json:"memberships"`
	Preferences *Preferences `json:"preferences,omitempty"`
}
