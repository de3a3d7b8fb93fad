package entity

// AccessMatch records which membership unlocked which provider
type AccessMatch struct {
	Membership string `json:"membership"`
	Provider   string `json:"provider"`
}

// TimingWindow bounds a lounge visit relative to the departing flight
type TimingWindow struct {
	LatestEntry                string `json:"latestEntry,omitempty"`
	LatestExit                 string `json:"latestExit,omitempty"`
	RecommendedDurationMinutes int    `json:"recommendedDurationMinutes,omitempty"`
}

// Recommendation is a scored lounge suggestion
type Recommendation struct {
	Lounge        Lounge        `json:"lounge"`
	AccessMethods []AccessMatch `json:"accessMethods"`
	Score         int           `json:"score"`
	Reasons       []string      `json:"reasons,omitempty"`
	Timing        *TimingWindow `json:"timing,omitempty"`
}

// RecommendationRequest is the input of the flight-aware recommendation
// operation
type RecommendationRequest struct {
	FlightIdentifier  string       `json:"flightIdentifier"`
	Date              string       `json:"date"`
	OperationalSuffix string       `json:"operationalSuffix,omitempty"`
	Memberships       []string     `json:"memberships"`
	Preferences       *Preferences `json:"preferences,omitempty"`
}

// RecommendationResult is the payload of a successful recommendation lookup
type RecommendationResult struct {
	Flight          *FlightStatus    `json:"flight"`
	Airport         string           `json:"airport"`
	Recommendations []Recommendation `json:"recommendations"`
	TotalAccessible int              `json:"totalAccessible"`
}
