package entity

// Lounge is a single lounge at an airport, supplied by the catalog gateway
// and read-only within the recommendation core
type Lounge struct {
	Airport         string                 `json:"airport" bson:"airport"`
	LoungeID        string                 `json:"loungeId" bson:"loungeId"`
	Name            string                 `json:"name" bson:"name"`
	Terminal        string                 `json:"terminal,omitempty" bson:"terminal,omitempty"`
	AccessProviders []string               `json:"accessProviders" bson:"accessProviders"`
	Amenities       []string               `json:"amenities,omitempty" bson:"amenities,omitempty"`
	Hours           string                 `json:"hours,omitempty" bson:"hours,omitempty"`
	AvgWaitMinutes  int                    `json:"avgWaitMinutes" bson:"avgWaitMinutes"`
	CrowdLevel      string                 `json:"crowdLevel,omitempty" bson:"crowdLevel,omitempty"`
	Rating          float64                `json:"rating" bson:"rating"`
	AccessDetails   []AccessProviderPolicy `json:"accessDetails,omitempty" bson:"-"`
}

// AccessProviderPolicy is the entry policy of one access provider, merged
// onto a lounge for display
type AccessProviderPolicy struct {
	ProviderName string `json:"providerName" bson:"providerName"`
	GuestPolicy  string `json:"guestPolicy,omitempty" bson:"guestPolicy,omitempty"`
	Conditions   string `json:"conditions,omitempty" bson:"conditions,omitempty"`
	Notes        string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// AirportLounges is the catalog gateway response for one airport
type AirportLounges struct {
	Airport string   `json:"airport"`
	Lounges []Lounge `json:"lounges"`
}
