package entity

// UserProfile is a traveler profile from the user gateway
type UserProfile struct {
	UserID      string   `json:"userId" bson:"userId"`
	Name        string   `json:"name,omitempty" bson:"name,omitempty"`
	HomeAirport string   `json:"homeAirport,omitempty" bson:"homeAirport,omitempty"`
	Memberships []string `json:"memberships" bson:"memberships"`
}

// Preferences are the traveler's stated lounge preferences. A nil
// Preferences means no preference scoring is applied.
type Preferences struct {
	Quiet   bool `json:"quiet,omitempty"`
	Food    bool `json:"food,omitempty"`
	Wifi    bool `json:"wifi,omitempty"`
	Showers bool `json:"showers,omitempty"`
}
