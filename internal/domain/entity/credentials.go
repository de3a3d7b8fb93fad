package entity

import "time"

// Credentials are the provider's static client credentials, fetched from the
// secret store and immutable for the process lifetime
type Credentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// Token is a derived bearer token with a capped lifetime
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Valid reports whether the token can still be handed out at the given time
func (t Token) Valid(now time.Time) bool {
	return t.Value != "" && now.Before(t.ExpiresAt)
}
