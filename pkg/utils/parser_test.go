package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loungeadvisor-service/pkg/errs"
)

func TestParseFlightIdentifier(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		carrier    string
		number     string
	}{
		{"simple", "AA123", "AA", "123"},
		{"lowercase", "ba2490", "BA", "2490"},
		{"whitespace", "  DL100 ", "DL", "100"},
		{"three letter carrier truncated", "DAL123", "DA", "123"},
		{"separator between carrier and number", "AA 123", "AA", "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			designator, err := ParseFlightIdentifier(tt.identifier)
			require.NoError(t, err)
			assert.Equal(t, tt.carrier, designator.CarrierCode)
			assert.Equal(t, tt.number, designator.FlightNumber)
			assert.Equal(t, tt.carrier+tt.number, designator.String())
		})
	}
}

func TestParseFlightIdentifierInvalid(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"single letter carrier", "A1"},
		{"digits only", "123"},
		{"no flight number", "AA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlightIdentifier(tt.identifier)
			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
		})
	}
}

func TestValidateDepartureDate(t *testing.T) {
	assert.NoError(t, ValidateDepartureDate("2026-09-15"))

	for _, date := range []string{"", "15-09-2026", "2026/09/15", "2026-13-40", "tomorrow"} {
		err := ValidateDepartureDate(date)
		require.Error(t, err, "date %q", date)
		assert.True(t, errs.IsValidation(err))
	}
}
