package utils

import (
	"strings"
	"time"
	"unicode"

	"loungeadvisor-service/pkg/errs"
)

// DateLayout is the wire format for scheduled departure dates
const DateLayout = "2006-01-02"

// FlightDesignator is a parsed flight identifier
type FlightDesignator struct {
	CarrierCode  string
	FlightNumber string
}

// String returns the canonical identifier form, e.g. "AA123"
func (d FlightDesignator) String() string {
	return d.CarrierCode + d.FlightNumber
}

// ParseFlightIdentifier splits an identifier like "AA123" into carrier code
// and flight number. The leading alphabetic run is the carrier, truncated to
// the 2-character IATA code; the remaining digits are the flight number.
func ParseFlightIdentifier(identifier string) (FlightDesignator, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(identifier))
	if cleaned == "" {
		return FlightDesignator{}, errs.Validation("flight identifier is required")
	}

	var carrier strings.Builder
	rest := ""
	for i, r := range cleaned {
		if unicode.IsLetter(r) {
			carrier.WriteRune(r)
			continue
		}
		rest = cleaned[i:]
		break
	}

	if carrier.Len() < 2 {
		return FlightDesignator{}, errs.Validation("invalid flight identifier %q, expected format like AA123", identifier)
	}

	var number strings.Builder
	for _, r := range rest {
		if unicode.IsDigit(r) {
			number.WriteRune(r)
		}
	}
	if number.Len() == 0 {
		return FlightDesignator{}, errs.Validation("no flight number found in %q", identifier)
	}

	return FlightDesignator{
		CarrierCode:  carrier.String()[:2],
		FlightNumber: number.String(),
	}, nil
}

// ValidateDepartureDate checks a scheduled departure date is YYYY-MM-DD
func ValidateDepartureDate(date string) error {
	if date == "" {
		return errs.Validation("departure date is required")
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return errs.Validation("departure date %q must be in YYYY-MM-DD format", date)
	}
	return nil
}
