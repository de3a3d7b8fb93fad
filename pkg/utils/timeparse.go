package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"loungeadvisor-service/internal/domain/repository"
	"loungeadvisor-service/pkg/logger"
)

// Layouts the schedule provider has been seen to use. The offset-less ones
// are local to the airport.
var flightTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"15:04:05",
	"15:04",
}

// FlightTimeParser resolves provider timestamps into absolute times,
// consulting the timezone repository when the value carries no UTC offset
type FlightTimeParser struct {
	timezoneRepo repository.TimezoneRepository
	logger       logger.Logger
}

// NewFlightTimeParser creates a new flight time parser with dependencies
func NewFlightTimeParser(timezoneRepo repository.TimezoneRepository, logger logger.Logger) *FlightTimeParser {
	return &FlightTimeParser{
		timezoneRepo: timezoneRepo,
		logger:       logger,
	}
}

// ParseFlightTime parses a provider timestamp. date supplies the missing
// date for time-only values; airport resolves the local zone for values
// without an offset. Unknown airports fall back to UTC, which keeps
// relative comparisons between legs consistent.
func (p *FlightTimeParser) ParseFlightTime(ctx context.Context, value, date, airport string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty flight time")
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	loc := p.airportLocation(ctx, airport)
	for _, layout := range flightTimeLayouts[1:] {
		t, err := time.ParseInLocation(layout, value, loc)
		if err != nil {
			continue
		}
		if layout == "15:04:05" || layout == "15:04" {
			day, derr := time.ParseInLocation(DateLayout, date, loc)
			if derr != nil {
				return time.Time{}, fmt.Errorf("time-only value %q without a parseable date", value)
			}
			t = time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
		}
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized flight time %q", value)
}

func (p *FlightTimeParser) airportLocation(ctx context.Context, airport string) *time.Location {
	if p.timezoneRepo == nil || airport == "" {
		return time.UTC
	}

	tz, err := p.timezoneRepo.GetByAirportCode(ctx, strings.ToUpper(airport))
	if err != nil || tz == nil || tz.TzName == "" {
		p.logger.Debug("No timezone reference for airport, using UTC", "airport", airport)
		return time.UTC
	}

	loc, err := time.LoadLocation(tz.TzName)
	if err != nil {
		p.logger.Warn("Failed to load airport timezone", "airport", airport, "tz", tz.TzName, "error", err)
		return time.UTC
	}
	return loc
}
