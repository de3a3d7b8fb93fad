package repository

import (
	"context"

	"loungeadvisor-service/internal/domain/entity"
)

// FlightProvider defines the external flight data client.
// GetFlightStatus returns (nil, nil) when the flight cannot be found for
// valid input; a typed error otherwise.
type FlightProvider interface {
	GetFlightStatus(ctx context.Context, identifier, date, operationalSuffix string) (*entity.FlightStatus, error)
	SearchFlights(ctx context.Context, query entity.FlightSearchQuery) (*entity.FlightSearchResult, error)
}
