// Package mocks provides testify mocks for the domain repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"loungeadvisor-service/internal/domain/entity"
)

// MockFlightProvider mocks repository.FlightProvider
type MockFlightProvider struct {
	mock.Mock
}

func (m *MockFlightProvider) GetFlightStatus(ctx context.Context, identifier, date, operationalSuffix string) (*entity.FlightStatus, error) {
	args := m.Called(ctx, identifier, date, operationalSuffix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FlightStatus), args.Error(1)
}

func (m *MockFlightProvider) SearchFlights(ctx context.Context, query entity.FlightSearchQuery) (*entity.FlightSearchResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FlightSearchResult), args.Error(1)
}

// MockLoungeRepository mocks repository.LoungeRepository
type MockLoungeRepository struct {
	mock.Mock
}

func (m *MockLoungeRepository) GetLoungesWithAccessRules(ctx context.Context, airportCode string) (*entity.AirportLounges, error) {
	args := m.Called(ctx, airportCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AirportLounges), args.Error(1)
}

// MockUserRepository mocks repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUser(ctx context.Context, userID string) (*entity.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserProfile), args.Error(1)
}

// MockSecretStore mocks repository.SecretStore
type MockSecretStore struct {
	mock.Mock
}

func (m *MockSecretStore) GetSecret(ctx context.Context, name string) (*entity.Credentials, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Credentials), args.Error(1)
}

// MockTimezoneRepository mocks repository.TimezoneRepository
type MockTimezoneRepository struct {
	mock.Mock
}

func (m *MockTimezoneRepository) GetByAirportCode(ctx context.Context, code string) (*entity.Timezone, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Timezone), args.Error(1)
}

// MockAirlineRepository mocks repository.AirlineRepository
type MockAirlineRepository struct {
	mock.Mock
}

func (m *MockAirlineRepository) GetByCode(ctx context.Context, code string) (*entity.Airline, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Airline), args.Error(1)
}
