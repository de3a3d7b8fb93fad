package amadeus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loungeadvisor-service/internal/domain/entity"
	"loungeadvisor-service/internal/domain/mocks"
	"loungeadvisor-service/internal/infrastructure/oauth"
	"loungeadvisor-service/pkg/errs"
	"loungeadvisor-service/pkg/logger"
)

const scheduleBody = `{
	"data": [{
		"flightDesignator": {
			"carrierCode": "AA",
			"flightNumber": 123,
			"departure": {"iataCode": "JFK", "scheduledTime": "2026-09-15T14:30:00"},
			"arrival": {"iataCode": "LAX", "scheduledTime": "2026-09-15T17:45:00"}
		},
		"departure": {"iataCode": "JFK", "terminal": "4", "gate": "B22", "estimatedTime": "2026-09-15T14:45:00"},
		"arrival": {"iataCode": "LAX", "terminal": "B"},
		"aircraft": {"aircraftType": "32B"},
		"operatingCarrier": {"carrierCode": "AA"}
	}]
}`

type providerServer struct {
	server      *httptest.Server
	apiHits     int64
	apiStatus   int
	apiBody     string
	tokenDenied bool
}

func newProviderServer(t *testing.T) *providerServer {
	t.Helper()

	p := &providerServer{apiStatus: http.StatusOK, apiBody: scheduleBody}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		if p.tokenDenied {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"test-token","token_type":"Bearer","expires_in":1799}`))
	})
	mux.HandleFunc("/v2/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&p.apiHits, 1)
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if p.apiStatus != http.StatusOK {
			w.WriteHeader(p.apiStatus)
			w.Write([]byte(`{"errors":[{"status":500,"title":"SYSTEM ERROR","detail":"backend unavailable"}]}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(p.apiBody))
	})

	p.server = httptest.NewServer(mux)
	t.Cleanup(p.server.Close)
	return p
}

func (p *providerServer) hits() int64 {
	return atomic.LoadInt64(&p.apiHits)
}

func newTestClient(t *testing.T, p *providerServer, airlines *mocks.MockAirlineRepository) *Client {
	t.Helper()

	store := new(mocks.MockSecretStore)
	store.On("GetSecret", mock.Anything, mock.Anything).
		Return(&entity.Credentials{ClientID: "id", ClientSecret: "secret"}, nil)

	tokens := oauth.NewCredentialCache(
		oauth.CredentialCacheConfig{
			SecretName:    "amadeus/credentials",
			TokenURL:      p.server.URL + "/v1/security/oauth2/token",
			CredentialTTL: time.Hour,
			TokenTTL:      1500 * time.Second,
		},
		store,
		p.server.Client(),
		nil,
		logger.NewNop(),
		nil,
	)

	if airlines == nil {
		return NewClient(p.server.URL, tokens, p.server.Client(), nil, logger.NewNop(), nil)
	}
	return NewClient(p.server.URL, tokens, p.server.Client(), airlines, logger.NewNop(), nil)
}

func TestGetFlightStatusNormalization(t *testing.T) {
	p := newProviderServer(t)
	client := newTestClient(t, p, nil)

	status, err := client.GetFlightStatus(context.Background(), "aa123", "2026-09-15", "")
	require.NoError(t, err)
	require.NotNil(t, status)

	assert.Equal(t, "AA", status.CarrierCode)
	assert.Equal(t, "123", status.FlightNumber)
	assert.Equal(t, "2026-09-15", status.DepartureDate)

	dep := status.Departure
	assert.Equal(t, "JFK", dep.Airport)
	assert.Equal(t, "4", dep.Terminal)
	assert.Equal(t, "B22", dep.Gate)
	assert.Equal(t, "2026-09-15T14:30:00", dep.ScheduledTime)
	assert.Equal(t, "2026-09-15T14:45:00", dep.EstimatedTime)
	// No actual time reported yet: falls back to scheduled
	assert.Equal(t, "2026-09-15T14:30:00", dep.ActualTime)

	arr := status.Arrival
	assert.Equal(t, "LAX", arr.Airport)
	assert.Equal(t, "B", arr.Terminal)
	// Neither estimated nor actual reported: both fall back to scheduled
	assert.Equal(t, "2026-09-15T17:45:00", arr.EstimatedTime)
	assert.Equal(t, "2026-09-15T17:45:00", arr.ActualTime)
}

func TestGetFlightStatusAirlineEnrichment(t *testing.T) {
	p := newProviderServer(t)
	airlines := new(mocks.MockAirlineRepository)
	airlines.On("GetByCode", mock.Anything, "AA").
		Return(&entity.Airline{Code: "AA", Name: "American Airlines"}, nil)
	client := newTestClient(t, p, airlines)

	status, err := client.GetFlightStatus(context.Background(), "AA123", "2026-09-15", "")
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.Equal(t, "American Airlines", status.Airline)
}

func TestGetFlightStatusNotFound(t *testing.T) {
	p := newProviderServer(t)
	p.apiBody = `{"data": []}`
	client := newTestClient(t, p, nil)

	status, err := client.GetFlightStatus(context.Background(), "AA999", "2026-09-15", "")
	assert.NoError(t, err)
	assert.Nil(t, status)
}

func TestGetFlightStatusValidationShortCircuits(t *testing.T) {
	p := newProviderServer(t)
	client := newTestClient(t, p, nil)

	_, err := client.GetFlightStatus(context.Background(), "123", "2026-09-15", "")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	_, err = client.GetFlightStatus(context.Background(), "AA123", "not-a-date", "")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	assert.Equal(t, int64(0), p.hits(), "invalid input must not reach the provider")
}

func TestGetFlightStatusRejectedTokenInvalidatesCache(t *testing.T) {
	p := newProviderServer(t)
	client := newTestClient(t, p, nil)

	// Warm the token cache, then have the provider reject it
	_, err := client.GetFlightStatus(context.Background(), "AA123", "2026-09-15", "")
	require.NoError(t, err)

	client.tokens.Invalidate()
	p.tokenDenied = true

	_, err = client.GetFlightStatus(context.Background(), "AA123", "2026-09-15", "")
	require.Error(t, err)
	assert.True(t, errs.IsAuth(err))
}

func TestGetFlightStatusProviderError(t *testing.T) {
	p := newProviderServer(t)
	p.apiStatus = http.StatusInternalServerError
	client := newTestClient(t, p, nil)

	_, err := client.GetFlightStatus(context.Background(), "AA123", "2026-09-15", "")
	require.Error(t, err)
	assert.True(t, errs.IsProvider(err))

	var appErr *errs.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
	assert.Contains(t, appErr.Message, "SYSTEM ERROR")
}

func TestSearchFlights(t *testing.T) {
	p := newProviderServer(t)
	p.apiBody = `{
		"data": [{
			"id": "1",
			"price": {"total": "325.40", "currency": "USD"},
			"itineraries": [{
				"duration": "PT6H15M",
				"segments": [{
					"departure": {"iataCode": "JFK", "terminal": "4", "at": "2026-09-15T14:30:00"},
					"arrival": {"iataCode": "LAX", "terminal": "B", "at": "2026-09-15T17:45:00"},
					"carrierCode": "AA",
					"number": "123",
					"duration": "PT6H15M",
					"aircraft": {"code": "32B"}
				}]
			}]
		}]
	}`
	client := newTestClient(t, p, nil)

	result, err := client.SearchFlights(context.Background(), entity.FlightSearchQuery{
		Origin:        "jfk",
		Destination:   "lax",
		DepartureDate: "2026-09-15",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "JFK", result.Origin)
	assert.Equal(t, "LAX", result.Destination)
	assert.Equal(t, 1, result.TotalFound)
	require.Len(t, result.Flights, 1)

	seg := result.Flights[0].Itineraries[0].Segments[0]
	assert.Equal(t, "AA123", seg.FullFlightNumber)
	assert.Equal(t, "JFK", seg.Departure.Airport)
	assert.Equal(t, "325.40", result.Flights[0].Price.Total)
}

func TestSearchFlightsValidation(t *testing.T) {
	p := newProviderServer(t)
	client := newTestClient(t, p, nil)

	_, err := client.SearchFlights(context.Background(), entity.FlightSearchQuery{Origin: "JFK"})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	_, err = client.SearchFlights(context.Background(), entity.FlightSearchQuery{
		Origin: "JFK", Destination: "LAX", DepartureDate: "09/15/2026",
	})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	assert.Equal(t, int64(0), p.hits())
}
