package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"loungeadvisor-service/internal/domain/entity"
	"loungeadvisor-service/internal/domain/repository"
	"loungeadvisor-service/internal/infrastructure/oauth"
	"loungeadvisor-service/pkg/errs"
	"loungeadvisor-service/pkg/logger"
	"loungeadvisor-service/pkg/metrics"
	"loungeadvisor-service/pkg/utils"
)

const (
	scheduleFlightsPath = "/v2/schedule/flights"
	flightOffersPath    = "/v2/shopping/flight-offers"
)

// Client talks to the Amadeus flight data APIs and maps responses into the
// canonical entities. Provider field names never leave this package.
type Client struct {
	baseURL     string
	tokens      *oauth.CredentialCache
	httpClient  *http.Client
	airlineRepo repository.AirlineRepository
	logger      logger.Logger
	metrics     *metrics.Metrics
}

var _ repository.FlightProvider = (*Client)(nil)

// NewClient creates a new flight data client. airlineRepo may be nil, in
// which case responses are not enriched with airline names.
func NewClient(
	baseURL string,
	tokens *oauth.CredentialCache,
	httpClient *http.Client,
	airlineRepo repository.AirlineRepository,
	logger logger.Logger,
	m *metrics.Metrics,
) *Client {
	if tokens == nil {
		panic("credential cache cannot be nil")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		tokens:      tokens,
		httpClient:  httpClient,
		airlineRepo: airlineRepo,
		logger:      logger,
		metrics:     m,
	}
}

// GetFlightStatus looks up a flight by identifier and date. Returns
// (nil, nil) when the provider has no data for valid input.
func (c *Client) GetFlightStatus(ctx context.Context, identifier, date, operationalSuffix string) (*entity.FlightStatus, error) {
	designator, err := utils.ParseFlightIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateDepartureDate(date); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("carrierCode", designator.CarrierCode)
	params.Set("flightNumber", designator.FlightNumber)
	params.Set("scheduledDepartureDate", date)
	if operationalSuffix != "" {
		params.Set("operationalSuffix", operationalSuffix)
	}

	start := time.Now()
	c.metrics.IncFlightLookups()

	var payload scheduleResponse
	if err := c.get(ctx, scheduleFlightsPath, params, &payload); err != nil {
		c.metrics.IncProviderErrors("flight_status")
		return nil, err
	}
	c.metrics.ObserveFlightLookup(time.Since(start))

	if len(payload.Data) == 0 {
		c.logger.Info("No flight found",
			"carrier", designator.CarrierCode,
			"flightNumber", designator.FlightNumber,
			"date", date)
		return nil, nil
	}

	status := payload.Data[0].toEntity(designator, date, operationalSuffix)
	c.enrichAirline(ctx, status)
	return status, nil
}

// SearchFlights queries the flight-offers API for lounge planning
func (c *Client) SearchFlights(ctx context.Context, query entity.FlightSearchQuery) (*entity.FlightSearchResult, error) {
	origin := strings.ToUpper(strings.TrimSpace(query.Origin))
	destination := strings.ToUpper(strings.TrimSpace(query.Destination))
	if origin == "" || destination == "" {
		return nil, errs.Validation("origin and destination airports are required")
	}
	if err := utils.ValidateDepartureDate(query.DepartureDate); err != nil {
		return nil, err
	}
	if query.ReturnDate != "" {
		if err := utils.ValidateDepartureDate(query.ReturnDate); err != nil {
			return nil, err
		}
	}

	params := url.Values{}
	params.Set("originLocationCode", origin)
	params.Set("destinationLocationCode", destination)
	params.Set("departureDate", query.DepartureDate)
	params.Set("adults", "1")
	params.Set("max", "10")
	params.Set("currencyCode", "USD")
	if query.ReturnDate != "" {
		params.Set("returnDate", query.ReturnDate)
	}

	var payload offersResponse
	if err := c.get(ctx, flightOffersPath, params, &payload); err != nil {
		c.metrics.IncProviderErrors("flight_search")
		return nil, err
	}

	result := &entity.FlightSearchResult{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: query.DepartureDate,
		ReturnDate:    query.ReturnDate,
		Flights:       make([]entity.FlightOption, 0, len(payload.Data)),
	}
	for _, offer := range payload.Data {
		result.Flights = append(result.Flights, offer.toEntity())
	}
	result.TotalFound = len(result.Flights)
	return result, nil
}

// get performs one authenticated GET against the provider. A 401 response
// invalidates the cached token and surfaces an AuthError; the caller owns
// the single retry.
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	token, err := c.tokens.GetToken(ctx)
	if err != nil {
		return err
	}

	reqURL := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return errs.Internal(err)
	}
	req.Header.Set("Authorization", "Bearer "+token.Value)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Provider(0, fmt.Sprintf("flight provider unreachable: %v", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.tokens.Invalidate()
		return errs.Auth("flight provider rejected token", nil)
	case resp.StatusCode != http.StatusOK:
		return errs.Provider(resp.StatusCode, providerErrorMessage(resp))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Provider(resp.StatusCode, fmt.Sprintf("malformed provider response: %v", err))
	}
	return nil
}

func (c *Client) enrichAirline(ctx context.Context, status *entity.FlightStatus) {
	if c.airlineRepo == nil || status == nil {
		return
	}
	airline, err := c.airlineRepo.GetByCode(ctx, status.CarrierCode)
	if err != nil || airline == nil {
		return
	}
	status.Airline = airline.Name
}

// providerErrorMessage extracts the provider's own error description when
// the body carries one
func providerErrorMessage(resp *http.Response) string {
	var body struct {
		Errors []struct {
			Status int    `json:"status"`
			Title  string `json:"title"`
			Detail string `json:"detail"`
		} `json:"errors"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if len(body.Errors) > 0 {
			e := body.Errors[0]
			if e.Detail != "" {
				return fmt.Sprintf("%s: %s", e.Title, e.Detail)
			}
			return e.Title
		}
		if body.ErrorDescription != "" {
			return body.ErrorDescription
		}
	}
	return fmt.Sprintf("flight provider returned HTTP %d", resp.StatusCode)
}
