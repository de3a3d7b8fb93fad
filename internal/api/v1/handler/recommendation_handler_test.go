package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loungeadvisor-service/internal/domain/entity"
	"loungeadvisor-service/pkg/errs"
	"loungeadvisor-service/pkg/logger"
)

type stubServices struct {
	envelope *entity.Envelope
}

func (s *stubServices) GetFlightAwareRecommendations(ctx context.Context, req entity.RecommendationRequest) *entity.Envelope {
	return s.envelope
}

func (s *stubServices) SearchFlights(ctx context.Context, query entity.FlightSearchQuery) *entity.Envelope {
	return s.envelope
}

func (s *stubServices) PlanLayoverStrategy(ctx context.Context, req entity.LayoverPlanRequest) *entity.Envelope {
	return s.envelope
}

func newTestRouter(envelope *entity.Envelope) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	services := &stubServices{envelope: envelope}
	NewRecommendationHandler(services, services, logger.NewNop()).SetupRoutes(router)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestFlightRecommendationsStatusMapping(t *testing.T) {
	body := `{"flightIdentifier": "AA123", "date": "2026-09-15", "memberships": ["Priority Pass"]}`

	tests := []struct {
		name     string
		envelope *entity.Envelope
		status   int
	}{
		{"success", entity.Success(&entity.RecommendationResult{Airport: "JFK"}), http.StatusOK},
		{"not found stays 200", entity.NotFound("no flight found"), http.StatusOK},
		{"validation", entity.Failure(string(errs.KindValidation), "bad input"), http.StatusBadRequest},
		{"auth", entity.Failure(string(errs.KindAuth), "token rejected"), http.StatusBadGateway},
		{"provider", entity.Failure(string(errs.KindProvider), "provider down"), http.StatusBadGateway},
		{"internal", entity.Failure(string(errs.KindInternal), "boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(tt.envelope)
			w := postJSON(t, router, "/api/v1/recommendations/flight", body)

			assert.Equal(t, tt.status, w.Code)

			var envelope entity.Envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
			assert.Equal(t, tt.envelope.Status, envelope.Status)
		})
	}
}

func TestFlightRecommendationsRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(entity.Success(nil))

	w := postJSON(t, router, "/api/v1/recommendations/flight", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, router, "/api/v1/recommendations/flight", `{"memberships": []}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var envelope entity.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, string(errs.KindValidation), envelope.Error.Kind)
}

func TestLayoverPlanRoute(t *testing.T) {
	router := newTestRouter(entity.Success([]entity.LayoverStrategy{}))

	w := postJSON(t, router, "/api/v1/recommendations/layover",
		`{"legs": [{"identifier": "AA100", "date": "2026-09-15"}], "memberships": []}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearchFlightsRoute(t *testing.T) {
	router := newTestRouter(entity.NotFound("no flights found"))

	w := postJSON(t, router, "/api/v1/flights/search",
		`{"origin": "JFK", "destination": "LAX", "departureDate": "2026-09-15"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var envelope entity.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, entity.StatusNotFound, envelope.Status)
}
