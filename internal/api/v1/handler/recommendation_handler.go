package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"loungeadvisor-service/internal/domain/entity"
	"loungeadvisor-service/pkg/errs"
	"loungeadvisor-service/pkg/logger"
)

// RecommendationService is the flight-aware recommendation operation
type RecommendationService interface {
	GetFlightAwareRecommendations(ctx context.Context, req entity.RecommendationRequest) *entity.Envelope
	SearchFlights(ctx context.Context, query entity.FlightSearchQuery) *entity.Envelope
}

// LayoverService is the layover planning operation
type LayoverService interface {
	PlanLayoverStrategy(ctx context.Context, req entity.LayoverPlanRequest) *entity.Envelope
}

// RecommendationHandler exposes the recommendation core over HTTP
type RecommendationHandler struct {
	recommendations RecommendationService
	layovers        LayoverService
	logger          logger.Logger
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(recommendations RecommendationService, layovers LayoverService, logger logger.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recommendations: recommendations,
		layovers:        layovers,
		logger:          logger,
	}
}

// SetupRoutes registers handler routes to the router
func (h *RecommendationHandler) SetupRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.POST("/recommendations/flight", h.flightRecommendations)
		api.POST("/recommendations/layover", h.layoverPlan)
		api.POST("/flights/search", h.searchFlights)
	}
}

func (h *RecommendationHandler) flightRecommendations(c *gin.Context) {
	var req entity.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeEnvelope(c, entity.Failure(string(errs.KindValidation), "malformed request body"))
		return
	}
	if req.FlightIdentifier == "" || req.Date == "" {
		writeEnvelope(c, entity.Failure(string(errs.KindValidation), "flightIdentifier and date are required"))
		return
	}

	writeEnvelope(c, h.recommendations.GetFlightAwareRecommendations(c.Request.Context(), req))
}

func (h *RecommendationHandler) layoverPlan(c *gin.Context) {
	var req entity.LayoverPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeEnvelope(c, entity.Failure(string(errs.KindValidation), "malformed request body"))
		return
	}

	writeEnvelope(c, h.layovers.PlanLayoverStrategy(c.Request.Context(), req))
}

func (h *RecommendationHandler) searchFlights(c *gin.Context) {
	var query entity.FlightSearchQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		writeEnvelope(c, entity.Failure(string(errs.KindValidation), "malformed request body"))
		return
	}

	writeEnvelope(c, h.recommendations.SearchFlights(c.Request.Context(), query))
}

// writeEnvelope maps the envelope onto an HTTP status. NotFound is a valid
// no-data outcome, not an HTTP error.
func writeEnvelope(c *gin.Context, envelope *entity.Envelope) {
	c.JSON(httpStatus(envelope), envelope)
}

func httpStatus(envelope *entity.Envelope) int {
	if envelope.Status != entity.StatusError {
		return http.StatusOK
	}
	if envelope.Error == nil {
		return http.StatusInternalServerError
	}
	switch errs.Kind(envelope.Error.Kind) {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindAuth, errs.KindProvider:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
