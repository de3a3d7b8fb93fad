package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"loungeadvisor-service/internal/domain/entity"
	"loungeadvisor-service/internal/domain/repository"
	"loungeadvisor-service/pkg/errs"
	"loungeadvisor-service/pkg/logger"
)

// CatalogHandler serves the reference data behind the recommendation core:
// lounge catalogs per airport and traveler profiles.
type CatalogHandler struct {
	lounges repository.LoungeRepository
	users   repository.UserRepository
	logger  logger.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(lounges repository.LoungeRepository, users repository.UserRepository, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		lounges: lounges,
		users:   users,
		logger:  logger,
	}
}

// SetupRoutes registers handler routes to the router
func (h *CatalogHandler) SetupRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/lounges/:airport", h.getLounges)
		api.GET("/users/:id", h.getUser)
	}
}

func (h *CatalogHandler) getLounges(c *gin.Context) {
	airport := strings.ToUpper(strings.TrimSpace(c.Param("airport")))
	if len(airport) != 3 {
		writeEnvelope(c, entity.Failure(string(errs.KindValidation), "airport must be a 3-letter IATA code"))
		return
	}

	catalog, err := h.lounges.GetLoungesWithAccessRules(c.Request.Context(), airport)
	if err != nil {
		h.logger.Error("Failed to load lounge catalog", "airport", airport, "error", err)
		writeEnvelope(c, entity.Failure(string(errs.KindOf(err)), "failed to load lounge catalog"))
		return
	}
	if catalog == nil || len(catalog.Lounges) == 0 {
		writeEnvelope(c, entity.NotFound("no lounges found for airport "+airport))
		return
	}

	writeEnvelope(c, entity.Success(catalog))
}

func (h *CatalogHandler) getUser(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		writeEnvelope(c, entity.Failure(string(errs.KindValidation), "user id is required"))
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load user profile", "userId", id, "error", err)
		writeEnvelope(c, entity.Failure(string(errs.KindOf(err)), "failed to load user profile"))
		return
	}
	if user == nil {
		writeEnvelope(c, entity.NotFound("user not found"))
		return
	}

	writeEnvelope(c, entity.Success(user))
}
