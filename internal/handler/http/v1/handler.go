package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	emergencyService service.EmergencyService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(emergencyService service.EmergencyService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		emergencyService: emergencyService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Report a new emergency
// @Description Register a new emergency. It starts in PENDING_OWNERSHIP with a fixed decision deadline. Requires API key.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param emergency body CreateEmergencyRequest true "Emergency creation request"
// @Success 201 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies [post]
func (h *Handler) createEmergency(c *gin.Context) {
	var input CreateEmergencyRequest
	log := h.logger.WithField("method", "createEmergency")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToEmergencyModel(input)
	if err := h.emergencyService.CreateEmergency(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create emergency in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToEmergencyResponse(model))
}

// @Summary Get emergency by ID
// @Description Get a single emergency by its ID. Owner view, includes contact fields. Requires API key.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Emergency ID"
// @Success 200 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid emergency ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Emergency not found"
// @Router /emergencies/{id} [get]
func (h *Handler) getEmergency(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid emergency ID"})
		return
	}
	log := h.logger.WithField("method", "getEmergency").WithField("id", id)

	emergency, err := h.emergencyService.GetEmergency(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get emergency from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "emergency not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyResponse(emergency))
}

// @Summary Claim emergency ownership
// @Description Explicitly decide who the emergency is for while the decision window is open. A stale claim is rejected with 409. Requires API key.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Emergency ID"
// @Param X-User-ID header string true "Acting user ID"
// @Param claim body ClaimEmergencyRequest true "Claim request"
// @Success 200 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid emergency ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Emergency not found"
// @Failure 409 {object} map[string]string "Emergency already left pending ownership"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/{id}/claim [post]
func (h *Handler) claimEmergency(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid emergency ID"})
		return
	}
	log := h.logger.WithField("method", "claimEmergency").WithField("id", id)

	// Личность уже разрешена внешним слоем аутентификации,
	// сюда приходит готовый идентификатор
	actorID := c.GetHeader("X-User-ID")
	if actorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-ID header required"})
		return
	}

	var input ClaimEmergencyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	emergency, err := h.emergencyService.Claim(c.Request.Context(), id, models.EmergencyFor(input.EmergencyFor), actorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStaleDecision):
			log.Warn("Stale claim rejected")
			c.JSON(http.StatusConflict, gin.H{"error": "emergency already left pending ownership"})
		case errors.Is(err, service.ErrEmergencyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "emergency not found"})
		case errors.Is(err, service.ErrInvalidEmergencyFor):
			c.JSON(http.StatusBadRequest, gin.H{"error": "emergency_for must be SELF or OTHER"})
		default:
			log.WithError(err).Error("Failed to claim emergency in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, ModelToEmergencyResponse(emergency))
}

// @Summary Find nearby emergencies
// @Description Find unresolved emergencies within radius_km of a point, ordered by distance. The response never contains phone, address or full victim name. Requires API key.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number true "Origin latitude"
// @Param lon query number true "Origin longitude"
// @Param radius_km query number true "Search radius in kilometers (inclusive boundary)"
// @Param exclude_id query string false "Emergency ID to exclude from results"
// @Success 200 {array} NearbyEmergencyResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/nearby [get]
func (h *Handler) findNearby(c *gin.Context) {
	log := h.logger.WithField("method", "findNearby")

	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lat parameter"})
		return
	}

	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lon parameter"})
		return
	}

	radiusKm, err := strconv.ParseFloat(c.Query("radius_km"), 64)
	if err != nil || radiusKm < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius_km parameter"})
		return
	}

	var excludeID *uuid.UUID
	if raw := c.Query("exclude_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exclude_id parameter"})
			return
		}
		excludeID = &parsed
	}

	nearby, err := h.emergencyService.FindNearby(c.Request.Context(), lat, lon, radiusKm, excludeID)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby emergencies in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToNearbyResponses(nearby))
}

// @Summary Get emergency assignment timeline
// @Description Get the append-only assignment events of an emergency, ascending by occurred_at. Requires API key.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Emergency ID"
// @Success 200 {array} TimelineEventResponse
// @Failure 400 {object} map[string]string "Invalid emergency ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/{id}/timeline [get]
func (h *Handler) getTimeline(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid emergency ID"})
		return
	}
	log := h.logger.WithField("method", "getTimeline").WithField("id", id)

	events, err := h.emergencyService.ListTimeline(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to list timeline in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToTimelineResponses(events))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
