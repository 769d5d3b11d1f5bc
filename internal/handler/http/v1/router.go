package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для вызовов и владения
	emergencies := api.Group("/emergencies")
	emergencies.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		emergencies.POST("", h.createEmergency)
		emergencies.GET("/nearby", h.findNearby)
		emergencies.GET("/:id", h.getEmergency)
		emergencies.POST("/:id/claim", h.claimEmergency)
		emergencies.GET("/:id/timeline", h.getTimeline)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
