package controller

import (
	"net/http"

	"campportal/internal/config"
	"campportal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type HealthControllerConfig struct {
	InstanceID string
}

type HealthController struct {
	config HealthControllerConfig
	router *gin.RouterGroup
	broker *service.BrokerService
}

func NewHealthController(config HealthControllerConfig, router *gin.RouterGroup, broker *service.BrokerService) *HealthController {
	return &HealthController{
		config: config,
		router: router,
		broker: broker,
	}
}

func (controller *HealthController) SetupRoutes() {
	controller.router.GET("/health", controller.healthHandler)
	controller.router.HEAD("/health", controller.healthHandler)
	controller.router.GET("/status", controller.statusHandler)
}

func (controller *HealthController) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "connected",
	})
}

func (controller *HealthController) statusHandler(c *gin.Context) {
	database := "connected"

	sessions, err := controller.broker.CountActiveSessions(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to count sessions")
		database = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"portal":          "online",
		"version":         config.Version,
		"instance":        controller.config.InstanceID,
		"database":        database,
		"active_sessions": sessions,
	})
}
