package controller

import (
	"crypto/subtle"
	"net/http"

	"campportal/internal/config"
	"campportal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type IssueCodeRequest struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type IssueCodeResponse struct {
	Code      string `json:"code"`
	ExpiresIn int64  `json:"expires_in"`
}

type BotControllerConfig struct {
	BotKey string
}

// BotController is the issuer's interface: the game bot calls it to
// mint a link code when a player asks to log into the portal.
type BotController struct {
	config BotControllerConfig
	router *gin.RouterGroup
	broker *service.BrokerService
}

func NewBotController(config BotControllerConfig, router *gin.RouterGroup, broker *service.BrokerService) *BotController {
	return &BotController{
		config: config,
		router: router,
		broker: broker,
	}
}

func (controller *BotController) SetupRoutes() {
	botGroup := controller.router.Group("/bot")
	botGroup.POST("/link-code", controller.issueCodeHandler)
}

func (controller *BotController) issueCodeHandler(c *gin.Context) {
	key := c.GetHeader(config.BotKeyHeader)

	if subtle.ConstantTimeCompare([]byte(key), []byte(controller.config.BotKey)) != 1 {
		log.Warn().Str("clientIp", c.ClientIP()).Msg("Rejected link code issuance, bad bot key")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req IssueCodeRequest

	err := c.ShouldBindJSON(&req)
	if err != nil || req.UserID <= 0 || req.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	code, err := controller.broker.IssueCode(c.Request.Context(), req.UserID, req.Username)

	if err != nil {
		log.Error().Err(err).Msg("Failed to issue link code")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
		return
	}

	c.JSON(http.StatusOK, IssueCodeResponse{
		Code:      code,
		ExpiresIn: int64(config.CodeExpiry.Seconds()),
	})
}
