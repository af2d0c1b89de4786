package controller

import (
	"errors"
	"net/http"

	"campportal/internal/config"
	"campportal/internal/service"
	"campportal/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type LinkRequest struct {
	Code string `json:"code"`
}

type LinkResponse struct {
	Success       bool   `json:"success"`
	SessionToken  string `json:"session_token"`
	ExternalID    int64  `json:"external_id"`
	PrincipalName string `json:"principal_name"`
	ExpiresIn     int64  `json:"expires_in"`
}

type CheckResponse struct {
	Authenticated bool   `json:"authenticated"`
	ExternalID    int64  `json:"external_id,omitempty"`
	PrincipalName string `json:"principal_name,omitempty"`
}

type AuthController struct {
	router *gin.RouterGroup
	broker *service.BrokerService
}

func NewAuthController(router *gin.RouterGroup, broker *service.BrokerService) *AuthController {
	return &AuthController{
		router: router,
		broker: broker,
	}
}

func (controller *AuthController) SetupRoutes() {
	authGroup := controller.router.Group("/auth")
	authGroup.POST("/link", controller.linkHandler)
	authGroup.POST("/logout", controller.logoutHandler)
	authGroup.GET("/check", controller.checkHandler)
}

func (controller *AuthController) linkHandler(c *gin.Context) {
	var req LinkRequest

	err := c.ShouldBindJSON(&req)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if utils.NormalizeCode(req.Code) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No code provided"})
		return
	}

	session, err := controller.broker.Redeem(c.Request.Context(), req.Code)

	if errors.Is(err, service.ErrInvalidCode) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired code"})
		return
	}

	if err != nil {
		log.Error().Err(err).Msg("Failed to redeem link code")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
		return
	}

	c.JSON(http.StatusOK, LinkResponse{
		Success:       true,
		SessionToken:  session.Token,
		ExternalID:    session.UserID,
		PrincipalName: session.Username,
		ExpiresIn:     int64(config.SessionExpiry.Seconds()),
	})
}

// Logout never fails visibly, even with a bogus token or the store
// down.
func (controller *AuthController) logoutHandler(c *gin.Context) {
	token := c.GetHeader(config.SessionTokenHeader)

	if token != "" {
		err := controller.broker.Revoke(c.Request.Context(), token)
		if err != nil {
			log.Error().Err(err).Msg("Failed to revoke session")
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (controller *AuthController) checkHandler(c *gin.Context) {
	identity, err := utils.GetIdentity(c)

	if err != nil {
		// A missing identity means unauthenticated only when the store
		// actually answered.
		if utils.HasStoreError(c) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
			return
		}
		c.JSON(http.StatusOK, CheckResponse{Authenticated: false})
		return
	}

	c.JSON(http.StatusOK, CheckResponse{
		Authenticated: true,
		ExternalID:    identity.UserID,
		PrincipalName: identity.Username,
	})
}
