package controller

import (
	"net/http"
	"strconv"
	"time"

	"campportal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type MailResponse struct {
	MailID    int64     `json:"mail_id"`
	Sender    string    `json:"sender"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type MailController struct {
	router *gin.RouterGroup
	mail   *service.MailService
}

func NewMailController(router *gin.RouterGroup, mail *service.MailService) *MailController {
	return &MailController{
		router: router,
		mail:   mail,
	}
}

func (controller *MailController) SetupRoutes() {
	mailGroup := controller.router.Group("/mail")
	mailGroup.GET("", controller.listHandler)
	mailGroup.POST("/read/:id", controller.readHandler)
	mailGroup.DELETE("/:id", controller.deleteHandler)
}

func (controller *MailController) listHandler(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	messages, err := controller.mail.List(c.Request.Context(), identity.UserID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load mail")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
		return
	}

	mail := make([]MailResponse, 0, len(messages))

	for _, message := range messages {
		mail = append(mail, MailResponse{
			MailID:    message.MailID,
			Sender:    message.Sender,
			Subject:   message.Subject,
			Body:      message.Body,
			IsRead:    message.IsRead,
			CreatedAt: message.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"mail": mail})
}

func (controller *MailController) readHandler(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	mailID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mail id"})
		return
	}

	updated, err := controller.mail.MarkRead(c.Request.Context(), mailID, identity.UserID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to mark mail read")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
		return
	}

	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Mail not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (controller *MailController) deleteHandler(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	mailID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mail id"})
		return
	}

	deleted, err := controller.mail.Delete(c.Request.Context(), mailID, identity.UserID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to delete mail")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Mail not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
