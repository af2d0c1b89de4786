package controller

import (
	"net/http"
	"time"

	"campportal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type LeaderboardEntryResponse struct {
	Username  string  `json:"username"`
	Drachma   int64   `json:"drachma"`
	GodParent *string `json:"god_parent"`
}

type TimelineEntryResponse struct {
	EntryID     int64     `json:"entry_id"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
	CreatedAt   time.Time `json:"created_at"`
}

type PublicController struct {
	router  *gin.RouterGroup
	public  *service.PublicService
	catalog *service.CatalogService
}

func NewPublicController(router *gin.RouterGroup, public *service.PublicService, catalog *service.CatalogService) *PublicController {
	return &PublicController{
		router:  router,
		public:  public,
		catalog: catalog,
	}
}

func (controller *PublicController) SetupRoutes() {
	publicGroup := controller.router.Group("/public")
	publicGroup.GET("/gods", controller.godsHandler)
	publicGroup.GET("/leaderboard", controller.leaderboardHandler)
	publicGroup.GET("/timeline", controller.timelineHandler)
}

func (controller *PublicController) godsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"gods": controller.catalog.Gods()})
}

func (controller *PublicController) leaderboardHandler(c *gin.Context) {
	players, err := controller.public.Leaderboard(c.Request.Context(), queryLimit(c))
	if err != nil {
		log.Error().Err(err).Msg("Failed to load leaderboard")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
		return
	}

	leaderboard := make([]LeaderboardEntryResponse, 0, len(players))

	for _, player := range players {
		leaderboard = append(leaderboard, LeaderboardEntryResponse{
			Username:  player.Username,
			Drachma:   player.Drachma,
			GodParent: player.GodParent,
		})
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": leaderboard})
}

func (controller *PublicController) timelineHandler(c *gin.Context) {
	rows, err := controller.public.Timeline(c.Request.Context(), queryLimit(c), c.Query("category"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to load timeline")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
		return
	}

	entries := make([]TimelineEntryResponse, 0, len(rows))

	for _, row := range rows {
		entries = append(entries, TimelineEntryResponse{
			EntryID:     row.EntryID,
			Category:    row.Category,
			Title:       row.Title,
			Description: row.Description,
			EventDate:   row.EventDate,
			CreatedAt:   row.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
