package controller

import (
	"errors"
	"net/http"
	"time"

	"campportal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type CabinResponse struct {
	CabinID     int64  `json:"cabin_id"`
	CabinName   string `json:"cabin_name"`
	DivineFavor int64  `json:"divine_favor"`
}

type MinecraftLinkResponse struct {
	Username string `json:"username"`
	UUID     string `json:"uuid"`
}

type ShopResponse struct {
	ShopID   int64  `json:"shop_id"`
	ShopName string `json:"shop_name"`
	ShopType string `json:"shop_type"`
}

type ProfileResponse struct {
	UserID         int64                  `json:"user_id"`
	Username       string                 `json:"username"`
	Drachma        int64                  `json:"drachma"`
	GodParent      *string                `json:"god_parent"`
	Cabin          *CabinResponse         `json:"cabin"`
	InventoryCount int                    `json:"inventory_count"`
	UnreadMail     int64                  `json:"unread_mail"`
	MinecraftLink  *MinecraftLinkResponse `json:"minecraft_link"`
	Shop           *ShopResponse          `json:"shop"`
	CreatedAt      time.Time              `json:"created_at"`
}

type InventoryItemResponse struct {
	InventoryID int64     `json:"inventory_id"`
	ItemID      string    `json:"item_id"`
	Quantity    int64     `json:"quantity"`
	AcquiredAt  time.Time `json:"acquired_at"`
	Name        string    `json:"name"`
	Emoji       string    `json:"emoji"`
	Description string    `json:"description,omitempty"`
}

type TransactionResponse struct {
	TransactionID int64     `json:"transaction_id"`
	Amount        int64     `json:"amount"`
	Reason        string    `json:"reason"`
	CreatedAt     time.Time `json:"created_at"`
}

type PlayerController struct {
	router  *gin.RouterGroup
	players *service.PlayerService
	catalog *service.CatalogService
}

func NewPlayerController(router *gin.RouterGroup, players *service.PlayerService, catalog *service.CatalogService) *PlayerController {
	return &PlayerController{
		router:  router,
		players: players,
		catalog: catalog,
	}
}

func (controller *PlayerController) SetupRoutes() {
	playerGroup := controller.router.Group("/player")
	playerGroup.GET("/profile", controller.profileHandler)
	playerGroup.GET("/inventory", controller.inventoryHandler)
	playerGroup.GET("/transactions", controller.transactionsHandler)
}

func (controller *PlayerController) profileHandler(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	player, err := controller.players.GetPlayer(ctx, identity.UserID)

	if errors.Is(err, service.ErrPlayerNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}

	if err != nil {
		log.Error().Err(err).Msg("Failed to load player")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
		return
	}

	var cabin *CabinResponse

	if player.CabinID != nil {
		row, err := controller.players.GetCabin(ctx, *player.CabinID)
		if err != nil {
			log.Error().Err(err).Msg("Failed to load cabin")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
			return
		}
		if row != nil {
			cabin = &CabinResponse{
				CabinID:     row.CabinID,
				CabinName:   row.CabinName,
				DivineFavor: row.DivineFavor,
			}
		}
	}

	inventory, err := controller.players.GetInventory(ctx, identity.UserID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load inventory")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
		return
	}

	unread, err := controller.players.CountUnreadMail(ctx, identity.UserID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to count unread mail")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
		return
	}

	var minecraftLink *MinecraftLinkResponse

	link, err := controller.players.GetMinecraftLink(ctx, identity.UserID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load minecraft link")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
		return
	}
	if link != nil {
		minecraftLink = &MinecraftLinkResponse{
			Username: link.MinecraftUsername,
			UUID:     link.MinecraftUUID,
		}
	}

	var shop *ShopResponse

	shopRow, err := controller.players.GetShop(ctx, identity.UserID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load shop")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
		return
	}
	if shopRow != nil {
		shop = &ShopResponse{
			ShopID:   shopRow.ShopID,
			ShopName: shopRow.ShopName,
			ShopType: shopRow.ShopType,
		}
	}

	c.JSON(http.StatusOK, ProfileResponse{
		UserID:         player.UserID,
		Username:       player.Username,
		Drachma:        player.Drachma,
		GodParent:      player.GodParent,
		Cabin:          cabin,
		InventoryCount: len(inventory),
		UnreadMail:     unread,
		MinecraftLink:  minecraftLink,
		Shop:           shop,
		CreatedAt:      player.CreatedAt,
	})
}

func (controller *PlayerController) inventoryHandler(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	items, err := controller.players.GetInventory(c.Request.Context(), identity.UserID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load inventory")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
		return
	}

	inventory := make([]InventoryItemResponse, 0, len(items))

	for _, item := range items {
		info := controller.catalog.Item(item.ItemID)
		inventory = append(inventory, InventoryItemResponse{
			InventoryID: item.InventoryID,
			ItemID:      item.ItemID,
			Quantity:    item.Quantity,
			AcquiredAt:  item.AcquiredAt,
			Name:        info.Name,
			Emoji:       info.Emoji,
			Description: info.Description,
		})
	}

	c.JSON(http.StatusOK, gin.H{"inventory": inventory})
}

func (controller *PlayerController) transactionsHandler(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	rows, err := controller.players.GetTransactions(c.Request.Context(), identity.UserID, queryLimit(c))
	if err != nil {
		log.Error().Err(err).Msg("Failed to load transactions")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
		return
	}

	transactions := make([]TransactionResponse, 0, len(rows))

	for _, row := range rows {
		transactions = append(transactions, TransactionResponse{
			TransactionID: row.TransactionID,
			Amount:        row.Amount,
			Reason:        row.Reason,
			CreatedAt:     row.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}
