package service

import (
	"context"
	"errors"

	"campportal/internal/model"

	"gorm.io/gorm"
)

// ErrPlayerNotFound is returned when an authenticated identity has no
// player row yet (the bot creates those).
var ErrPlayerNotFound = errors.New("player not found")

const transactionsDefaultLimit = 20
const transactionsMaxLimit = 100

// PlayerService reads player-owned data. Every query is keyed by the
// caller's identity, there is no way to address another player's rows.
type PlayerService struct {
	Database *gorm.DB
}

func NewPlayerService(database *gorm.DB) *PlayerService {
	return &PlayerService{
		Database: database,
	}
}

func (players *PlayerService) GetPlayer(ctx context.Context, userID int64) (model.Player, error) {
	var player model.Player
	err := players.Database.WithContext(ctx).First(&player, "user_id = ?", userID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Player{}, ErrPlayerNotFound
	}

	return player, err
}

func (players *PlayerService) GetCabin(ctx context.Context, cabinID int64) (*model.Cabin, error) {
	var cabin model.Cabin
	err := players.Database.WithContext(ctx).First(&cabin, "cabin_id = ?", cabinID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &cabin, nil
}

// GetMinecraftLink returns the player's Minecraft link, or nil when
// none exists.
func (players *PlayerService) GetMinecraftLink(ctx context.Context, userID int64) (*model.MinecraftLink, error) {
	var link model.MinecraftLink
	err := players.Database.WithContext(ctx).First(&link, "user_id = ?", userID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &link, nil
}

// GetShop returns the shop owned by the player, or nil when they have
// none.
func (players *PlayerService) GetShop(ctx context.Context, userID int64) (*model.PlayerShop, error) {
	var shop model.PlayerShop
	err := players.Database.WithContext(ctx).First(&shop, "owner_id = ?", userID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &shop, nil
}

func (players *PlayerService) GetInventory(ctx context.Context, userID int64) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := players.Database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("acquired_at DESC").
		Find(&items).Error
	return items, err
}

func (players *PlayerService) CountUnreadMail(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := players.Database.WithContext(ctx).
		Model(&model.Mail{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (players *PlayerService) GetTransactions(ctx context.Context, userID int64, limit int) ([]model.Transaction, error) {
	if limit <= 0 {
		limit = transactionsDefaultLimit
	}
	if limit > transactionsMaxLimit {
		limit = transactionsMaxLimit
	}

	var transactions []model.Transaction
	err := players.Database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions).Error
	return transactions, err
}
