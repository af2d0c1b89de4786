package service

import (
	"context"

	"campportal/internal/model"

	"gorm.io/gorm"
)

const (
	leaderboardDefaultLimit = 10
	leaderboardMaxLimit     = 20
	timelineDefaultLimit    = 20
	timelineMaxLimit        = 50
)

// PublicService serves the unauthenticated read-only views.
type PublicService struct {
	Database *gorm.DB
}

func NewPublicService(database *gorm.DB) *PublicService {
	return &PublicService{
		Database: database,
	}
}

func (public *PublicService) Leaderboard(ctx context.Context, limit int) ([]model.Player, error) {
	if limit <= 0 {
		limit = leaderboardDefaultLimit
	}
	if limit > leaderboardMaxLimit {
		limit = leaderboardMaxLimit
	}

	var players []model.Player
	err := public.Database.WithContext(ctx).
		Order("drachma DESC").
		Limit(limit).
		Find(&players).Error
	return players, err
}

func (public *PublicService) Timeline(ctx context.Context, limit int, category string) ([]model.TimelineEntry, error) {
	if limit <= 0 {
		limit = timelineDefaultLimit
	}
	if limit > timelineMaxLimit {
		limit = timelineMaxLimit
	}

	query := public.Database.WithContext(ctx).Order("event_date DESC").Limit(limit)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var entries []model.TimelineEntry
	err := query.Find(&entries).Error
	return entries, err
}
