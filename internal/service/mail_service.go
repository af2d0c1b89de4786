package service

import (
	"context"

	"campportal/internal/model"

	"gorm.io/gorm"
)

const mailListLimit = 50

// MailService reads and mutates a player's mailbox. Mutations filter by
// owner in the statement itself so a guessed mail id belonging to
// someone else affects zero rows.
type MailService struct {
	Database *gorm.DB
}

func NewMailService(database *gorm.DB) *MailService {
	return &MailService{
		Database: database,
	}
}

func (mail *MailService) List(ctx context.Context, userID int64) ([]model.Mail, error) {
	var messages []model.Mail
	err := mail.Database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(mailListLimit).
		Find(&messages).Error
	return messages, err
}

// MarkRead flips is_read for the given mail if it belongs to userID.
// Returns false when no owned row matched.
func (mail *MailService) MarkRead(ctx context.Context, mailID int64, userID int64) (bool, error) {
	result := mail.Database.WithContext(ctx).
		Model(&model.Mail{}).
		Where("mail_id = ? AND user_id = ?", mailID, userID).
		Update("is_read", true)
	return result.RowsAffected > 0, result.Error
}

// Delete removes the given mail if it belongs to userID. Returns false
// when no owned row matched.
func (mail *MailService) Delete(ctx context.Context, mailID int64, userID int64) (bool, error) {
	result := mail.Database.WithContext(ctx).
		Where("mail_id = ? AND user_id = ?", mailID, userID).
		Delete(&model.Mail{})
	return result.RowsAffected > 0, result.Error
}
