package service

import (
	"context"
	"errors"
	"time"

	"campportal/internal/model"
	"campportal/internal/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ErrInvalidCode is the single redemption failure the broker reports.
// Absent, expired and already-used codes are indistinguishable to the
// caller so the API leaks no enumeration signal.
var ErrInvalidCode = errors.New("invalid or expired code")

type BrokerServiceConfig struct {
	CodeExpiry    time.Duration
	SessionExpiry time.Duration
}

// BrokerService turns one-time link codes into bearer sessions and
// resolves tokens back to identities. All state lives in the store, the
// broker itself holds nothing.
type BrokerService struct {
	Config   BrokerServiceConfig
	Database *gorm.DB
}

func NewBrokerService(config BrokerServiceConfig, database *gorm.DB) *BrokerService {
	return &BrokerService{
		Config:   config,
		Database: database,
	}
}

// IssueCode mints a fresh link code for the given player, replacing any
// unused code they already had.
func (broker *BrokerService) IssueCode(ctx context.Context, userID int64, username string) (string, error) {
	code, err := utils.GenerateLinkCode()
	if err != nil {
		return "", err
	}

	err = broker.Database.WithContext(ctx).
		Where("user_id = ? AND used = ?", userID, false).
		Delete(&model.LinkCode{}).Error
	if err != nil {
		return "", err
	}

	now := time.Now()
	linkCode := model.LinkCode{
		Code:      code,
		UserID:    userID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(broker.Config.CodeExpiry),
	}

	err = broker.Database.WithContext(ctx).Create(&linkCode).Error
	if err != nil {
		return "", err
	}

	log.Info().Int64("userId", userID).Str("username", username).Msg("Issued link code")
	return code, nil
}

// Redeem exchanges a link code for a new session. The used flag is
// flipped with a conditional update so two concurrent redemptions of
// the same code cannot both succeed.
func (broker *BrokerService) Redeem(ctx context.Context, rawCode string) (model.Session, error) {
	code := utils.NormalizeCode(rawCode)
	if code == "" {
		return model.Session{}, ErrInvalidCode
	}

	// Housekeeping only, the conditional update below is what decides
	// redeemability.
	broker.purgeCodes(ctx)

	var linkCode model.LinkCode
	err := broker.Database.WithContext(ctx).First(&linkCode, "code = ?", code).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Warn().Str("code", code).Msg("Redemption failed, unknown code")
		return model.Session{}, ErrInvalidCode
	}

	if err != nil {
		return model.Session{}, err
	}

	now := time.Now()
	result := broker.Database.WithContext(ctx).
		Model(&model.LinkCode{}).
		Where("code = ? AND used = ? AND expires_at > ?", code, false, now).
		Update("used", true)

	if result.Error != nil {
		return model.Session{}, result.Error
	}

	// Zero rows means the code was expired or a concurrent redemption
	// won the race. Either way the caller gets the same answer.
	if result.RowsAffected == 0 {
		log.Warn().Str("code", code).Bool("used", linkCode.Used).Time("expiresAt", linkCode.ExpiresAt).Msg("Redemption failed, code used or expired")
		return model.Session{}, ErrInvalidCode
	}

	token, err := utils.GenerateSessionToken()
	if err != nil {
		return model.Session{}, err
	}

	session := model.Session{
		Token:     token,
		UserID:    linkCode.UserID,
		Username:  linkCode.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(broker.Config.SessionExpiry),
	}

	err = broker.Database.WithContext(ctx).Create(&session).Error
	if err != nil {
		return model.Session{}, err
	}

	log.Info().Int64("userId", session.UserID).Str("username", session.Username).Msg("Link code redeemed")
	return session, nil
}

// Validate resolves a bearer token to its session. Expired and unknown
// tokens are the same answer: nil session, nil error. Errors are only
// returned when the store itself fails.
func (broker *BrokerService) Validate(ctx context.Context, token string) (*model.Session, error) {
	if token == "" {
		return nil, nil
	}

	var session model.Session
	err := broker.Database.WithContext(ctx).First(&session, "token = ?", token).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	if session.Expired() {
		// Lazy eviction, the sweep would get it eventually anyway.
		broker.Database.WithContext(ctx).Delete(&session)
		return nil, nil
	}

	return &session, nil
}

// Revoke deletes the session for a token. Revoking an unknown or
// already revoked token is not an error.
func (broker *BrokerService) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	err := broker.Database.WithContext(ctx).
		Where("token = ?", token).
		Delete(&model.Session{}).Error
	if err != nil {
		return err
	}

	log.Debug().Msg("Session revoked")
	return nil
}

// CountActiveSessions reports how many sessions are currently valid.
func (broker *BrokerService) CountActiveSessions(ctx context.Context) (int64, error) {
	var count int64
	err := broker.Database.WithContext(ctx).
		Model(&model.Session{}).
		Where("expires_at > ?", time.Now()).
		Count(&count).Error
	return count, err
}

// Sweep garbage-collects used or expired codes and expired sessions.
func (broker *BrokerService) Sweep(ctx context.Context) {
	broker.purgeCodes(ctx)

	result := broker.Database.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&model.Session{})
	if result.Error != nil {
		log.Error().Err(result.Error).Msg("Failed to sweep expired sessions")
	} else if result.RowsAffected > 0 {
		log.Debug().Int64("sessions", result.RowsAffected).Msg("Swept expired sessions")
	}
}

func (broker *BrokerService) purgeCodes(ctx context.Context) {
	result := broker.Database.WithContext(ctx).
		Where("used = ? OR expires_at <= ?", true, time.Now()).
		Delete(&model.LinkCode{})
	if result.Error != nil {
		log.Error().Err(result.Error).Msg("Failed to purge link codes")
	} else if result.RowsAffected > 0 {
		log.Debug().Int64("codes", result.RowsAffected).Msg("Purged stale link codes")
	}
}
