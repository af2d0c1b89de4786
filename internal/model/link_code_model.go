package model

import "time"

// LinkCode is a one-time credential minted by the bot for a known player.
// At most one unused, unexpired code exists per user at any time.
type LinkCode struct {
	Code      string    `gorm:"column:code;primaryKey"`
	UserID    int64     `gorm:"column:user_id;index"`
	Username  string    `gorm:"column:username"`
	CreatedAt time.Time `gorm:"column:created_at"`
	ExpiresAt time.Time `gorm:"column:expires_at"`
	Used      bool      `gorm:"column:used"`
}

func (LinkCode) TableName() string {
	return "link_codes"
}

func (c *LinkCode) Expired() bool {
	return time.Now().After(c.ExpiresAt)
}
