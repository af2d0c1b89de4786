package model

import "time"

// Mail is always filtered by user_id at the store level, never only in
// the handler, so knowing another player's mail id is not enough to
// read or change it.
type Mail struct {
	MailID    int64     `gorm:"column:mail_id;primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:user_id;index"`
	Sender    string    `gorm:"column:sender"`
	Subject   string    `gorm:"column:subject"`
	Body      string    `gorm:"column:body"`
	IsRead    bool      `gorm:"column:is_read"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Mail) TableName() string {
	return "mail"
}
