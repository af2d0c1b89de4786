package model

import "time"

type Transaction struct {
	TransactionID int64     `gorm:"column:transaction_id;primaryKey;autoIncrement"`
	UserID        int64     `gorm:"column:user_id;index"`
	Amount        int64     `gorm:"column:amount"`
	Reason        string    `gorm:"column:reason"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
