package model

import "time"

type InventoryItem struct {
	InventoryID int64     `gorm:"column:inventory_id;primaryKey;autoIncrement"`
	UserID      int64     `gorm:"column:user_id;index"`
	ItemID      string    `gorm:"column:item_id"`
	Quantity    int64     `gorm:"column:quantity;default:1"`
	AcquiredAt  time.Time `gorm:"column:acquired_at"`
}

func (InventoryItem) TableName() string {
	return "inventory"
}
