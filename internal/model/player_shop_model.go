package model

import "time"

type PlayerShop struct {
	ShopID    int64     `gorm:"column:shop_id;primaryKey;autoIncrement"`
	OwnerID   int64     `gorm:"column:owner_id;index"`
	ShopName  string    `gorm:"column:shop_name"`
	ShopType  string    `gorm:"column:shop_type"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (PlayerShop) TableName() string {
	return "player_shops"
}
