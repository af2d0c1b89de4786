package model

import "time"

// Player rows are owned by the bot, the portal only reads them.
type Player struct {
	UserID    int64     `gorm:"column:user_id;primaryKey"`
	Username  string    `gorm:"column:username"`
	Drachma   int64     `gorm:"column:drachma"`
	GodParent *string   `gorm:"column:god_parent"`
	CabinID   *int64    `gorm:"column:cabin_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Player) TableName() string {
	return "players"
}

type Cabin struct {
	CabinID     int64  `gorm:"column:cabin_id;primaryKey"`
	CabinName   string `gorm:"column:cabin_name"`
	DivineFavor int64  `gorm:"column:divine_favor"`
}

func (Cabin) TableName() string {
	return "cabins"
}
