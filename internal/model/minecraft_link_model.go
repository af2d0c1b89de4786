package model

import "time"

// MinecraftLink ties a player to their Minecraft account. At most one
// link exists per player; the bot creates and removes them.
type MinecraftLink struct {
	UserID            int64     `gorm:"column:user_id;primaryKey"`
	MinecraftUsername string    `gorm:"column:minecraft_username"`
	MinecraftUUID     string    `gorm:"column:minecraft_uuid"`
	CreatedAt         time.Time `gorm:"column:created_at"`
}

func (MinecraftLink) TableName() string {
	return "minecraft_links"
}
