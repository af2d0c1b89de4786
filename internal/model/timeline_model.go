package model

import "time"

type TimelineEntry struct {
	EntryID     int64     `gorm:"column:entry_id;primaryKey;autoIncrement"`
	Category    string    `gorm:"column:category;index"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	EventDate   time.Time `gorm:"column:event_date;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (TimelineEntry) TableName() string {
	return "timeline"
}
