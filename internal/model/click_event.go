package model

import (
	"time"
)

// ClickEvent represents a single recorded redirect
type ClickEvent struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	EventID   string    `json:"event_id" gorm:"type:varchar(36);uniqueIndex"`
	ShortCode string    `json:"short_code" gorm:"type:varchar(32);index;not null"`
	ClientIP  string    `json:"client_ip" gorm:"type:varchar(64)"`
	UserAgent string    `json:"user_agent" gorm:"type:varchar(512)"`
	Referer   string    `json:"referer" gorm:"type:varchar(512)"`
	ClickedAt time.Time `json:"clicked_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for ClickEvent
func (ClickEvent) TableName() string {
	return "click_events"
}
