package mq

import (
	"time"
)

// ClickEventMessage represents a click event message
type ClickEventMessage struct {
	EventID   string    `json:"event_id"`
	ShortCode string    `json:"short_code"`
	ClientIP  string    `json:"client_ip"`
	UserAgent string    `json:"user_agent"`
	Referer   string    `json:"referer"`
	ClickedAt time.Time `json:"clicked_at"`
}
