package model

import (
	"time"
)

// Link represents a short link entity
type Link struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	ShortCode   string     `json:"short_code" gorm:"type:varchar(32);uniqueIndex;not null"`
	OriginalURL string     `json:"original_url" gorm:"type:varchar(2048);not null"`
	OwnerID     int64      `json:"owner_id" gorm:"index;not null"`
	Active      bool       `json:"active" gorm:"default:true"`
	ExpiresAt   *time.Time `json:"expires_at" gorm:"index"`
	MaxClicks   *int64     `json:"max_clicks"`
	Visits      int64      `json:"visits" gorm:"default:0"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for Link
func (Link) TableName() string {
	return "links"
}

// Valid reports whether the link may redirect at the given instant.
// A link expiring exactly at now counts as expired, and a link whose
// visit count has reached its cap counts as exhausted regardless of
// the active flag.
func (l *Link) Valid(now time.Time) bool {
	if !l.Active {
		return false
	}
	if l.ExpiresAt != nil && !l.ExpiresAt.After(now) {
		return false
	}
	if l.Exhausted() {
		return false
	}
	return true
}

// Exhausted reports whether the max-click cap has been reached.
func (l *Link) Exhausted() bool {
	return l.MaxClicks != nil && l.Visits >= *l.MaxClicks
}

// CreateLinkRequest represents the request to create a short link
type CreateLinkRequest struct {
	URL       string `json:"url" binding:"required"`
	ShortCode string `json:"short_code"`
	ExpiresAt string `json:"expires_at"`
	MaxClicks *int64 `json:"max_clicks"`
}

// UpdateLinkRequest represents a partial update of link validity fields.
// Nil fields are left untouched.
type UpdateLinkRequest struct {
	Active    *bool   `json:"active"`
	ExpiresAt *string `json:"expires_at"`
	MaxClicks *int64  `json:"max_clicks"`
}

// LinkResponse represents the API response for a link
type LinkResponse struct {
	ID        int64      `json:"id"`
	ShortLink string     `json:"short_link"`
	ShortCode string     `json:"short_code"`
	URL       string     `json:"url"`
	Active    bool       `json:"active"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	MaxClicks *int64     `json:"max_clicks,omitempty"`
	Visits    int64      `json:"visits"`
	CreatedAt time.Time  `json:"created_at"`
}
