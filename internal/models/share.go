package models

import "time"

// SharePlatform is the destination a share was broadcast to.
type SharePlatform string

const (
	PlatformFacebook  SharePlatform = "facebook"
	PlatformTwitter   SharePlatform = "twitter"
	PlatformInstagram SharePlatform = "instagram"
	PlatformWhatsApp  SharePlatform = "whatsapp"
	PlatformTelegram  SharePlatform = "telegram"
	PlatformCopyLink  SharePlatform = "copy_link"
	PlatformOther     SharePlatform = "other"
)

// Valid reports whether p is a known share platform.
func (p SharePlatform) Valid() bool {
	switch p {
	case PlatformFacebook, PlatformTwitter, PlatformInstagram,
		PlatformWhatsApp, PlatformTelegram, PlatformCopyLink, PlatformOther:
		return true
	}
	return false
}

// Share represents a share of a content entity to an external platform.
// Shares are repeatable broadcast events, so there is no uniqueness
// constraint per user and target.
type Share struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	UserID      uint          `json:"user_id" gorm:"index"`
	ContentType TypeTag       `json:"content_type" gorm:"size:20;index:idx_share_target"`
	ObjectID    string        `json:"object_id" gorm:"size:64;index:idx_share_target"`
	Platform    SharePlatform `json:"platform" gorm:"size:20;default:'other';index"`
	Message     string        `json:"message" gorm:"size:200"`
	CreatedAt   time.Time     `json:"created_at"`
}

// CreateShareRequest defines the request body for sharing a content entity
type CreateShareRequest struct {
	ContentType string `json:"content_type" validate:"required"`
	ObjectID    string `json:"object_id" validate:"required"`
	Platform    string `json:"platform" validate:"required,oneof=facebook twitter instagram whatsapp telegram copy_link other"`
	Message     string `json:"message,omitempty" validate:"omitempty,max=200"`
}
