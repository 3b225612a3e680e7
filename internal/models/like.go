package models

import "time"

// Like represents a like on any content entity. A user can like a given
// target at most once; the composite unique index is the concurrency guard
// for simultaneous toggles.
type Like struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_content_like"`
	ContentType TypeTag   `json:"content_type" gorm:"size:20;uniqueIndex:idx_user_content_like;index:idx_like_target"`
	ObjectID    string    `json:"object_id" gorm:"size:64;uniqueIndex:idx_user_content_like;index:idx_like_target"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToggleLikeRequest defines the request body for toggling a like
type ToggleLikeRequest struct {
	ContentType string `json:"content_type" validate:"required"`
	ObjectID    string `json:"object_id" validate:"required"`
}
