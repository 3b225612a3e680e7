package models

import "time"

// Comment represents a comment on any content entity. Comments form reply
// threads through ParentID and are soft-deleted, never physically removed.
type Comment struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"index"`
	ContentType TypeTag    `json:"content_type" gorm:"size:20;index:idx_comment_target"`
	ObjectID    string     `json:"object_id" gorm:"size:64;index:idx_comment_target"`
	Text        string     `json:"text" gorm:"size:500"`
	ParentID    *uint      `json:"parent_id,omitempty" gorm:"index"`
	IsEdited    bool       `json:"is_edited" gorm:"default:false"`
	EditedAt    *time.Time `json:"edited_at,omitempty"`
	IsDeleted   bool       `json:"is_deleted" gorm:"default:false;index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AddCommentRequest defines the request body for commenting on a content entity
type AddCommentRequest struct {
	ContentType string `json:"content_type" validate:"required"`
	ObjectID    string `json:"object_id" validate:"required"`
	Text        string `json:"text" validate:"required,max=500"`
	ParentID    *uint  `json:"parent_id,omitempty"`
}

// UpdateCommentRequest defines the request body for editing an existing comment
type UpdateCommentRequest struct {
	Text string `json:"text" validate:"required,max=500"`
}
