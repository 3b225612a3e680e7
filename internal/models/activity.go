package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityType classifies a ledger entry.
type ActivityType string

const (
	ActivityFollow       ActivityType = "follow"
	ActivityLike         ActivityType = "like"
	ActivityComment      ActivityType = "comment"
	ActivityShare        ActivityType = "share"
	ActivityVideoUpload  ActivityType = "video_upload"
	ActivityPlaceCreated ActivityType = "place_created"
)

// Activity is one entry of the per-recipient activity ledger (PostgreSQL).
// Entries are appended by interaction operations, mutated only to flip
// IsRead, and soft-deleted rather than removed.
type Activity struct {
	ID           uint              `json:"id" gorm:"primaryKey"`
	ActorID      uint              `json:"actor_id" gorm:"index"`
	TargetUserID uint              `json:"target_user_id" gorm:"index:idx_target_created,priority:1;index:idx_target_read,priority:1"`
	ActivityType ActivityType      `json:"activity_type" gorm:"size:20;index"`
	ContentType  TypeTag           `json:"content_type,omitempty" gorm:"size:20"`
	ObjectID     string            `json:"object_id,omitempty" gorm:"size:64"`
	ExtraData    datatypes.JSONMap `json:"extra_data,omitempty"`
	IsRead       bool              `json:"is_read" gorm:"default:false;index:idx_target_read,priority:2"`
	IsDeleted    bool              `json:"is_deleted" gorm:"default:false"`
	CreatedAt    time.Time         `json:"created_at" gorm:"index:idx_target_created,priority:2"`
}

// Ref returns the activity's content reference, or nil when the entry has
// no attached content (follow activities).
func (a *Activity) Ref() *ContentRef {
	if a.ContentType == "" || a.ObjectID == "" {
		return nil
	}
	return &ContentRef{ContentType: a.ContentType, ObjectID: a.ObjectID}
}

// ActivityStats aggregates a user's ledger for the stats endpoint
type ActivityStats struct {
	TotalActivities int64            `json:"total_activities"`
	UnreadCount     int64            `json:"unread_count"`
	ByType          map[string]int64 `json:"activities_by_type"`
}

// MarkReadRequest defines the request body for marking activities read.
// An empty id list marks everything read.
type MarkReadRequest struct {
	ActivityIDs []uint `json:"activity_ids"`
}

// FeedEntry is the display-ready projection of one activity
type FeedEntry struct {
	ID           uint              `json:"id"`
	Actor        UserCompact       `json:"actor"`
	ActivityType ActivityType      `json:"activity_type"`
	Content      *ResolvedContent  `json:"content_object_data"`
	Message      string            `json:"activity_message"`
	TimeAgo      string            `json:"time_ago"`
	IsRead       bool              `json:"is_read"`
	CreatedAt    time.Time         `json:"created_at"`
	ExtraData    datatypes.JSONMap `json:"extra_data,omitempty"`
}
