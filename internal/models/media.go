package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Media type values
const (
	MediaTypePhoto = "photo"
	MediaTypeVideo = "video"
)

// Media is a photo or video document stored in MongoDB. File bytes live in
// external storage; only the URLs are recorded here.
type Media struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title        string             `json:"title,omitempty" bson:"title,omitempty"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	FileURL      string             `json:"file_url" bson:"file_url"`
	ThumbnailURL string             `json:"thumbnail_url,omitempty" bson:"thumbnail_url,omitempty"`
	MediaType    string             `json:"media_type" bson:"media_type"` // "photo" or "video"
	PlaceID      uint               `json:"place_id,omitempty" bson:"place_id,omitempty"`
	UploadedByID uint               `json:"uploaded_by" bson:"uploaded_by_id"`
	IsPublic     bool               `json:"is_public" bson:"is_public"`
	IsDeleted    bool               `json:"-" bson:"is_deleted"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// DisplayTitle returns the media title, or a generic fallback for untitled items.
func (m *Media) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	return m.MediaType + " " + m.ID.Hex()
}

// CreateMediaRequest defines the request body for registering uploaded media
type CreateMediaRequest struct {
	Title        string `json:"title,omitempty" validate:"omitempty,max=255"`
	Description  string `json:"description,omitempty"`
	FileURL      string `json:"file_url" validate:"required,url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
	MediaType    string `json:"media_type" validate:"required,oneof=photo video"`
	PlaceID      uint   `json:"place_id,omitempty"`
	IsPublic     *bool  `json:"is_public,omitempty"`
}

// UpdateMediaRequest defines the request body for updating media details
type UpdateMediaRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
	IsPublic    *bool   `json:"is_public,omitempty"`
}
