package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is an account row in PostgreSQL
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Username    string    `json:"username" gorm:"size:150;uniqueIndex"`
	Email       string    `json:"email" gorm:"uniqueIndex"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Password    string    `json:"-"` // bcrypt hash, never serialized
	FirebaseUID string    `json:"firebase_uid,omitempty" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserCompact is the actor shape embedded in feed entries and lists
type UserCompact struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AvatarURL string `json:"profile_picture_url,omitempty"`
}

// ToCompact converts a User to its compact representation
func (u *User) ToCompact(avatarURL string) UserCompact {
	return UserCompact{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: avatarURL,
	}
}

// UserProfile carries the public profile attached to a user
type UserProfile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex"`
	Bio       string    `json:"bio" gorm:"size:300"`
	AvatarURL string    `json:"profile_picture_url"`
	CityID    *uint     `json:"city_id,omitempty"`
	IsDeleted bool      `json:"-" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterRequest defines the request body for local registration
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=150"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName  string `json:"last_name,omitempty" validate:"omitempty,max=150"`
	Password  string `json:"password" validate:"required,min=8"`
}

// LoginRequest defines the request body for username/password login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// FirebaseLoginRequest defines the request body for Firebase token exchange
type FirebaseLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// UpdateProfileRequest defines the request body for updating one's profile
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=300"`
	AvatarURL *string `json:"profile_picture_url,omitempty" validate:"omitempty,url"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
