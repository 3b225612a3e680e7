package models

import "time"

// Follow represents a directed follow relationship between two users
type Follow struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  uint      `json:"-" gorm:"index;uniqueIndex:idx_follower_following"`
	FollowingID uint      `json:"-" gorm:"index;uniqueIndex:idx_follower_following"`
	Follower    User      `json:"follower" gorm:"foreignKey:FollowerID"`
	Following   User      `json:"following" gorm:"foreignKey:FollowingID"`
	CreatedAt   time.Time `json:"created_at"`
}
