package repositories

import (
	"github.com/7aib/spots-backend/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	Create(follow *models.Follow) error
	Delete(followerID, followingID uint) error
	IsFollowing(followerID, followingID uint) (bool, error)
	ListFollowing(userID uint) ([]models.Follow, error)
	ListFollowers(userID uint) ([]models.Follow, error)
	CountFollowers(userID uint) (int64, error)
	CountFollowing(userID uint) (int64, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// Create inserts a follow edge. The (follower_id, following_id) unique index
// makes a duplicate edge surface as gorm.ErrDuplicatedKey.
func (r *PostgresFollowRepository) Create(follow *models.Follow) error {
	return r.db.Create(follow).Error
}

// Delete removes a follow edge. Returns gorm.ErrRecordNotFound when no such
// edge exists.
func (r *PostgresFollowRepository) Delete(followerID, followingID uint) error {
	res := r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IsFollowing checks whether a follow edge exists
func (r *PostgresFollowRepository) IsFollowing(followerID, followingID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

// ListFollowing retrieves the users a user follows, newest edge first
func (r *PostgresFollowRepository) ListFollowing(userID uint) ([]models.Follow, error) {
	var follows []models.Follow
	err := r.db.Preload("Follower").Preload("Following").
		Where("follower_id = ?", userID).
		Order("created_at DESC").Find(&follows).Error
	return follows, err
}

// ListFollowers retrieves the users following a user, newest edge first
func (r *PostgresFollowRepository) ListFollowers(userID uint) ([]models.Follow, error) {
	var follows []models.Follow
	err := r.db.Preload("Follower").Preload("Following").
		Where("following_id = ?", userID).
		Order("created_at DESC").Find(&follows).Error
	return follows, err
}

// CountFollowers counts a user's followers
func (r *PostgresFollowRepository) CountFollowers(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("following_id = ?", userID).Count(&count).Error
	return count, err
}

// CountFollowing counts the users a user follows
func (r *PostgresFollowRepository) CountFollowing(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}
