package repositories

import (
	"github.com/7aib/spots-backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	Create(like *models.Like) error
	Delete(userID uint, ref models.ContentRef) error
	Exists(userID uint, ref models.ContentRef) (bool, error)
	GetForContent(ref models.ContentRef) ([]models.Like, error)
	CountForContent(ref models.ContentRef) (int64, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// Create inserts a new like. The (user_id, content_type, object_id) unique
// index makes concurrent duplicates surface as gorm.ErrDuplicatedKey.
func (r *PostgresLikeRepository) Create(like *models.Like) error {
	return r.db.Create(like).Error
}

// Delete removes a user's like on a target. Returns gorm.ErrRecordNotFound
// when there was nothing to remove.
func (r *PostgresLikeRepository) Delete(userID uint, ref models.ContentRef) error {
	res := r.db.Where("user_id = ? AND content_type = ? AND object_id = ?",
		userID, ref.ContentType, ref.ObjectID).Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Exists checks whether a user has liked a target
func (r *PostgresLikeRepository) Exists(userID uint, ref models.ContentRef) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND content_type = ? AND object_id = ?", userID, ref.ContentType, ref.ObjectID).
		Count(&count).Error
	return count > 0, err
}

// GetForContent retrieves all likes on a target, newest first
func (r *PostgresLikeRepository) GetForContent(ref models.ContentRef) ([]models.Like, error) {
	var likes []models.Like
	err := r.db.Where("content_type = ? AND object_id = ?", ref.ContentType, ref.ObjectID).
		Order("created_at DESC").Find(&likes).Error
	return likes, err
}

// CountForContent counts the likes on a target
func (r *PostgresLikeRepository) CountForContent(ref models.ContentRef) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("content_type = ? AND object_id = ?", ref.ContentType, ref.ObjectID).
		Count(&count).Error
	return count, err
}
