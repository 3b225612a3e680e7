package repositories

import (
	"time"

	"github.com/7aib/spots-backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	GetForContent(ref models.ContentRef) ([]models.Comment, error)
	GetReplies(parentID uint) ([]models.Comment, error)
	Update(comment *models.Comment) error
	SoftDelete(id uint) error
	CountForContent(ref models.ContentRef) (int64, error)
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// Create inserts a new comment
func (r *PostgresCommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID retrieves a comment by id, including soft-deleted rows; callers
// decide how a deleted comment is treated.
func (r *PostgresCommentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetForContent retrieves the non-deleted comments on a target, newest first
func (r *PostgresCommentRepository) GetForContent(ref models.ContentRef) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("content_type = ? AND object_id = ? AND is_deleted = ?",
		ref.ContentType, ref.ObjectID, false).
		Order("created_at DESC").Find(&comments).Error
	return comments, err
}

// GetReplies retrieves the non-deleted replies to a comment, oldest first
func (r *PostgresCommentRepository) GetReplies(parentID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("parent_id = ? AND is_deleted = ?", parentID, false).
		Order("created_at ASC").Find(&comments).Error
	return comments, err
}

// Update saves an existing comment
func (r *PostgresCommentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// SoftDelete marks a comment deleted without touching its edit state
func (r *PostgresCommentRepository) SoftDelete(id uint) error {
	return r.db.Model(&models.Comment{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_deleted": true, "updated_at": time.Now()}).Error
}

// CountForContent counts the non-deleted comments on a target
func (r *PostgresCommentRepository) CountForContent(ref models.ContentRef) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).
		Where("content_type = ? AND object_id = ? AND is_deleted = ?", ref.ContentType, ref.ObjectID, false).
		Count(&count).Error
	return count, err
}
