package repositories

import (
	"github.com/7aib/spots-backend/internal/models"
	"gorm.io/gorm"
)

// ShareRepository defines the interface for share data operations
type ShareRepository interface {
	Create(share *models.Share) error
	GetForContent(ref models.ContentRef) ([]models.Share, error)
	CountForContent(ref models.ContentRef) (int64, error)
}

// PostgresShareRepository implements ShareRepository for PostgreSQL
type PostgresShareRepository struct {
	db *gorm.DB
}

// NewPostgresShareRepository creates a new PostgresShareRepository
func NewPostgresShareRepository(db *gorm.DB) *PostgresShareRepository {
	return &PostgresShareRepository{db: db}
}

// Create inserts a new share; shares are never deduplicated
func (r *PostgresShareRepository) Create(share *models.Share) error {
	return r.db.Create(share).Error
}

// GetForContent retrieves all shares of a target, newest first
func (r *PostgresShareRepository) GetForContent(ref models.ContentRef) ([]models.Share, error) {
	var shares []models.Share
	err := r.db.Where("content_type = ? AND object_id = ?", ref.ContentType, ref.ObjectID).
		Order("created_at DESC").Find(&shares).Error
	return shares, err
}

// CountForContent counts the shares of a target
func (r *PostgresShareRepository) CountForContent(ref models.ContentRef) (int64, error) {
	var count int64
	err := r.db.Model(&models.Share{}).
		Where("content_type = ? AND object_id = ?", ref.ContentType, ref.ObjectID).
		Count(&count).Error
	return count, err
}
