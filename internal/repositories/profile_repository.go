package repositories

import (
	"errors"

	"github.com/7aib/spots-backend/internal/models"
	"gorm.io/gorm"
)

// ProfileRepository defines the interface for user profile operations
type ProfileRepository interface {
	GetByID(id uint) (*models.UserProfile, error)
	GetOrCreateByUserID(userID uint) (*models.UserProfile, error)
	Update(profile *models.UserProfile) error
}

// PostgresProfileRepository implements ProfileRepository for PostgreSQL
type PostgresProfileRepository struct {
	db *gorm.DB
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository
func NewPostgresProfileRepository(db *gorm.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// GetByID retrieves a profile by its row id
func (r *PostgresProfileRepository) GetByID(id uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.Where("is_deleted = ?", false).First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetOrCreateByUserID retrieves a user's profile, creating an empty one on
// first access. Profiles are lazily materialized, matching account creation
// paths that never touch them.
func (r *PostgresProfileRepository) GetOrCreateByUserID(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile = models.UserProfile{UserID: userID}
	if err := r.db.Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update saves an existing profile
func (r *PostgresProfileRepository) Update(profile *models.UserProfile) error {
	return r.db.Save(profile).Error
}
