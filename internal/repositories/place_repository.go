package repositories

import (
	"github.com/7aib/spots-backend/internal/models"
	"gorm.io/gorm"
)

// PlaceRepository defines the interface for place data operations
type PlaceRepository interface {
	Create(place *models.Place) error
	GetByID(id uint) (*models.Place, error)
	List() ([]models.Place, error)
}

// PostgresPlaceRepository implements PlaceRepository for PostgreSQL
type PostgresPlaceRepository struct {
	db *gorm.DB
}

// NewPostgresPlaceRepository creates a new PostgresPlaceRepository
func NewPostgresPlaceRepository(db *gorm.DB) *PostgresPlaceRepository {
	return &PostgresPlaceRepository{db: db}
}

// Create inserts a new place
func (r *PostgresPlaceRepository) Create(place *models.Place) error {
	return r.db.Create(place).Error
}

// GetByID retrieves a non-deleted place by id
func (r *PostgresPlaceRepository) GetByID(id uint) (*models.Place, error) {
	var place models.Place
	if err := r.db.Where("is_deleted = ?", false).First(&place, id).Error; err != nil {
		return nil, err
	}
	return &place, nil
}

// List retrieves all non-deleted places ordered by name, with reference data preloaded
func (r *PostgresPlaceRepository) List() ([]models.Place, error) {
	var places []models.Place
	err := r.db.Preload("City").Preload("Category").
		Where("is_deleted = ?", false).
		Order("name ASC").Find(&places).Error
	return places, err
}
