package repositories

import (
	"github.com/7aib/spots-backend/internal/models"
	"gorm.io/gorm"
)

// ActivityRepository defines the interface for activity ledger operations.
// Every query excludes soft-deleted entries.
type ActivityRepository interface {
	Create(activity *models.Activity) error
	GetByTargetUser(targetUserID uint, activityType string, isRead *bool, page, limit int) ([]models.Activity, int64, error)
	MarkRead(targetUserID uint, activityIDs []uint) error
	MarkAllRead(targetUserID uint) error
	CountTotal(targetUserID uint) (int64, error)
	CountUnread(targetUserID uint) (int64, error)
	CountByType(targetUserID uint) (map[string]int64, error)
}

type postgresActivityRepository struct {
	db *gorm.DB
}

// NewPostgresActivityRepository creates a new PostgreSQL-backed ActivityRepository
func NewPostgresActivityRepository(db *gorm.DB) ActivityRepository {
	return &postgresActivityRepository{db: db}
}

// Create appends an entry to the ledger
func (r *postgresActivityRepository) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

func (r *postgresActivityRepository) recipientScope(targetUserID uint) *gorm.DB {
	return r.db.Model(&models.Activity{}).
		Where("target_user_id = ? AND is_deleted = ?", targetUserID, false)
}

// GetByTargetUser retrieves a page of a user's activities, newest first,
// optionally filtered by activity type and read state.
func (r *postgresActivityRepository) GetByTargetUser(targetUserID uint, activityType string, isRead *bool, page, limit int) ([]models.Activity, int64, error) {
	query := r.recipientScope(targetUserID)
	if activityType != "" {
		query = query.Where("activity_type = ?", activityType)
	}
	if isRead != nil {
		query = query.Where("is_read = ?", *isRead)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var activities []models.Activity
	offset := (page - 1) * limit
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&activities).Error
	return activities, total, err
}

// MarkRead flips is_read for the given ids. The target-user scope silently
// drops ids that belong to someone else, and soft-deleted entries stay
// untouched.
func (r *postgresActivityRepository) MarkRead(targetUserID uint, activityIDs []uint) error {
	return r.db.Model(&models.Activity{}).
		Where("target_user_id = ? AND is_deleted = ? AND id IN ?", targetUserID, false, activityIDs).
		Update("is_read", true).Error
}

// MarkAllRead flips is_read for every one of the user's non-deleted activities
func (r *postgresActivityRepository) MarkAllRead(targetUserID uint) error {
	return r.db.Model(&models.Activity{}).
		Where("target_user_id = ? AND is_deleted = ? AND is_read = ?", targetUserID, false, false).
		Update("is_read", true).Error
}

// CountTotal counts a user's non-deleted activities
func (r *postgresActivityRepository) CountTotal(targetUserID uint) (int64, error) {
	var count int64
	err := r.recipientScope(targetUserID).Count(&count).Error
	return count, err
}

// CountUnread counts a user's unread activities
func (r *postgresActivityRepository) CountUnread(targetUserID uint) (int64, error) {
	var count int64
	err := r.recipientScope(targetUserID).Where("is_read = ?", false).Count(&count).Error
	return count, err
}

// CountByType groups a user's activities by type
func (r *postgresActivityRepository) CountByType(targetUserID uint) (map[string]int64, error) {
	var rows []struct {
		ActivityType string
		Count        int64
	}
	err := r.recipientScope(targetUserID).
		Select("activity_type, COUNT(*) AS count").
		Group("activity_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.ActivityType] = row.Count
	}
	return counts, nil
}
