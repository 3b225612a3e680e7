package services

import (
	"errors"
	"log"

	"github.com/7aib/spots-backend/internal/models"
	"github.com/7aib/spots-backend/internal/repositories"
	"gorm.io/gorm"
)

// FollowService implements the follow graph. Follow is idempotent; the
// unique edge index serializes concurrent follow attempts.
type FollowService interface {
	Follow(followerID, followingID uint) (bool, error)
	Unfollow(followerID, followingID uint) error
	ListFollowing(userID uint) ([]models.Follow, error)
	ListFollowers(userID uint) ([]models.Follow, error)
}

type followService struct {
	follows    repositories.FollowRepository
	users      repositories.UserRepository
	activities ActivityService
}

// NewFollowService creates a new FollowService
func NewFollowService(
	follows repositories.FollowRepository,
	users repositories.UserRepository,
	activities ActivityService,
) FollowService {
	return &followService{follows: follows, users: users, activities: activities}
}

// Follow creates a follow edge and notifies the followee. Returns false
// without side effects when the edge already exists; re-following never
// emits a duplicate activity.
func (s *followService) Follow(followerID, followingID uint) (bool, error) {
	if followerID == followingID {
		return false, ErrSelfFollow
	}
	if _, err := s.users.GetUserByID(followingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	follow := &models.Follow{FollowerID: followerID, FollowingID: followingID}
	if err := s.follows.Create(follow); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}

	if _, err := s.activities.Record(followerID, followingID, models.ActivityFollow, nil, nil); err != nil {
		log.Printf("failed to record follow activity for user %d: %v", followingID, err)
	}
	return true, nil
}

// Unfollow removes a follow edge; no activity is emitted
func (s *followService) Unfollow(followerID, followingID uint) error {
	err := s.follows.Delete(followerID, followingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ListFollowing retrieves who a user follows, newest edge first
func (s *followService) ListFollowing(userID uint) ([]models.Follow, error) {
	return s.follows.ListFollowing(userID)
}

// ListFollowers retrieves a user's followers, newest edge first
func (s *followService) ListFollowers(userID uint) ([]models.Follow, error) {
	return s.follows.ListFollowers(userID)
}
