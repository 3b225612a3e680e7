package services

import (
	"context"
	"fmt"
	"time"

	"github.com/7aib/spots-backend/internal/models"
	"github.com/7aib/spots-backend/internal/repositories"
	"gorm.io/datatypes"
)

// ActivityService is the activity ledger and its feed projection. Record is
// the single choke point every interaction funnels through; nothing else
// writes ledger entries.
type ActivityService interface {
	Record(actorID, targetUserID uint, activityType models.ActivityType, ref *models.ContentRef, extraData map[string]interface{}) (*models.Activity, error)
	MarkRead(targetUserID uint, activityIDs []uint) error
	Stats(targetUserID uint) (*models.ActivityStats, error)
	Feed(ctx context.Context, targetUserID uint, activityType string, isRead *bool, page, limit int) ([]models.FeedEntry, int64, error)
}

type activityService struct {
	activities repositories.ActivityRepository
	users      repositories.UserRepository
	profiles   repositories.ProfileRepository
	resolver   *ContentResolver
}

// NewActivityService creates a new ActivityService
func NewActivityService(
	activities repositories.ActivityRepository,
	users repositories.UserRepository,
	profiles repositories.ProfileRepository,
	resolver *ContentResolver,
) ActivityService {
	return &activityService{
		activities: activities,
		users:      users,
		profiles:   profiles,
		resolver:   resolver,
	}
}

// Record appends a ledger entry. Pure append: no dedup, no validation
// beyond the required actor and recipient.
func (s *activityService) Record(actorID, targetUserID uint, activityType models.ActivityType, ref *models.ContentRef, extraData map[string]interface{}) (*models.Activity, error) {
	if actorID == 0 || targetUserID == 0 {
		return nil, &ValidationError{Field: "actor", Reason: "actor and target user are required"}
	}

	activity := &models.Activity{
		ActorID:      actorID,
		TargetUserID: targetUserID,
		ActivityType: activityType,
		ExtraData:    datatypes.JSONMap(extraData),
	}
	if ref != nil {
		activity.ContentType = ref.ContentType
		activity.ObjectID = ref.ObjectID
	}
	if activity.ExtraData == nil {
		activity.ExtraData = datatypes.JSONMap{}
	}

	if err := s.activities.Create(activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// MarkRead flips is_read for the listed activities; an empty list marks all
// of the user's activities read. Ids belonging to other users are ignored.
func (s *activityService) MarkRead(targetUserID uint, activityIDs []uint) error {
	if len(activityIDs) == 0 {
		return s.activities.MarkAllRead(targetUserID)
	}
	return s.activities.MarkRead(targetUserID, activityIDs)
}

// Stats aggregates a user's ledger, soft-deletes excluded
func (s *activityService) Stats(targetUserID uint) (*models.ActivityStats, error) {
	total, err := s.activities.CountTotal(targetUserID)
	if err != nil {
		return nil, err
	}
	unread, err := s.activities.CountUnread(targetUserID)
	if err != nil {
		return nil, err
	}
	byType, err := s.activities.CountByType(targetUserID)
	if err != nil {
		return nil, err
	}
	return &models.ActivityStats{
		TotalActivities: total,
		UnreadCount:     unread,
		ByType:          byType,
	}, nil
}

// Feed renders a page of a user's ledger as display-ready entries, newest
// first. Unresolvable content degrades to a null content summary.
func (s *activityService) Feed(ctx context.Context, targetUserID uint, activityType string, isRead *bool, page, limit int) ([]models.FeedEntry, int64, error) {
	activities, total, err := s.activities.GetByTargetUser(targetUserID, activityType, isRead, page, limit)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	actorCache := make(map[uint]models.UserCompact)
	entries := make([]models.FeedEntry, len(activities))
	for i, a := range activities {
		actor, ok := actorCache[a.ActorID]
		if !ok {
			actor = s.actorInfo(a.ActorID)
			actorCache[a.ActorID] = actor
		}

		var content *models.ResolvedContent
		if ref := a.Ref(); ref != nil {
			content = s.resolver.Resolve(ctx, *ref)
		}

		entries[i] = models.FeedEntry{
			ID:           a.ID,
			Actor:        actor,
			ActivityType: a.ActivityType,
			Content:      content,
			Message:      activityMessage(a.ActivityType, actorName(actor), content),
			TimeAgo:      TimeAgo(a.CreatedAt, now),
			IsRead:       a.IsRead,
			CreatedAt:    a.CreatedAt,
			ExtraData:    a.ExtraData,
		}
	}
	return entries, total, nil
}

func (s *activityService) actorInfo(actorID uint) models.UserCompact {
	user, err := s.users.GetUserByID(actorID)
	if err != nil {
		return models.UserCompact{ID: actorID}
	}
	avatarURL := ""
	if profile, err := s.profiles.GetOrCreateByUserID(actorID); err == nil {
		avatarURL = profile.AvatarURL
	}
	return user.ToCompact(avatarURL)
}

func actorName(actor models.UserCompact) string {
	if actor.FirstName != "" {
		return actor.FirstName
	}
	if actor.Username != "" {
		return actor.Username
	}
	return "Someone"
}

// contentNoun names the referenced entity kind in activity messages
func contentNoun(content *models.ResolvedContent) string {
	if content == nil {
		return "content"
	}
	switch content.Type {
	case models.ContentTypeMedia:
		return "media"
	case models.ContentTypePlace:
		return "place"
	case models.ContentTypeProfile:
		return "profile"
	case models.ContentTypeComment:
		return "comment"
	}
	return "content"
}

func activityMessage(activityType models.ActivityType, name string, content *models.ResolvedContent) string {
	switch activityType {
	case models.ActivityFollow:
		return name + " started following you"
	case models.ActivityLike:
		return name + " liked your " + contentNoun(content)
	case models.ActivityComment:
		return name + " commented on your " + contentNoun(content)
	case models.ActivityShare:
		return name + " shared your " + contentNoun(content)
	case models.ActivityVideoUpload:
		return name + " uploaded a new video"
	case models.ActivityPlaceCreated:
		return name + " created a new place"
	}
	return name + " performed an action"
}

// TimeAgo renders the elapsed time between two instants as a coarse
// human-readable bucket.
func TimeAgo(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return pluralize(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		return pluralize(int(diff.Hours()), "hour")
	default:
		return pluralize(int(diff.Hours()/24), "day")
	}
}

func pluralize(n int, unit string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss ago", n, unit)
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}
