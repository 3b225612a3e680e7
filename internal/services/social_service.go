package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/7aib/spots-backend/internal/models"
	"github.com/7aib/spots-backend/internal/repositories"
	"gorm.io/gorm"
)

const commentExcerptLen = 100

// SocialService implements the like/comment/share interaction store.
// Activities are emitted synchronously from the operation that performs the
// state change; emission failures are logged and never fail the operation.
type SocialService interface {
	ToggleLike(ctx context.Context, userID uint, ref models.ContentRef) (bool, error)
	AddComment(ctx context.Context, userID uint, ref models.ContentRef, text string, parentID *uint) (*models.Comment, error)
	EditComment(ctx context.Context, userID, commentID uint, text string) (*models.Comment, error)
	DeleteComment(ctx context.Context, userID, commentID uint) error
	GetLikes(ctx context.Context, userID uint, ref models.ContentRef) ([]models.Like, bool, error)
	ListComments(ctx context.Context, ref models.ContentRef) ([]models.Comment, error)
	ListReplies(ctx context.Context, commentID uint) ([]models.Comment, error)
	RecordShare(ctx context.Context, userID uint, ref models.ContentRef, platform models.SharePlatform, message string, notify bool) (*models.Share, error)
}

type socialService struct {
	likes      repositories.LikeRepository
	comments   repositories.CommentRepository
	shares     repositories.ShareRepository
	resolver   *ContentResolver
	activities ActivityService
}

// NewSocialService creates a new SocialService
func NewSocialService(
	likes repositories.LikeRepository,
	comments repositories.CommentRepository,
	shares repositories.ShareRepository,
	resolver *ContentResolver,
	activities ActivityService,
) SocialService {
	return &socialService{
		likes:      likes,
		comments:   comments,
		shares:     shares,
		resolver:   resolver,
		activities: activities,
	}
}

// emit records an activity for the content owner, isolating failures from
// the primary interaction.
func (s *socialService) emit(actorID, targetUserID uint, activityType models.ActivityType, ref *models.ContentRef, extraData map[string]interface{}) {
	if _, err := s.activities.Record(actorID, targetUserID, activityType, ref, extraData); err != nil {
		log.Printf("failed to record %s activity for user %d: %v", activityType, targetUserID, err)
	}
}

// ToggleLike creates a like if the user has none on the target, or removes
// the existing one. The unique index serializes concurrent toggles: the
// loser of a creation race observes a duplicate key and flips to unlike.
func (s *socialService) ToggleLike(ctx context.Context, userID uint, ref models.ContentRef) (bool, error) {
	content := s.resolver.Resolve(ctx, ref)
	if content == nil {
		return false, ErrNotFound
	}

	like := &models.Like{UserID: userID, ContentType: ref.ContentType, ObjectID: ref.ObjectID}
	err := s.likes.Create(like)
	if err == nil {
		if content.OwnerID != 0 && content.OwnerID != userID {
			s.emit(userID, content.OwnerID, models.ActivityLike, &ref, nil)
		}
		return true, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, err
	}

	// Already liked (or lost the creation race): unlike. A concurrent
	// unlike may get there first, which leaves the toggle a no-op.
	if err := s.likes.Delete(userID, ref); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	return false, nil
}

// GetLikes retrieves the likes on a target plus whether the given user has
// liked it.
func (s *socialService) GetLikes(ctx context.Context, userID uint, ref models.ContentRef) ([]models.Like, bool, error) {
	if !s.resolver.Known(ref.ContentType) {
		return nil, false, ErrNotFound
	}
	likes, err := s.likes.GetForContent(ref)
	if err != nil {
		return nil, false, err
	}
	liked, err := s.likes.Exists(userID, ref)
	if err != nil {
		return nil, false, err
	}
	return likes, liked, nil
}

// AddComment creates a comment on a target and notifies the content owner
// with a short excerpt of the text.
func (s *socialService) AddComment(ctx context.Context, userID uint, ref models.ContentRef, text string, parentID *uint) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &ValidationError{Field: "text", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(text) > 500 {
		return nil, &ValidationError{Field: "text", Reason: "must be at most 500 characters"}
	}

	content := s.resolver.Resolve(ctx, ref)
	if content == nil {
		return nil, ErrNotFound
	}

	if parentID != nil {
		parent, err := s.comments.GetByID(*parentID)
		if err != nil || parent.IsDeleted {
			return nil, ErrNotFound
		}
	}

	comment := &models.Comment{
		UserID:      userID,
		ContentType: ref.ContentType,
		ObjectID:    ref.ObjectID,
		Text:        text,
		ParentID:    parentID,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}

	if content.OwnerID != 0 && content.OwnerID != userID {
		s.emit(userID, content.OwnerID, models.ActivityComment, &ref,
			map[string]interface{}{"comment_text": excerpt(text)})
	}
	return comment, nil
}

// EditComment replaces a comment's text. Only the author may edit, and a
// soft-deleted comment cannot be edited. Every edit flags is_edited and
// stamps edited_at.
func (s *socialService) EditComment(ctx context.Context, userID, commentID uint, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &ValidationError{Field: "text", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(text) > 500 {
		return nil, &ValidationError{Field: "text", Reason: "must be at most 500 characters"}
	}

	comment, err := s.comments.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if comment.IsDeleted {
		return nil, ErrNotFound
	}
	if comment.UserID != userID {
		return nil, ErrForbidden
	}

	now := time.Now()
	comment.Text = text
	comment.IsEdited = true
	comment.EditedAt = &now
	if err := s.comments.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment soft-deletes a comment. Idempotent: deleting an already
// deleted comment is a no-op.
func (s *socialService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	comment, err := s.comments.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if comment.UserID != userID {
		return ErrForbidden
	}
	if comment.IsDeleted {
		return nil
	}
	return s.comments.SoftDelete(commentID)
}

// ListComments retrieves the non-deleted comments on a target
func (s *socialService) ListComments(ctx context.Context, ref models.ContentRef) ([]models.Comment, error) {
	if !s.resolver.Known(ref.ContentType) {
		return nil, ErrNotFound
	}
	return s.comments.GetForContent(ref)
}

// ListReplies retrieves the non-deleted replies to a comment, oldest first
func (s *socialService) ListReplies(ctx context.Context, commentID uint) ([]models.Comment, error) {
	parent, err := s.comments.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if parent.IsDeleted {
		return nil, ErrNotFound
	}
	return s.comments.GetReplies(commentID)
}

// RecordShare records a share event. Shares are never deduplicated; an
// activity is emitted only when the caller asks for one.
func (s *socialService) RecordShare(ctx context.Context, userID uint, ref models.ContentRef, platform models.SharePlatform, message string, notify bool) (*models.Share, error) {
	if !platform.Valid() {
		return nil, &ValidationError{Field: "platform", Reason: "unknown share platform"}
	}
	if utf8.RuneCountInString(message) > 200 {
		return nil, &ValidationError{Field: "message", Reason: "must be at most 200 characters"}
	}

	content := s.resolver.Resolve(ctx, ref)
	if content == nil {
		return nil, ErrNotFound
	}

	share := &models.Share{
		UserID:      userID,
		ContentType: ref.ContentType,
		ObjectID:    ref.ObjectID,
		Platform:    platform,
		Message:     message,
	}
	if err := s.shares.Create(share); err != nil {
		return nil, err
	}

	if notify && content.OwnerID != 0 && content.OwnerID != userID {
		s.emit(userID, content.OwnerID, models.ActivityShare, &ref, nil)
	}
	return share, nil
}

// excerpt truncates on a rune boundary so multibyte text stays valid UTF-8
func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) > commentExcerptLen {
		return string(runes[:commentExcerptLen])
	}
	return text
}
