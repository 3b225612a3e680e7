package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/7aib/spots-backend/internal/models"
	"github.com/7aib/spots-backend/internal/repositories"
)

type testEnv struct {
	db         *gorm.DB
	likes      repositories.LikeRepository
	comments   repositories.CommentRepository
	shares     repositories.ShareRepository
	follows    repositories.FollowRepository
	activities repositories.ActivityRepository
	resolver   *ContentResolver

	activitySvc ActivityService
	socialSvc   SocialService
	followSvc   FollowService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.City{},
		&models.Category{},
		&models.Place{},
		&models.Like{},
		&models.Comment{},
		&models.Share{},
		&models.Follow{},
		&models.Activity{},
	))

	userRepo := repositories.NewPostgresUserRepository(db)
	profileRepo := repositories.NewPostgresProfileRepository(db)
	placeRepo := repositories.NewPostgresPlaceRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	shareRepo := repositories.NewPostgresShareRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	activityRepo := repositories.NewPostgresActivityRepository(db)

	// Media lives in MongoDB; tests run without it, so the media kind stays
	// unregistered and resolves as unavailable.
	resolver := NewContentResolver()
	RegisterDefaultResolvers(resolver, nil, placeRepo, profileRepo, commentRepo, userRepo)

	activitySvc := NewActivityService(activityRepo, userRepo, profileRepo, resolver)
	socialSvc := NewSocialService(likeRepo, commentRepo, shareRepo, resolver, activitySvc)
	followSvc := NewFollowService(followRepo, userRepo, activitySvc)

	return &testEnv{
		db:          db,
		likes:       likeRepo,
		comments:    commentRepo,
		shares:      shareRepo,
		follows:     followRepo,
		activities:  activityRepo,
		resolver:    resolver,
		activitySvc: activitySvc,
		socialSvc:   socialSvc,
		followSvc:   followSvc,
	}
}

func (e *testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:  username,
		Email:     username + "@example.com",
		FirstName: strings.ToUpper(username[:1]) + username[1:],
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) createPlace(t *testing.T, name string, ownerID uint) *models.Place {
	t.Helper()
	place := &models.Place{Name: name, CreatedByID: ownerID}
	require.NoError(t, e.db.Create(place).Error)
	return place
}

func placeRef(place *models.Place) models.ContentRef {
	return models.ContentRef{
		ContentType: models.ContentTypePlace,
		ObjectID:    strconv.FormatUint(uint64(place.ID), 10),
	}
}

func (e *testEnv) activitiesFor(t *testing.T, userID uint) []models.Activity {
	t.Helper()
	entries, _, err := e.activities.GetByTargetUser(userID, "", nil, 1, 100)
	require.NoError(t, err)
	return entries
}

func TestToggleLike(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "alice")
	liker := env.createUser(t, "bob")
	place := env.createPlace(t, "Harbor Cafe", owner.ID)
	ref := placeRef(place)

	liked, err := env.socialSvc.ToggleLike(ctx, liker.ID, ref)
	require.NoError(t, err)
	assert.True(t, liked)

	count, err := env.likes.CountForContent(ref)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Owner got notified exactly once
	acts := env.activitiesFor(t, owner.ID)
	require.Len(t, acts, 1)
	assert.Equal(t, models.ActivityLike, acts[0].ActivityType)
	assert.Equal(t, liker.ID, acts[0].ActorID)

	// Second toggle removes the like but the activity stays in the ledger
	liked, err = env.socialSvc.ToggleLike(ctx, liker.ID, ref)
	require.NoError(t, err)
	assert.False(t, liked)

	count, err = env.likes.CountForContent(ref)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	assert.Len(t, env.activitiesFor(t, owner.ID), 1)
}

func TestToggleLikeOwnContent(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "alice")
	place := env.createPlace(t, "Harbor Cafe", owner.ID)

	liked, err := env.socialSvc.ToggleLike(ctx, owner.ID, placeRef(place))
	require.NoError(t, err)
	assert.True(t, liked)

	// Liking your own content never notifies you
	assert.Empty(t, env.activitiesFor(t, owner.ID))
}

func TestToggleLikeUnresolvableContent(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "alice")

	_, err := env.socialSvc.ToggleLike(ctx, user.ID, models.ContentRef{
		ContentType: models.ContentTypePlace,
		ObjectID:    "9999",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// Media resolver is not registered in this environment
	_, err = env.socialSvc.ToggleLike(ctx, user.ID, models.ContentRef{
		ContentType: models.ContentTypeMedia,
		ObjectID:    "64b0c0ffee0000000000abcd",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetLikes(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "alice")
	liker := env.createUser(t, "bob")
	other := env.createUser(t, "carol")
	place := env.createPlace(t, "Harbor Cafe", owner.ID)
	ref := placeRef(place)

	_, err := env.socialSvc.ToggleLike(ctx, liker.ID, ref)
	require.NoError(t, err)

	likes, liked, err := env.socialSvc.GetLikes(ctx, liker.ID, ref)
	require.NoError(t, err)
	assert.Len(t, likes, 1)
	assert.True(t, liked)

	_, liked, err = env.socialSvc.GetLikes(ctx, other.ID, ref)
	require.NoError(t, err)
	assert.False(t, liked)

	_, _, err = env.socialSvc.GetLikes(ctx, liker.ID, models.ContentRef{ContentType: "video", ObjectID: "1"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddCommentValidation(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "alice")
	user := env.createUser(t, "bob")
	place := env.createPlace(t, "Harbor Cafe", owner.ID)
	ref := placeRef(place)

	var validationErr *ValidationError

	_, err := env.socialSvc.AddComment(ctx, user.ID, ref, "   \t  ", nil)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "text", validationErr.Field)

	_, err = env.socialSvc.AddComment(ctx, user.ID, ref, strings.Repeat("x", 501), nil)
	require.ErrorAs(t, err, &validationErr)

	comments, err := env.socialSvc.ListComments(ctx, ref)
	require.NoError(t, err)
	assert.Empty(t, comments)
	assert.Empty(t, env.activitiesFor(t, owner.ID))
}

func TestAddCommentNotifiesOwnerWithExcerpt(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "alice")
	commenter := env.createUser(t, "bob")
	place := env.createPlace(t, "Harbor Cafe", owner.ID)
	ref := placeRef(place)

	longText := strings.Repeat("a", 150)
	comment, err := env.socialSvc.AddComment(ctx, commenter.ID, ref, "  "+longText+"  ", nil)
	require.NoError(t, err)
	assert.Equal(t, longText, comment.Text)
	assert.False(t, comment.IsEdited)

	acts := env.activitiesFor(t, owner.ID)
	require.Len(t, acts, 1)
	assert.Equal(t, models.ActivityComment, acts[0].ActivityType)
	assert.Equal(t, strings.Repeat("a", 100), acts[0].ExtraData["comment_text"])
}

func TestCommentLimitsCountCharacters(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "alice")
	commenter := env.createUser(t, "bob")
	place := env.createPlace(t, "Harbor Cafe", owner.ID)
	ref := placeRef(place)

	// 300 characters of multibyte text is 600 bytes but still within the
	// 500-character limit
	accented := strings.Repeat("é", 300)
	comment, err := env.socialSvc.AddComment(ctx, commenter.ID, ref, accented, nil)
	require.NoError(t, err)
	assert.Equal(t, accented, comment.Text)

	// The excerpt keeps whole characters and stays valid UTF-8
	acts := env.activitiesFor(t, owner.ID)
	require.Len(t, acts, 1)
	stored, ok := acts[0].ExtraData["comment_text"].(string)
	require.True(t, ok)
	assert.Equal(t, strings.Repeat("é", 100), stored)
	assert.True(t, utf8.ValidString(stored))

	var validationErr *ValidationError
	_, err = env.socialSvc.AddComment(ctx, commenter.ID, ref, strings.Repeat("é", 501), nil)
	require.ErrorAs(t, err, &validationErr)

	_, err = env.socialSvc.EditComment(ctx, commenter.ID, comment.ID, strings.Repeat("漢", 500))
	require.NoError(t, err)

	_, err = env.socialSvc.RecordShare(ctx, commenter.ID, ref, models.PlatformTwitter, strings.Repeat("é", 150), false)
	require.NoError(t, err)
	_, err = env.socialSvc.RecordShare(ctx, commenter.ID, ref, models.PlatformTwitter, strings.Repeat("é", 201), false)
	require.ErrorAs(t, err, &validationErr)
}

func TestAddCommentSelfNoNotification(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "alice")
	place := env.createPlace(t, "Harbor Cafe", owner.ID)

	_, err := env.socialSvc.AddComment(ctx, owner.ID, placeRef(place), "my own place", nil)
	require.NoError(t, err)
	assert.Empty(t, env.activitiesFor(t, owner.ID))
}

func TestAddCommentReplyParent(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "alice")
	user := env.createUser(t, "bob")
	place := env.createPlace(t, "Harbor Cafe", owner.ID)
	ref := placeRef(place)

	missing := uint(424242)
	_, err := env.socialSvc.AddComment(ctx, user.ID, ref, "reply to nothing", &missing)
	assert.ErrorIs(t, err, ErrNotFound)

	parent, err := env.socialSvc.AddComment(ctx, user.ID, ref, "parent", nil)
	require.NoError(t, err)

	reply, err := env.socialSvc.AddComment(ctx, user.ID, ref, "child", &parent.ID)
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, parent.ID, *reply.ParentID)

	replies, err := env.socialSvc.ListReplies(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, reply.ID, replies[0].ID)

	// A deleted parent cannot take new replies or serve its thread
	require.NoError(t, env.socialSvc.DeleteComment(ctx, user.ID, parent.ID))
	_, err = env.socialSvc.AddComment(ctx, user.ID, ref, "late child", &parent.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = env.socialSvc.ListReplies(ctx, parent.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEditComment(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "alice")
	author := env.createUser(t, "bob")
	other := env.createUser(t, "carol")
	place := env.createPlace(t, "Harbor Cafe", owner.ID)

	comment, err := env.socialSvc.AddComment(ctx, author.ID, placeRef(place), "first draft", nil)
	require.NoError(t, err)

	_, err = env.socialSvc.EditComment(ctx, other.ID, comment.ID, "hijacked")
	assert.ErrorIs(t, err, ErrForbidden)

	edited, err := env.socialSvc.EditComment(ctx, author.ID, comment.ID, "second draft")
	require.NoError(t, err)
	assert.Equal(t, "second draft", edited.Text)
	assert.True(t, edited.IsEdited)
	require.NotNil(t, edited.EditedAt)

	require.NoError(t, env.socialSvc.DeleteComment(ctx, author.ID, comment.ID))
	_, err = env.socialSvc.EditComment(ctx, author.ID, comment.ID, "too late")
	assert.ErrorIs(t, err, ErrNotFound)

	// Soft delete leaves the edit state untouched
	var stored models.Comment
	require.NoError(t, env.db.First(&stored, comment.ID).Error)
	assert.True(t, stored.IsDeleted)
	assert.True(t, stored.IsEdited)
	assert.Equal(t, "second draft", stored.Text)
}

func TestDeleteCommentIdempotent(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "alice")
	author := env.createUser(t, "bob")
	other := env.createUser(t, "carol")
	place := env.createPlace(t, "Harbor Cafe", owner.ID)
	ref := placeRef(place)

	comment, err := env.socialSvc.AddComment(ctx, author.ID, ref, "ephemeral", nil)
	require.NoError(t, err)

	assert.ErrorIs(t, env.socialSvc.DeleteComment(ctx, other.ID, comment.ID), ErrForbidden)

	require.NoError(t, env.socialSvc.DeleteComment(ctx, author.ID, comment.ID))
	comments, err := env.socialSvc.ListComments(ctx, ref)
	require.NoError(t, err)
	assert.Empty(t, comments)

	// Repeated delete is a no-op
	require.NoError(t, env.socialSvc.DeleteComment(ctx, author.ID, comment.ID))

	assert.ErrorIs(t, env.socialSvc.DeleteComment(ctx, author.ID, 999999), ErrNotFound)
}

func TestListCommentsNewestFirst(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "alice")
	place := env.createPlace(t, "Harbor Cafe", owner.ID)
	ref := placeRef(place)

	for i := 0; i < 3; i++ {
		_, err := env.socialSvc.AddComment(ctx, owner.ID, ref, fmt.Sprintf("comment %d", i), nil)
		require.NoError(t, err)
	}

	comments, err := env.socialSvc.ListComments(ctx, ref)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "comment 2", comments[0].Text)
	assert.Equal(t, "comment 0", comments[2].Text)
}

func TestRecordShare(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	owner := env.createUser(t, "alice")
	sharer := env.createUser(t, "bob")
	place := env.createPlace(t, "Harbor Cafe", owner.ID)
	ref := placeRef(place)

	var validationErr *ValidationError
	_, err := env.socialSvc.RecordShare(ctx, sharer.ID, ref, "myspace", "", false)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "platform", validationErr.Field)

	_, err = env.socialSvc.RecordShare(ctx, sharer.ID, ref, models.PlatformTwitter, strings.Repeat("m", 201), false)
	require.ErrorAs(t, err, &validationErr)

	// Shares are never deduplicated
	_, err = env.socialSvc.RecordShare(ctx, sharer.ID, ref, models.PlatformTwitter, "check this out", false)
	require.NoError(t, err)
	_, err = env.socialSvc.RecordShare(ctx, sharer.ID, ref, models.PlatformTwitter, "check this out", false)
	require.NoError(t, err)

	count, err := env.shares.CountForContent(ref)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// notify=false left the owner's ledger empty
	assert.Empty(t, env.activitiesFor(t, owner.ID))

	_, err = env.socialSvc.RecordShare(ctx, sharer.ID, ref, models.PlatformWhatsApp, "", true)
	require.NoError(t, err)
	acts := env.activitiesFor(t, owner.ID)
	require.Len(t, acts, 1)
	assert.Equal(t, models.ActivityShare, acts[0].ActivityType)
}
