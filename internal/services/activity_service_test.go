package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/7aib/spots-backend/internal/models"
)

func TestRecordValidation(t *testing.T) {
	env := setupTestEnv(t)

	var validationErr *ValidationError
	_, err := env.activitySvc.Record(0, 1, models.ActivityFollow, nil, nil)
	assert.ErrorAs(t, err, &validationErr)
	_, err = env.activitySvc.Record(1, 0, models.ActivityFollow, nil, nil)
	assert.ErrorAs(t, err, &validationErr)
}

func TestMarkRead(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	carol := env.createUser(t, "carol")

	first, err := env.activitySvc.Record(alice.ID, bob.ID, models.ActivityFollow, nil, nil)
	require.NoError(t, err)
	_, err = env.activitySvc.Record(alice.ID, bob.ID, models.ActivityLike, nil, nil)
	require.NoError(t, err)
	foreign, err := env.activitySvc.Record(alice.ID, carol.ID, models.ActivityFollow, nil, nil)
	require.NoError(t, err)

	// Ids belonging to another recipient are silently ignored
	require.NoError(t, env.activitySvc.MarkRead(bob.ID, []uint{first.ID, foreign.ID}))

	stats, err := env.activitySvc.Stats(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.UnreadCount)

	stats, err = env.activitySvc.Stats(carol.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.UnreadCount)

	// Empty id list marks everything read
	require.NoError(t, env.activitySvc.MarkRead(bob.ID, nil))
	stats, err = env.activitySvc.Stats(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.UnreadCount)
}

func TestMarkReadSkipsDeletedActivities(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	buried, err := env.activitySvc.Record(alice.ID, bob.ID, models.ActivityFollow, nil, nil)
	require.NoError(t, err)
	require.NoError(t, env.db.Model(&models.Activity{}).
		Where("id = ?", buried.ID).Update("is_deleted", true).Error)

	require.NoError(t, env.activitySvc.MarkRead(bob.ID, nil))
	require.NoError(t, env.activitySvc.MarkRead(bob.ID, []uint{buried.ID}))

	// Read paths exclude deleted rows, so check the row directly
	var stored models.Activity
	require.NoError(t, env.db.First(&stored, buried.ID).Error)
	assert.False(t, stored.IsRead)
	assert.True(t, stored.IsDeleted)
}

func TestStats(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	_, err := env.activitySvc.Record(alice.ID, bob.ID, models.ActivityFollow, nil, nil)
	require.NoError(t, err)
	_, err = env.activitySvc.Record(alice.ID, bob.ID, models.ActivityLike, nil, nil)
	require.NoError(t, err)
	liked, err := env.activitySvc.Record(alice.ID, bob.ID, models.ActivityLike, nil, nil)
	require.NoError(t, err)
	buried, err := env.activitySvc.Record(alice.ID, bob.ID, models.ActivityComment, nil, nil)
	require.NoError(t, err)

	require.NoError(t, env.db.Model(&models.Activity{}).
		Where("id = ?", buried.ID).Update("is_deleted", true).Error)
	require.NoError(t, env.activitySvc.MarkRead(bob.ID, []uint{liked.ID}))

	stats, err := env.activitySvc.Stats(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalActivities)
	assert.Equal(t, int64(2), stats.UnreadCount)
	assert.Equal(t, int64(1), stats.ByType["follow"])
	assert.Equal(t, int64(2), stats.ByType["like"])
	assert.NotContains(t, stats.ByType, "comment")
}

func TestFeedMessagesAndContent(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	place := env.createPlace(t, "Harbor Cafe", bob.ID)
	ref := placeRef(place)

	_, err := env.activitySvc.Record(alice.ID, bob.ID, models.ActivityFollow, nil, nil)
	require.NoError(t, err)
	_, err = env.activitySvc.Record(alice.ID, bob.ID, models.ActivityLike, &ref, nil)
	require.NoError(t, err)

	entries, total, err := env.activitySvc.Feed(ctx, bob.ID, "", nil, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, entries, 2)

	byType := make(map[models.ActivityType]models.FeedEntry, len(entries))
	for _, e := range entries {
		byType[e.ActivityType] = e
	}

	follow := byType[models.ActivityFollow]
	assert.Equal(t, "Alice started following you", follow.Message)
	assert.Equal(t, "alice", follow.Actor.Username)
	assert.Nil(t, follow.Content)

	like := byType[models.ActivityLike]
	assert.Equal(t, "Alice liked your place", like.Message)
	require.NotNil(t, like.Content)
	assert.Equal(t, "Harbor Cafe", like.Content.Name)
	assert.Equal(t, models.ContentTypePlace, like.Content.Type)
}

func TestFeedDegradesWhenContentGone(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	place := env.createPlace(t, "Harbor Cafe", bob.ID)
	ref := placeRef(place)

	_, err := env.activitySvc.Record(alice.ID, bob.ID, models.ActivityLike, &ref, nil)
	require.NoError(t, err)

	// The place disappears after the activity was recorded
	require.NoError(t, env.db.Model(&models.Place{}).
		Where("id = ?", place.ID).Update("is_deleted", true).Error)

	entries, _, err := env.activitySvc.Feed(ctx, bob.ID, "", nil, 1, 20)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Content)
	assert.Equal(t, "Alice liked your content", entries[0].Message)
}

func TestFeedUnknownActor(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	bob := env.createUser(t, "bob")

	_, err := env.activitySvc.Record(999999, bob.ID, models.ActivityFollow, nil, nil)
	require.NoError(t, err)

	entries, _, err := env.activitySvc.Feed(ctx, bob.ID, "", nil, 1, 20)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Someone started following you", entries[0].Message)
	assert.Equal(t, uint(999999), entries[0].Actor.ID)
}

func TestFeedFiltersAndPagination(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	for i := 0; i < 3; i++ {
		_, err := env.activitySvc.Record(alice.ID, bob.ID, models.ActivityLike, nil, nil)
		require.NoError(t, err)
	}
	followed, err := env.activitySvc.Record(alice.ID, bob.ID, models.ActivityFollow, nil, nil)
	require.NoError(t, err)
	require.NoError(t, env.activitySvc.MarkRead(bob.ID, []uint{followed.ID}))

	entries, total, err := env.activitySvc.Feed(ctx, bob.ID, "like", nil, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, entries, 2)

	entries, total, err = env.activitySvc.Feed(ctx, bob.ID, "like", nil, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, entries, 1)

	unread := false
	entries, total, err = env.activitySvc.Feed(ctx, bob.ID, "", &unread, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	read := true
	entries, total, err = env.activitySvc.Feed(ctx, bob.ID, "", &read, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActivityFollow, entries[0].ActivityType)
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		elapsed time.Duration
		want    string
	}{
		{30 * time.Second, "Just now"},
		{time.Minute, "1 minute ago"},
		{2 * time.Minute, "2 minutes ago"},
		{59 * time.Minute, "59 minutes ago"},
		{time.Hour, "1 hour ago"},
		{2 * time.Hour, "2 hours ago"},
		{23 * time.Hour, "23 hours ago"},
		{24 * time.Hour, "1 day ago"},
		{48 * time.Hour, "2 days ago"},
		{30 * 24 * time.Hour, "30 days ago"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TimeAgo(now.Add(-tc.elapsed), now), "elapsed %s", tc.elapsed)
	}
}
