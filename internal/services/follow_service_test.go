package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/7aib/spots-backend/internal/models"
)

func TestFollowIdempotent(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	created, err := env.followSvc.Follow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, created)

	// Re-following is a no-op: no second edge, no second notification
	created, err = env.followSvc.Follow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, created)

	followers, err := env.followSvc.ListFollowers(bob.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, alice.ID, followers[0].FollowerID)
	assert.Equal(t, "alice", followers[0].Follower.Username)

	acts := env.activitiesFor(t, bob.ID)
	require.Len(t, acts, 1)
	assert.Equal(t, models.ActivityFollow, acts[0].ActivityType)
	assert.Equal(t, alice.ID, acts[0].ActorID)
}

func TestFollowSelf(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.createUser(t, "alice")

	_, err := env.followSvc.Follow(alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfFollow)
	assert.Empty(t, env.activitiesFor(t, alice.ID))
}

func TestFollowMissingUser(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.createUser(t, "alice")

	_, err := env.followSvc.Follow(alice.ID, 999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnfollow(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	_, err := env.followSvc.Follow(alice.ID, bob.ID)
	require.NoError(t, err)

	require.NoError(t, env.followSvc.Unfollow(alice.ID, bob.ID))

	followers, err := env.followSvc.ListFollowers(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)

	// Removing an absent edge reports not found
	assert.ErrorIs(t, env.followSvc.Unfollow(alice.ID, bob.ID), ErrNotFound)

	// The follow notification is history, not state: it survives the unfollow
	assert.Len(t, env.activitiesFor(t, bob.ID), 1)
}

func TestFollowListsBothDirections(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	carol := env.createUser(t, "carol")

	_, err := env.followSvc.Follow(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = env.followSvc.Follow(alice.ID, carol.ID)
	require.NoError(t, err)
	_, err = env.followSvc.Follow(carol.ID, alice.ID)
	require.NoError(t, err)

	following, err := env.followSvc.ListFollowing(alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 2)

	followers, err := env.followSvc.ListFollowers(alice.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, carol.ID, followers[0].FollowerID)
}
