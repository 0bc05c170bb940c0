package services

import (
	"testing"

	"inkwell/internal/db"
	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func followCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.DB.Model(&models.Follow{}).Count(&count).Error)
	return count
}

func TestFollowAuthor(t *testing.T) {
	db.OpenTemp(t)
	alice := createUser(t, "alice")
	bob := createUser(t, "bob")

	require.NoError(t, FollowAuthor(alice.ID, bob.ID))
	assert.True(t, IsFollowing(alice.ID, bob.ID))
	assert.False(t, IsFollowing(bob.ID, alice.ID), "edge is directed")

	// Following twice is rejected, not silently duplicated.
	err := FollowAuthor(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrAlreadyFollowing)
	assert.EqualValues(t, 1, followCount(t))
}

func TestFollowAuthorSelf(t *testing.T) {
	db.OpenTemp(t)
	alice := createUser(t, "alice")

	err := FollowAuthor(alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfFollow)
	assert.EqualValues(t, 0, followCount(t))
}

func TestUnfollowAuthor(t *testing.T) {
	db.OpenTemp(t)
	alice := createUser(t, "alice")
	bob := createUser(t, "bob")

	require.NoError(t, FollowAuthor(alice.ID, bob.ID))
	require.NoError(t, UnfollowAuthor(alice.ID, bob.ID))
	assert.False(t, IsFollowing(alice.ID, bob.ID))

	// Removing a missing edge is its own typed case, not a raw fault.
	err := UnfollowAuthor(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFollowing)
}

func TestFollowerAndFollowingCounts(t *testing.T) {
	db.OpenTemp(t)
	alice := createUser(t, "alice")
	bob := createUser(t, "bob")
	carol := createUser(t, "carol")

	require.NoError(t, FollowAuthor(alice.ID, carol.ID))
	require.NoError(t, FollowAuthor(bob.ID, carol.ID))

	assert.EqualValues(t, 2, FollowerCount(carol.ID))
	assert.EqualValues(t, 0, FollowingCount(carol.ID))
	assert.EqualValues(t, 1, FollowingCount(alice.ID))
}
