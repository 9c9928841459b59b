package service

import (
	"context"
	"testing"

	"go-blog/internal/event"
	"go-blog/internal/model"
	"go-blog/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countFollows(t *testing.T, f *fixture) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.conn.Model(&model.Follow{}).Count(&n).Error)
	return n
}

func TestFollowService_FollowIsIdempotent(t *testing.T) {
	f := newFixture(t)
	alice := testutil.CreateUser(t, f.conn, "alice")
	bob := testutil.CreateUser(t, f.conn, "bob")

	author, err := f.follows.Follow(context.Background(), alice, "bob")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, author.ID)

	_, err = f.follows.Follow(context.Background(), alice, "bob")
	require.NoError(t, err)

	assert.Equal(t, int64(1), countFollows(t, f))
	following, err := f.follows.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)
	assert.Equal(t, []event.Type{event.FollowCreated}, f.events.types(), "second follow publishes nothing")

	stats, err := f.follows.Stats(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, FollowStats{Followers: 1, Following: 0}, stats)
}

func TestFollowService_SelfFollowIsNoop(t *testing.T) {
	f := newFixture(t)
	alice := testutil.CreateUser(t, f.conn, "alice")

	_, err := f.follows.Follow(context.Background(), alice, "alice")
	require.NoError(t, err)
	_, err = f.follows.Unfollow(context.Background(), alice, "alice")
	require.NoError(t, err)

	assert.Zero(t, countFollows(t, f))
	assert.Empty(t, f.events.types())
}

func TestFollowService_Unfollow(t *testing.T) {
	f := newFixture(t)
	alice := testutil.CreateUser(t, f.conn, "alice")
	bob := testutil.CreateUser(t, f.conn, "bob")

	_, err := f.follows.Unfollow(context.Background(), alice, "bob")
	assert.ErrorIs(t, err, ErrFollowNotFound, "missing relation is an error")

	_, err = f.follows.Follow(context.Background(), alice, "bob")
	require.NoError(t, err)
	_, err = f.follows.Unfollow(context.Background(), alice, "bob")
	require.NoError(t, err)

	following, err := f.follows.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)
	assert.Equal(t, []event.Type{event.FollowCreated, event.FollowDeleted}, f.events.types())
}

func TestFollowService_UnknownAuthor(t *testing.T) {
	f := newFixture(t)
	alice := testutil.CreateUser(t, f.conn, "alice")

	_, err := f.follows.Follow(context.Background(), alice, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.follows.Unfollow(context.Background(), alice, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFollowService_Feed(t *testing.T) {
	f := newFixture(t)
	alice := testutil.CreateUser(t, f.conn, "alice")
	bob := testutil.CreateUser(t, f.conn, "bob")
	carol := testutil.CreateUser(t, f.conn, "carol")

	testutil.CreatePost(t, f.conn, bob, nil, "from bob")
	testutil.CreatePost(t, f.conn, carol, nil, "from carol")

	_, err := f.follows.Follow(context.Background(), alice, "bob")
	require.NoError(t, err)

	feed, err := f.posts.ListFeed(alice.ID, "")
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "from bob", feed.Items[0].Text)

	feed, err = f.posts.ListFeed(carol.ID, "")
	require.NoError(t, err)
	assert.Empty(t, feed.Items, "carol follows nobody")
}
