package repository

import (
	"testing"

	"go-blog/internal/model"
	"go-blog/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_CreateIfAbsentIsIdempotent(t *testing.T) {
	conn := testutil.NewDB(t)
	repo := NewFollowRepository(conn)
	a := testutil.CreateUser(t, conn, "a")
	b := testutil.CreateUser(t, conn, "b")

	first, created, err := repo.CreateIfAbsent(a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := repo.CreateIfAbsent(a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	conn.Model(&model.Follow{}).Count(&count)
	assert.EqualValues(t, 1, count)

	exists, err := repo.Exists(a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	reverse, err := repo.Exists(b.ID, a.ID)
	require.NoError(t, err)
	assert.False(t, reverse)
}

func TestFollowRepository_UniquePair(t *testing.T) {
	conn := testutil.NewDB(t)
	a := testutil.CreateUser(t, conn, "a")
	b := testutil.CreateUser(t, conn, "b")

	require.NoError(t, conn.Create(&model.Follow{UserID: a.ID, AuthorID: b.ID}).Error)
	assert.Error(t, conn.Create(&model.Follow{UserID: a.ID, AuthorID: b.ID}).Error)
}

func TestFollowRepository_Delete(t *testing.T) {
	conn := testutil.NewDB(t)
	repo := NewFollowRepository(conn)
	a := testutil.CreateUser(t, conn, "a")
	b := testutil.CreateUser(t, conn, "b")

	removed, err := repo.Delete(a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, removed, "deleting a missing pair removes nothing")

	_, _, err = repo.CreateIfAbsent(a.ID, b.ID)
	require.NoError(t, err)

	removed, err = repo.Delete(a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	exists, err := repo.Exists(a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFollowRepository_Counts(t *testing.T) {
	conn := testutil.NewDB(t)
	repo := NewFollowRepository(conn)
	a := testutil.CreateUser(t, conn, "a")
	b := testutil.CreateUser(t, conn, "b")
	c := testutil.CreateUser(t, conn, "c")

	for _, pair := range [][2]uint{{a.ID, c.ID}, {b.ID, c.ID}, {c.ID, a.ID}} {
		_, _, err := repo.CreateIfAbsent(pair[0], pair[1])
		require.NoError(t, err)
	}

	followers, err := repo.CountFollowers(c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, followers)

	following, err := repo.CountFollowing(c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, following)
}
