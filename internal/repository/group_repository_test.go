package repository

import (
	"fmt"
	"testing"

	"go-blog/internal/model"
	"go-blog/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupRepository_FindBySlug(t *testing.T) {
	conn := testutil.NewDB(t)
	repo := NewGroupRepository(conn)

	group := &model.Group{Title: "Tech", Slug: "tech", Description: "gadgets"}
	require.NoError(t, repo.Create(group))
	assert.True(t, group.ID > 0, "Group ID should be set after creation")

	found, err := repo.FindBySlug("tech")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Tech", found.Title)

	missing, err := repo.FindBySlug("cooking")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGroupRepository_UniqueSlug(t *testing.T) {
	conn := testutil.NewDB(t)
	repo := NewGroupRepository(conn)

	require.NoError(t, repo.Create(&model.Group{Title: "One", Slug: "dup"}))
	assert.Error(t, repo.Create(&model.Group{Title: "Two", Slug: "dup"}))
}

func TestGroupRepository_ListAndCount(t *testing.T) {
	conn := testutil.NewDB(t)
	repo := NewGroupRepository(conn)
	for i := 1; i <= 9; i++ {
		testutil.CreateGroup(t, conn, fmt.Sprintf("g%d", i))
	}

	total, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 9, total)

	page, err := repo.List(7, 7)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "g8", page[0].Slug)
	assert.Equal(t, "g9", page[1].Slug)
}

func TestGroupRepository_DeleteKeepsPosts(t *testing.T) {
	conn := testutil.NewDB(t)
	repo := NewGroupRepository(conn)
	author := testutil.CreateUser(t, conn, "author")
	group := testutil.CreateGroup(t, conn, "tech")
	post := testutil.CreatePost(t, conn, author, group, "grouped")

	require.NoError(t, repo.Delete(group.ID))

	var reloaded model.Post
	require.NoError(t, conn.First(&reloaded, post.ID).Error)
	assert.Nil(t, reloaded.GroupID)
}
