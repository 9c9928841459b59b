package repository

import (
	"testing"

	"go-blog/internal/model"
	"go-blog/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))

	user := &model.User{
		Username: "testuser",
		Password: "testpass",
		Email:    "test@example.com",
		Avatar:   "default.png",
	}
	require.NoError(t, repo.Create(user))

	found, err := repo.FindByUsername("testuser")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.Email, found.Email)

	byEmail, err := repo.FindByEmail("test@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "testuser", byID.Username)
}

func TestUserRepository_NotFoundReturnsNil(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))

	user, err := repo.FindByUsername("nonexistent")
	assert.NoError(t, err)
	assert.Nil(t, user)

	user, err = repo.FindByID(404)
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_UniqueUsername(t *testing.T) {
	conn := testutil.NewDB(t)
	repo := NewUserRepository(conn)
	testutil.CreateUser(t, conn, "alice")

	err := repo.Create(&model.User{Username: "alice", Password: "x", Email: "other@example.com"})
	assert.Error(t, err)
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	conn := testutil.NewDB(t)
	repo := NewUserRepository(conn)
	alice := testutil.CreateUser(t, conn, "alice")
	bob := testutil.CreateUser(t, conn, "bob")

	post := testutil.CreatePost(t, conn, alice, nil, "alice writes")
	require.NoError(t, conn.Create(&model.Comment{PostID: post.ID, AuthorID: bob.ID, Text: "hi"}).Error)
	require.NoError(t, conn.Create(&model.Follow{UserID: bob.ID, AuthorID: alice.ID}).Error)

	require.NoError(t, repo.Delete(alice.ID))

	var posts, comments, follows int64
	conn.Model(&model.Post{}).Count(&posts)
	conn.Model(&model.Comment{}).Count(&comments)
	conn.Model(&model.Follow{}).Count(&follows)
	assert.Zero(t, posts)
	assert.Zero(t, comments)
	assert.Zero(t, follows)
}
