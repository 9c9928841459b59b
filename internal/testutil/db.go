// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"fmt"
	"testing"

	"go-blog/internal/model"
	"go-blog/pkg/config"
	"go-blog/pkg/db"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB returns a migrated in-memory sqlite database with foreign keys on.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := db.Open(config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    "file::memory:?_pragma=foreign_keys(1)",
	})
	require.NoError(t, err, "Failed to open test database")
	require.NoError(t, db.Migrate(conn))

	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return conn
}

// CreateUser inserts a user named username.
func CreateUser(t *testing.T, conn *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username: username,
		Password: "testpassword",
		Email:    fmt.Sprintf("%s@example.com", username),
		Avatar:   "default.png",
	}
	require.NoError(t, conn.Create(user).Error, "Failed to create test user %s", username)
	require.True(t, user.ID > 0)
	return user
}

// CreateGroup inserts a group with the given slug.
func CreateGroup(t *testing.T, conn *gorm.DB, slug string) *model.Group {
	t.Helper()
	group := &model.Group{Title: "Group " + slug, Slug: slug, Description: "about " + slug}
	require.NoError(t, conn.Create(group).Error)
	return group
}

// CreatePost inserts a post by author, optionally in group.
func CreatePost(t *testing.T, conn *gorm.DB, author *model.User, group *model.Group, text string) *model.Post {
	t.Helper()
	post := &model.Post{Text: text, AuthorID: author.ID}
	if group != nil {
		post.GroupID = &group.ID
	}
	require.NoError(t, conn.Create(post).Error)
	return post
}
